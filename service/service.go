// Copyright 2023 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

// Package service orchestrates the artifact lifecycle: createArtifact,
// getArtifact/getLatestArtifact, and listArtifacts/listLatestArtifacts. It
// owns the state machine, the idempotency reconciliation branch, and the
// region-aware get dispatch; everything it touches beyond that (task
// state, authorization, credential signing, the event bus, region
// resolution) is consumed as a narrow collaborator interface.
package service

import (
	"context"
	"fmt"
	"net/netip"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/grenade/taskcluster-queue/authz"
	"github.com/grenade/taskcluster-queue/events"
	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/storage"
	"github.com/grenade/taskcluster-queue/storage/manager"
	"github.com/grenade/taskcluster-queue/store"
	"github.com/grenade/taskcluster-queue/task"
)

// Config carries the deployment-specific parameters the service needs
// beyond its collaborators.
type Config struct {
	// CloudMirrorHost serves the region-aware redirect for public s3
	// artifacts fetched from a region other than the one they live in.
	CloudMirrorHost string
}

// RegionRequest is the minimal, transport-neutral view of an inbound get
// request the region-aware dispatch needs. The Request Adaptor builds
// this from the real HTTP request; the service never parses headers
// itself.
type RegionRequest struct {
	ClientAddr    netip.Addr
	HasClientAddr bool
	SkipCache     bool
}

// Service is the Artifact Service's capability surface.
type Service interface {
	CreateArtifact(
		ctx context.Context, key model.ArtifactKey, in model.CreateArtifactInput,
		claims authz.ClaimSet,
	) (*CreateResult, error)

	GetArtifact(
		ctx context.Context, key model.ArtifactKey, claims authz.ClaimSet, req RegionRequest,
	) (*GetResult, error)

	GetLatestArtifact(
		ctx context.Context, taskID, name string, claims authz.ClaimSet, req RegionRequest,
	) (*GetResult, error)

	ListArtifacts(
		ctx context.Context, taskID string, runID int64, opts model.ListOptions,
	) (*model.ListResult, error)

	ListLatestArtifacts(
		ctx context.Context, taskID string, opts model.ListOptions,
	) (*model.ListResult, error)
}

// CreateResult is the createArtifact response, dispatched by storageType.
type CreateResult struct {
	StorageType model.StorageType `json:"storageType"`
	ContentType string            `json:"contentType,omitempty"`
	Expires     time.Time         `json:"expires,omitempty"`
	PutURL      string            `json:"putUrl,omitempty"`
}

// GetResult is the getArtifact/getLatestArtifact response: either a 303
// redirect to Location, or (storageType=error) a 403 with Reason/Message.
type GetResult struct {
	StatusCode int    `json:"-"`
	Location   string `json:"-"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

// RegionResolver is the region-lookup collaborator the get dispatch path
// consults. region.Resolver satisfies it directly; region.CachedResolver
// wraps it with a Redis-backed warm cache for deployments that configure
// one, without the service needing to know which it got.
type RegionResolver interface {
	RegionOf(addr netip.Addr) (string, bool)
}

type ArtifactService struct {
	store      store.ArtifactStore
	tasks      task.Reader
	authorizer authz.Authorizer
	backends   manager.Backends
	resolver   RegionResolver
	publisher  events.Publisher
	cfg        Config
}

func New(
	artifactStore store.ArtifactStore,
	tasks task.Reader,
	authorizer authz.Authorizer,
	backends manager.Backends,
	resolver RegionResolver,
	publisher events.Publisher,
	cfg Config,
) *ArtifactService {
	return &ArtifactService{
		store:      artifactStore,
		tasks:      tasks,
		authorizer: authorizer,
		backends:   backends,
		resolver:   resolver,
		publisher:  publisher,
		cfg:        cfg,
	}
}

func (s *ArtifactService) loadTask(ctx context.Context, taskID string) (*model.Task, error) {
	t, err := s.tasks.Load(ctx, taskID)
	if errors.Is(err, task.ErrNotFound) {
		return nil, model.NewError(model.KindInputError, "Task not found")
	} else if err != nil {
		return nil, errors.WithMessage(err, "service: failed to load task")
	}
	return t, nil
}

// CreateArtifact implements spec.md §4.1.
func (s *ArtifactService) CreateArtifact(
	ctx context.Context, key model.ArtifactKey, in model.CreateArtifactInput,
	claims authz.ClaimSet,
) (*CreateResult, error) {
	now := time.Now()

	if in.Expires.Before(now.Add(-15 * time.Minute)) {
		return nil, model.NewError(model.KindInputError, "Expires must be in the future")
	}

	t, err := s.loadTask(ctx, key.TaskID)
	if err != nil {
		return nil, err
	}
	run, ok := t.Run(key.RunID)
	if !ok {
		return nil, model.NewError(model.KindInputError, "Run not found")
	}

	claims.TaskID = key.TaskID
	claims.RunID = key.RunID
	claims.Name = key.Name
	claims.WorkerGroup = run.WorkerGroup
	claims.WorkerID = run.WorkerID
	allowed, err := s.authorizer.AuthorizeCreate(ctx, claims)
	if err != nil {
		return nil, errors.WithMessage(err, "service: authorization check failed")
	}
	if !allowed {
		return nil, model.NewError(model.KindAuthorizationErr, "not authorized to create this artifact")
	}

	if in.Expires.After(t.Expires) {
		return nil, model.NewError(
			model.KindInputError,
			"Expires (%s) must not be after the task's expiration (%s)",
			in.Expires, t.Expires,
		)
	}

	if !run.Uploadable(now) {
		return nil, model.NewError(model.KindRequestConflict, "run is not in an uploadable state")
	}

	details, err := s.buildDetails(key, in)
	if err != nil {
		return nil, err
	}

	artifact := &model.Artifact{
		TaskID:      key.TaskID,
		RunID:       key.RunID,
		Name:        key.Name,
		StorageType: in.StorageType,
		ContentType: in.ContentType,
		Expires:     in.Expires,
		Details:     details,
	}

	stored, err := s.persist(ctx, key, artifact)
	if err != nil {
		return nil, err
	}

	event := events.ArtifactCreatedEventFrom(*stored, t.Status(), run.WorkerGroup, run.WorkerID)
	if err := s.publisher.ArtifactCreated(ctx, event, t.Routes); err != nil {
		return nil, errors.WithMessage(err, "service: failed to publish artifactCreated")
	}

	return s.createReply(ctx, stored)
}

// buildDetails constructs the variant record for a freshly validated
// input, choosing the s3 bucket by the public/ prefix rule (invariant 3).
func (s *ArtifactService) buildDetails(
	key model.ArtifactKey, in model.CreateArtifactInput,
) (model.Details, error) {
	prefix := fmt.Sprintf("%s/%d/%s", key.TaskID, key.RunID, key.Name)

	switch in.StorageType {
	case model.StorageTypeS3:
		bucket := s.backends.BucketFor(key.Name)
		if bucket == nil {
			return model.Details{}, model.NewError(model.KindInternalError, "no s3 bucket configured")
		}
		return in.BuildDetails(prefix, "", bucket.Name(), ""), nil
	case model.StorageTypeAzure:
		container, err := s.backends.Azure()
		if err != nil {
			return model.Details{}, model.NewError(model.KindInternalError, "no azure container configured")
		}
		return in.BuildDetails("", prefix, "", container.Name()), nil
	case model.StorageTypeReference, model.StorageTypeError:
		return in.BuildDetails("", "", "", ""), nil
	default:
		return model.Details{}, model.NewError(model.KindInternalError, "unknown storageType %q", in.StorageType)
	}
}

// persist attempts the conditional insert, falling back to the
// idempotency reconciliation branch on a unique-key conflict. It never
// reads before writing.
func (s *ArtifactService) persist(
	ctx context.Context, key model.ArtifactKey, artifact *model.Artifact,
) (*model.Artifact, error) {
	err := s.store.Create(ctx, artifact)
	if err == nil {
		return artifact, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return nil, errors.WithMessage(err, "service: failed to create artifact")
	}

	updated, err := s.store.Modify(ctx, key, func(existing *model.Artifact) (*model.Artifact, bool, error) {
		if existing.StorageType != artifact.StorageType {
			return nil, false, model.NewError(model.KindRequestConflict, "storageType is immutable")
		}
		if existing.ContentType != artifact.ContentType {
			return nil, false, model.NewError(model.KindRequestConflict, "contentType is immutable")
		}
		if artifact.Expires.Before(existing.Expires) {
			return nil, false, model.NewError(model.KindRequestConflict, "expires must not decrease on re-create")
		}
		if !existing.Details.EqualExceptReferenceURL(artifact.Details) {
			return nil, false, model.NewError(model.KindRequestConflict, "details do not match existing artifact")
		}

		next := *existing
		next.Expires = artifact.Expires
		next.Details = artifact.Details
		return &next, true, nil
	})
	if err != nil {
		if model.IsKind(err, model.KindRequestConflict) {
			return nil, err
		}
		return nil, errors.WithMessage(err, "service: failed to reconcile artifact")
	}
	return updated, nil
}

// createResponseTTL is the advertised expires in the createArtifact
// response. It is deliberately separate from the signing TTLs (which
// carry extra slack so a signature doesn't expire right as the caller
// reads it): the response contract is exactly now+30m.
const createResponseTTL = 30 * time.Minute

func (s *ArtifactService) createReply(ctx context.Context, a *model.Artifact) (*CreateResult, error) {
	expires := time.Now().Add(createResponseTTL)

	switch a.StorageType {
	case model.StorageTypeS3:
		bucket := s.backends.BucketFor(a.Name)
		link, err := bucket.CreatePutURL(ctx, a.Details.S3.Prefix, a.ContentType, storage.PutURLTTL)
		if err != nil {
			return nil, errors.WithMessage(err, "service: failed to sign put URL")
		}
		return &CreateResult{
			StorageType: a.StorageType,
			ContentType: a.ContentType,
			Expires:     expires,
			PutURL:      link.Uri,
		}, nil
	case model.StorageTypeAzure:
		container, err := s.backends.Azure()
		if err != nil {
			return nil, errors.WithMessage(err, "service: azure container unavailable")
		}
		link, err := container.GenerateWriteSAS(ctx, a.Details.Azure.Path, storage.WriteSASTTL)
		if err != nil {
			return nil, errors.WithMessage(err, "service: failed to sign write SAS")
		}
		return &CreateResult{
			StorageType: a.StorageType,
			ContentType: a.ContentType,
			Expires:     expires,
			PutURL:      link.Uri,
		}, nil
	case model.StorageTypeReference, model.StorageTypeError:
		return &CreateResult{StorageType: a.StorageType}, nil
	default:
		return nil, model.NewError(model.KindInternalError, "unknown storageType %q", a.StorageType)
	}
}

// GetArtifact implements spec.md §4.2.
func (s *ArtifactService) GetArtifact(
	ctx context.Context, key model.ArtifactKey, claims authz.ClaimSet, req RegionRequest,
) (*GetResult, error) {
	claims.Name = key.Name
	public := model.IsPublicName(key.Name)
	if !public {
		allowed, err := s.authorizer.AuthorizeGet(ctx, claims, public)
		if err != nil {
			return nil, errors.WithMessage(err, "service: authorization check failed")
		}
		if !allowed {
			return nil, model.NewError(model.KindAuthorizationErr, "not authorized to get this artifact")
		}
	}

	artifact, err := s.store.Load(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, model.NewError(model.KindResourceNotFound, "artifact not found")
	} else if err != nil {
		return nil, errors.WithMessage(err, "service: failed to load artifact")
	}

	return s.getReply(ctx, artifact, req)
}

// GetLatestArtifact resolves "latest" to runs.length-1 before delegating
// to GetArtifact.
func (s *ArtifactService) GetLatestArtifact(
	ctx context.Context, taskID, name string, claims authz.ClaimSet, req RegionRequest,
) (*GetResult, error) {
	t, err := s.loadTask(ctx, taskID)
	if err != nil {
		if model.IsKind(err, model.KindInputError) {
			return nil, model.NewError(model.KindResourceNotFound, "task not found")
		}
		return nil, err
	}
	runID, ok := t.LatestRunID()
	if !ok {
		return nil, model.NewError(model.KindResourceNotFound, "task has no runs")
	}
	return s.GetArtifact(ctx, model.ArtifactKey{TaskID: taskID, RunID: runID, Name: name}, claims, req)
}

func (s *ArtifactService) getReply(
	ctx context.Context, a *model.Artifact, req RegionRequest,
) (*GetResult, error) {
	l := log.FromContext(ctx)

	switch a.StorageType {
	case model.StorageTypeS3:
		bucket := s.backends.BucketFor(a.Name)
		if a.IsPublic() {
			return s.getPublicS3Reply(bucket, a, req), nil
		}
		link, err := bucket.CreateSignedGetURL(ctx, a.Details.S3.Prefix, storage.SignedGetTTL, "")
		if err != nil {
			return nil, errors.WithMessage(err, "service: failed to sign get URL")
		}
		return &GetResult{StatusCode: 303, Location: link.Uri}, nil
	case model.StorageTypeAzure:
		container, err := s.backends.Azure()
		if err != nil {
			return nil, errors.WithMessage(err, "service: azure container unavailable")
		}
		if a.Details.Azure.Container != container.Name() {
			l.Errorf(
				"artifact %s/%d/%s references container %q, configured container is %q",
				a.TaskID, a.RunID, a.Name, a.Details.Azure.Container, container.Name(),
			)
		}
		link, err := container.CreateSignedGetURL(ctx, a.Details.Azure.Path, storage.SignedGetTTL)
		if err != nil {
			return nil, errors.WithMessage(err, "service: failed to sign get URL")
		}
		return &GetResult{StatusCode: 303, Location: link.Uri}, nil
	case model.StorageTypeReference:
		return &GetResult{StatusCode: 303, Location: a.Details.Reference.URL}, nil
	case model.StorageTypeError:
		return &GetResult{
			StatusCode: 403,
			Reason:     a.Details.Error.Reason,
			Message:    a.Details.Error.Message,
		}, nil
	default:
		return nil, model.NewError(model.KindInternalError, "unknown storageType %q", a.StorageType)
	}
}

func (s *ArtifactService) getPublicS3Reply(
	bucket storage.Bucket, a *model.Artifact, req RegionRequest,
) *GetResult {
	var (
		callerRegion string
		known        bool
	)
	if req.HasClientAddr && !req.SkipCache {
		callerRegion, known = s.resolver.RegionOf(req.ClientAddr)
	}

	if !known || req.SkipCache {
		return &GetResult{StatusCode: 303, Location: bucket.CreateGetURL(a.Details.S3.Prefix, false)}
	}

	sameRegionURL := bucket.CreateGetURL(a.Details.S3.Prefix, true)
	if callerRegion == bucket.Region() {
		return &GetResult{StatusCode: 303, Location: sameRegionURL}
	}

	mirrorURL := fmt.Sprintf(
		"https://%s/v1/redirect/s3/%s/%s",
		s.cfg.CloudMirrorHost, callerRegion, url.QueryEscape(sameRegionURL),
	)
	return &GetResult{StatusCode: 303, Location: mirrorURL}
}

// ListArtifacts implements spec.md §4.3.
func (s *ArtifactService) ListArtifacts(
	ctx context.Context, taskID string, runID int64, opts model.ListOptions,
) (*model.ListResult, error) {
	t, err := s.loadTask(ctx, taskID)
	if err != nil {
		if model.IsKind(err, model.KindInputError) {
			return nil, model.NewError(model.KindResourceNotFound, "task not found")
		}
		return nil, err
	}
	if _, ok := t.Run(runID); !ok {
		return nil, model.NewError(model.KindResourceNotFound, "run not found")
	}

	result, err := s.store.Query(ctx, model.ArtifactFilter{TaskID: taskID, RunID: runID}, opts)
	if err != nil {
		return nil, errors.WithMessage(err, "service: failed to list artifacts")
	}
	return &result, nil
}

// ListLatestArtifacts resolves "latest" to runs.length-1 before
// delegating to ListArtifacts.
func (s *ArtifactService) ListLatestArtifacts(
	ctx context.Context, taskID string, opts model.ListOptions,
) (*model.ListResult, error) {
	t, err := s.loadTask(ctx, taskID)
	if err != nil {
		if model.IsKind(err, model.KindInputError) {
			return nil, model.NewError(model.KindResourceNotFound, "task not found")
		}
		return nil, err
	}
	runID, ok := t.LatestRunID()
	if !ok {
		return nil, model.NewError(model.KindResourceNotFound, "task has no runs")
	}
	return s.ListArtifacts(ctx, taskID, runID, opts)
}
