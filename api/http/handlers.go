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

package http

import (
	"net/http"
	"strconv"

	"github.com/ant0ine/go-json-rest/rest"

	"github.com/mendersoftware/go-lib-micro/requestlog"

	"github.com/grenade/taskcluster-queue/api/http/view"
	"github.com/grenade/taskcluster-queue/authz"
	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/region"
	"github.com/grenade/taskcluster-queue/service"
)

const ParamLimit = "limit"
const ParamContinuation = "continuationToken"

// ArtifactHandlers adapts the go-json-rest transport to service.Service,
// the way the teacher's DeploymentsApiHandlers adapts it to app.App.
type ArtifactHandlers struct {
	view *view.RESTView
	svc  service.Service
}

func NewArtifactHandlers(svc service.Service) *ArtifactHandlers {
	return &ArtifactHandlers{
		view: new(view.RESTView),
		svc:  svc,
	}
}

// claimsFromRequest reads the caller's granted scopes, populated upstream
// of this core by the (out-of-scope) authentication middleware into the
// request context under this header. Scope expansion itself is not this
// core's concern, per spec.md §1.
func claimsFromRequest(r *rest.Request) authz.ClaimSet {
	return authz.ClaimSet{Scopes: r.Header["X-Scopes"]}
}

func regionRequestFromRequest(r *rest.Request) service.RegionRequest {
	addr, ok := region.ClientAddr(r.Request)
	return service.RegionRequest{
		ClientAddr:    addr,
		HasClientAddr: ok,
		SkipCache:     region.SkipCache(r.Request),
	}
}

func (h *ArtifactHandlers) CreateArtifact(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	runID, err := strconv.ParseInt(r.PathParam("runId"), 10, 64)
	if err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}

	in, err := model.ParseCreateArtifactInput(r.Body)
	if err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}
	if err := in.Validate(); err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}

	key := model.ArtifactKey{
		TaskID: r.PathParam("taskId"),
		RunID:  runID,
		Name:   r.PathParam("name"),
	}

	result, err := h.svc.CreateArtifact(r.Context(), key, *in, claimsFromRequest(r))
	if err != nil {
		h.view.RenderServiceError(w, r, err, l)
		return
	}
	h.view.RenderSuccessPost(w, r, result)
}

func (h *ArtifactHandlers) GetArtifact(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	runID, err := strconv.ParseInt(r.PathParam("runId"), 10, 64)
	if err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}

	key := model.ArtifactKey{
		TaskID: r.PathParam("taskId"),
		RunID:  runID,
		Name:   r.PathParam("name"),
	}

	result, err := h.svc.GetArtifact(r.Context(), key, claimsFromRequest(r), regionRequestFromRequest(r))
	if err != nil {
		h.view.RenderServiceError(w, r, err, l)
		return
	}
	h.renderGetResult(w, result)
}

func (h *ArtifactHandlers) GetLatestArtifact(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	result, err := h.svc.GetLatestArtifact(
		r.Context(), r.PathParam("taskId"), r.PathParam("name"),
		claimsFromRequest(r), regionRequestFromRequest(r),
	)
	if err != nil {
		h.view.RenderServiceError(w, r, err, l)
		return
	}
	h.renderGetResult(w, result)
}

// renderGetResult dispatches a service.GetResult to either a 303 redirect
// or (storageType=error) the bare 403 {reason, message} body, per
// invariant 6 of spec.md §8.
func (h *ArtifactHandlers) renderGetResult(w rest.ResponseWriter, result *service.GetResult) {
	if result.StatusCode == http.StatusForbidden {
		h.view.RenderArtifactError(w, result.Reason, result.Message)
		return
	}
	h.view.RenderRedirect(w, result.Location)
}

func listOptionsFromRequest(r *rest.Request) model.ListOptions {
	q := r.URL.Query()
	opts := model.ListOptions{
		Continuation: q.Get(ParamContinuation),
		Limit:        model.DefaultListLimit,
	}
	if raw := q.Get(ParamLimit); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil && limit > 0 && limit <= model.MaxListLimit {
			opts.Limit = limit
		}
	}
	return opts
}

func (h *ArtifactHandlers) ListArtifacts(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	runID, err := strconv.ParseInt(r.PathParam("runId"), 10, 64)
	if err != nil {
		h.view.RenderError(w, r, err, http.StatusBadRequest, l)
		return
	}

	result, err := h.svc.ListArtifacts(r.Context(), r.PathParam("taskId"), runID, listOptionsFromRequest(r))
	if err != nil {
		h.view.RenderServiceError(w, r, err, l)
		return
	}
	h.view.RenderSuccessGet(w, result.View())
}

func (h *ArtifactHandlers) ListLatestArtifacts(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	result, err := h.svc.ListLatestArtifacts(r.Context(), r.PathParam("taskId"), listOptionsFromRequest(r))
	if err != nil {
		h.view.RenderServiceError(w, r, err, l)
		return
	}
	h.view.RenderSuccessGet(w, result.View())
}
