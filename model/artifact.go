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

package model

import (
	"strings"
	"time"
)

// StorageType discriminates how an artifact's bytes (if any) are held.
type StorageType string

const (
	StorageTypeS3        StorageType = "s3"
	StorageTypeAzure     StorageType = "azure"
	StorageTypeReference StorageType = "reference"
	StorageTypeError     StorageType = "error"
)

func (s StorageType) Valid() bool {
	switch s {
	case StorageTypeS3, StorageTypeAzure, StorageTypeReference, StorageTypeError:
		return true
	}
	return false
}

const PublicPrefix = "public/"

// DefaultContentType is assumed when a create request omits contentType.
const DefaultContentType = "application/json"

// S3Details locates an object inside one of the two configured buckets.
type S3Details struct {
	Bucket string `bson:"bucket" json:"bucket"`
	Prefix string `bson:"prefix" json:"prefix"`
}

// AzureDetails locates a blob inside the configured container.
type AzureDetails struct {
	Container string `bson:"container" json:"container"`
	Path      string `bson:"path" json:"path"`
}

// ReferenceDetails is a bare URL artifact; no bytes are mediated here.
type ReferenceDetails struct {
	URL string `bson:"url" json:"url"`
}

// ErrorDetails records why a task produced no artifact bytes.
type ErrorDetails struct {
	Message string `bson:"message" json:"message"`
	Reason  string `bson:"reason" json:"reason"`
}

// Details is a tagged-variant record: exactly one field is populated,
// selected by the owning Artifact's StorageType.
type Details struct {
	S3        *S3Details        `bson:"s3,omitempty" json:"-"`
	Azure     *AzureDetails     `bson:"azure,omitempty" json:"-"`
	Reference *ReferenceDetails `bson:"reference,omitempty" json:"-"`
	Error     *ErrorDetails     `bson:"error,omitempty" json:"-"`
}

// EqualExceptReferenceURL reports whether two Details are structurally
// identical, except that two `reference` details are always considered
// equal regardless of their URL (invariant 4: the url may change across
// idempotent recreates).
func (d Details) EqualExceptReferenceURL(other Details) bool {
	if d.Reference != nil || other.Reference != nil {
		return d.Reference != nil && other.Reference != nil
	}
	if (d.S3 == nil) != (other.S3 == nil) {
		return false
	}
	if d.S3 != nil && *d.S3 != *other.S3 {
		return false
	}
	if (d.Azure == nil) != (other.Azure == nil) {
		return false
	}
	if d.Azure != nil && *d.Azure != *other.Azure {
		return false
	}
	if (d.Error == nil) != (other.Error == nil) {
		return false
	}
	if d.Error != nil && *d.Error != *other.Error {
		return false
	}
	return true
}

// ArtifactKey is the composite key (taskId, runId, name).
type ArtifactKey struct {
	TaskID string
	RunID  int64
	Name   string
}

// Artifact is the core entity: a named output of one run of one task.
type Artifact struct {
	TaskID      string      `bson:"task_id" json:"taskId"`
	RunID       int64       `bson:"run_id" json:"runId"`
	Name        string      `bson:"name" json:"name"`
	StorageType StorageType `bson:"storage_type" json:"storageType"`
	ContentType string      `bson:"content_type" json:"contentType"`
	Expires     time.Time   `bson:"expires" json:"expires"`
	Details     Details     `bson:"details" json:"-"`
}

func (a *Artifact) Key() ArtifactKey {
	return ArtifactKey{TaskID: a.TaskID, RunID: a.RunID, Name: a.Name}
}

// IsPublic reports whether the artifact's name begins with the reserved
// public/ prefix, making it world-readable without authorization.
func (a *Artifact) IsPublic() bool {
	return IsPublicName(a.Name)
}

func IsPublicName(name string) bool {
	return strings.HasPrefix(name, PublicPrefix)
}

// ArtifactView is the wire representation returned by getArtifact's
// siblings in list responses: {storageType, name, expires, contentType,
// and a public url for reference artifacts, or nothing}.
type ArtifactView struct {
	StorageType StorageType `json:"storageType"`
	Name        string      `json:"name"`
	Expires     time.Time   `json:"expires"`
	ContentType string      `json:"contentType,omitempty"`
	URL         string      `json:"url,omitempty"`
}

func (a *Artifact) View() ArtifactView {
	v := ArtifactView{
		StorageType: a.StorageType,
		Name:        a.Name,
		Expires:     a.Expires,
		ContentType: a.ContentType,
	}
	if a.StorageType == StorageTypeReference && a.Details.Reference != nil {
		v.URL = a.Details.Reference.URL
	}
	return v
}
