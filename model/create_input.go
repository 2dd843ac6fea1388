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
	"encoding/json"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateArtifactInput is the body of a createArtifact request, discriminated
// by StorageType; only the fields relevant to that variant are populated.
type CreateArtifactInput struct {
	StorageType StorageType `json:"storageType"`
	ContentType string      `json:"contentType,omitempty"`
	Expires     time.Time   `json:"expires"`

	// reference
	URL string `json:"url,omitempty"`

	// error
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func ParseCreateArtifactInput(source io.Reader) (*CreateArtifactInput, error) {
	var in CreateArtifactInput
	if err := json.NewDecoder(source).Decode(&in); err != nil {
		return nil, err
	}
	if in.ContentType == "" {
		in.ContentType = DefaultContentType
	}
	return &in, nil
}

// Validate checks the request body is structurally well-formed. It does
// not check the cross-cutting invariants (task/run existence, expiry
// bounds, run uploadability) owned by the service.
func (in CreateArtifactInput) Validate() error {
	if err := validation.Validate(string(in.StorageType), validation.Required); err != nil {
		return err
	}
	if !in.StorageType.Valid() {
		return validation.NewError(
			"storageType_invalid", "storageType must be one of s3, azure, reference, error",
		)
	}
	if err := validation.Validate(in.Expires, validation.Required); err != nil {
		return err
	}
	switch in.StorageType {
	case StorageTypeReference:
		return validation.ValidateStruct(&in,
			validation.Field(&in.URL, validation.Required),
		)
	case StorageTypeError:
		return validation.ValidateStruct(&in,
			validation.Field(&in.Message, validation.Required),
			validation.Field(&in.Reason, validation.Required),
		)
	default:
		return nil
	}
}

// BuildDetails builds the stored variant record for a freshly validated input
// given the runtime context (bucket/container assignment, name-derived
// paths) the service computes.
func (in CreateArtifactInput) BuildDetails(s3Prefix, azurePath, bucket, container string) Details {
	switch in.StorageType {
	case StorageTypeS3:
		return Details{S3: &S3Details{Bucket: bucket, Prefix: s3Prefix}}
	case StorageTypeAzure:
		return Details{Azure: &AzureDetails{Container: container, Path: azurePath}}
	case StorageTypeReference:
		return Details{Reference: &ReferenceDetails{URL: in.URL}}
	case StorageTypeError:
		return Details{Error: &ErrorDetails{Message: in.Message, Reason: in.Reason}}
	default:
		return Details{}
	}
}
