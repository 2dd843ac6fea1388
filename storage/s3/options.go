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

package s3

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Options configures one S3-compatible bucket adapter.
type Options struct {
	Bucket string
	Region string

	// CloudFrontHost serves unsigned public GETs through the
	// cross-region CDN, e.g. "artifacts.example.cloudfront.net".
	CloudFrontHost string

	// SameRegionHost, if set, is used instead of the virtual-hosted
	// bucket host when the caller requests the same-region form
	// (bypassing the CDN for same-region traffic).
	SameRegionHost string
}

func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Bucket, validation.Required),
		validation.Field(&o.Region, validation.Required),
		validation.Field(&o.CloudFrontHost, validation.Required),
	)
}

func (o Options) sameRegionHost() string {
	if o.SameRegionHost != "" {
		return o.SameRegionHost
	}
	return fmt.Sprintf("%s.s3.%s.amazonaws.com", o.Bucket, o.Region)
}
