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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapDurationToLimits(t *testing.T) {
	testCases := map[string]struct {
		in       time.Duration
		expected time.Duration
	}{
		"below min": {
			in:       30 * time.Second,
			expected: ExpireMinLimit,
		},
		"above max": {
			in:       30 * 24 * time.Hour,
			expected: ExpireMaxLimit,
		},
		"within range": {
			in:       30*time.Minute + 10*time.Second,
			expected: 30*time.Minute + 10*time.Second,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, capDurationToLimits(tc.in))
		})
	}
}

func TestOptionsSameRegionHost(t *testing.T) {
	testCases := map[string]struct {
		opts     Options
		expected string
	}{
		"explicit override": {
			opts: Options{
				Bucket:         "artifacts",
				Region:         "us-east-1",
				SameRegionHost: "internal.artifacts.example.com",
			},
			expected: "internal.artifacts.example.com",
		},
		"derived default": {
			opts: Options{
				Bucket: "artifacts",
				Region: "us-east-1",
			},
			expected: "artifacts.s3.us-east-1.amazonaws.com",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.opts.sameRegionHost())
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	testCases := map[string]struct {
		opts    Options
		wantErr bool
	}{
		"valid": {
			opts: Options{
				Bucket:         "artifacts",
				Region:         "us-east-1",
				CloudFrontHost: "cdn.example.com",
			},
			wantErr: false,
		},
		"missing bucket": {
			opts: Options{
				Region:         "us-east-1",
				CloudFrontHost: "cdn.example.com",
			},
			wantErr: true,
		},
		"missing cloud front host": {
			opts: Options{
				Bucket: "artifacts",
				Region: "us-east-1",
			},
			wantErr: true,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBucketCreateGetURL(t *testing.T) {
	b := &Bucket{
		opts: Options{
			Bucket:         "artifacts",
			Region:         "us-east-1",
			CloudFrontHost: "cdn.example.com",
			SameRegionHost: "same-region.example.com",
		},
	}

	assert.Equal(t,
		"https://cdn.example.com/public/foo.txt",
		b.CreateGetURL("public/foo.txt", false),
	)
	assert.Equal(t,
		"https://same-region.example.com/public/foo.txt",
		b.CreateGetURL("public/foo.txt", true),
	)
}

func TestBucketName(t *testing.T) {
	b := &Bucket{opts: Options{Bucket: "artifacts"}}
	assert.Equal(t, "artifacts", b.Name())
}
