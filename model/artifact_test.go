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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicName(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Name     string
		Expected bool
	}{
		{Name: "public/log.txt", Expected: true},
		{Name: "public/nested/log.txt", Expected: true},
		{Name: "private/log.txt", Expected: false},
		{Name: "log.txt", Expected: false},
		{Name: "publicity.txt", Expected: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, IsPublicName(tc.Name))
		})
	}
}

func TestDetailsEqualExceptReferenceURL(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Name     string
		A, B     Details
		Expected bool
	}{{
		Name:     "ok, matching s3",
		A:        Details{S3: &S3Details{Bucket: "b", Prefix: "p"}},
		B:        Details{S3: &S3Details{Bucket: "b", Prefix: "p"}},
		Expected: true,
	}, {
		Name:     "ok, mismatching s3",
		A:        Details{S3: &S3Details{Bucket: "b", Prefix: "p"}},
		B:        Details{S3: &S3Details{Bucket: "b", Prefix: "other"}},
		Expected: false,
	}, {
		Name:     "ok, reference always equal regardless of url",
		A:        Details{Reference: &ReferenceDetails{URL: "https://a"}},
		B:        Details{Reference: &ReferenceDetails{URL: "https://b"}},
		Expected: true,
	}, {
		Name:     "ok, matching error",
		A:        Details{Error: &ErrorDetails{Message: "m", Reason: "r"}},
		B:        Details{Error: &ErrorDetails{Message: "m", Reason: "r"}},
		Expected: true,
	}, {
		Name:     "ok, mismatching azure",
		A:        Details{Azure: &AzureDetails{Container: "c", Path: "p"}},
		B:        Details{Azure: &AzureDetails{Container: "c2", Path: "p"}},
		Expected: false,
	}}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.A.EqualExceptReferenceURL(tc.B))
		})
	}
}

func TestArtifactView(t *testing.T) {
	t.Parallel()
	a := Artifact{
		StorageType: StorageTypeReference,
		Name:        "public/x",
		ContentType: "text/plain",
		Details:     Details{Reference: &ReferenceDetails{URL: "https://example.com/x"}},
	}
	v := a.View()
	assert.Equal(t, "https://example.com/x", v.URL)
	assert.Equal(t, StorageTypeReference, v.StorageType)

	a2 := Artifact{StorageType: StorageTypeS3, Name: "log"}
	assert.Empty(t, a2.View().URL)
}
