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

package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeAuthorizerAuthorizeCreate(t *testing.T) {
	a := NewScopeAuthorizer()
	ctx := context.Background()

	testCases := map[string]struct {
		claims ClaimSet
		want   bool
	}{
		"task-scoped grant": {
			claims: ClaimSet{
				TaskID: "T1", RunID: 0,
				Scopes: []string{"queue:create-artifact:T1/0"},
			},
			want: true,
		},
		"name plus worker grant": {
			claims: ClaimSet{
				Name: "public/build.log", WorkerGroup: "wg", WorkerID: "w1",
				Scopes: []string{
					"queue:create-artifact:public/build.log",
					"assume:worker-id:wg/w1",
				},
			},
			want: true,
		},
		"name without worker grant": {
			claims: ClaimSet{
				Name:        "public/build.log",
				WorkerGroup: "wg", WorkerID: "w1",
				Scopes: []string{"queue:create-artifact:public/build.log"},
			},
			want: false,
		},
		"wildcard grant": {
			claims: ClaimSet{
				TaskID: "T1", RunID: 0,
				Scopes: []string{"queue:create-artifact:*"},
			},
			want: true,
		},
		"no matching grant": {
			claims: ClaimSet{TaskID: "T1", RunID: 0, Scopes: []string{"queue:get-artifact:*"}},
			want:   false,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ok, err := a.AuthorizeCreate(ctx, tc.claims)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestScopeAuthorizerAuthorizeGet(t *testing.T) {
	a := NewScopeAuthorizer()
	ctx := context.Background()

	testCases := map[string]struct {
		claims ClaimSet
		public bool
		want   bool
	}{
		"public needs no scope": {
			claims: ClaimSet{Name: "public/x"},
			public: true,
			want:   true,
		},
		"private with scope": {
			claims: ClaimSet{Name: "private/x", Scopes: []string{"queue:get-artifact:private/x"}},
			public: false,
			want:   true,
		},
		"private without scope": {
			claims: ClaimSet{Name: "private/x"},
			public: false,
			want:   false,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ok, err := a.AuthorizeGet(ctx, tc.claims, tc.public)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
