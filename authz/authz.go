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

// Package authz brokers the boolean authorize(params) capability the
// Artifact Service consumes. Full scope-expansion and signature
// verification live upstream of this core; this package only matches a
// caller's already-resolved scope set against the patterns createArtifact
// and getArtifact require.
package authz

import (
	"context"
	"fmt"
	"strings"
)

// ClaimSet describes the caller and target the Artifact Service is
// authorizing a request against.
type ClaimSet struct {
	TaskID      string
	RunID       int64
	WorkerGroup string
	WorkerID    string
	Name        string
	Scopes      []string
}

// Authorizer is the boolean collaborator createArtifact/getArtifact
// consult. It never explains a denial; the caller maps a false result to
// an AuthorizationError.
type Authorizer interface {
	AuthorizeCreate(ctx context.Context, claims ClaimSet) (bool, error)
	AuthorizeGet(ctx context.Context, claims ClaimSet, public bool) (bool, error)
}

// ScopeAuthorizer checks scope patterns against a statically granted
// scope set, in the queue:*/assume:* shape this domain uses.
type ScopeAuthorizer struct{}

func NewScopeAuthorizer() *ScopeAuthorizer {
	return &ScopeAuthorizer{}
}

// AuthorizeCreate implements the create-side rule from spec.md §4.1:
// queue:create-artifact:{name} plus assume:worker-id:{workerGroup}/{workerId},
// or queue:create-artifact:{taskId}/{runId} on its own.
func (a *ScopeAuthorizer) AuthorizeCreate(ctx context.Context, claims ClaimSet) (bool, error) {
	taskScope := fmt.Sprintf("queue:create-artifact:%s/%d", claims.TaskID, claims.RunID)
	if hasScope(claims.Scopes, taskScope) {
		return true, nil
	}
	nameScope := fmt.Sprintf("queue:create-artifact:%s", claims.Name)
	workerScope := fmt.Sprintf("assume:worker-id:%s/%s", claims.WorkerGroup, claims.WorkerID)
	return hasScope(claims.Scopes, nameScope) && hasScope(claims.Scopes, workerScope), nil
}

// AuthorizeGet implements the get-side rule from spec.md §4.2: public
// artifacts need no scope; private artifacts need
// queue:get-artifact:{name}.
func (a *ScopeAuthorizer) AuthorizeGet(ctx context.Context, claims ClaimSet, public bool) (bool, error) {
	if public {
		return true, nil
	}
	return hasScope(claims.Scopes, fmt.Sprintf("queue:get-artifact:%s", claims.Name)), nil
}

// hasScope matches granted against required, honoring the conventional
// trailing "*" prefix-wildcard form.
func hasScope(granted []string, required string) bool {
	for _, g := range granted {
		if g == required {
			return true
		}
		if strings.HasSuffix(g, "*") && strings.HasPrefix(required, strings.TrimSuffix(g, "*")) {
			return true
		}
	}
	return false
}
