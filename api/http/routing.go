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

// Package http is the Request Adaptor: it parses path/query parameters
// and headers into the Service's transport-neutral arguments and renders
// the Service's results back out, per spec.md §6.
package http

import (
	"github.com/ant0ine/go-json-rest/rest"

	"github.com/grenade/taskcluster-queue/utils/restutil"
)

const (
	ApiUrlTask                = "/task/:taskId"
	ApiUrlRunArtifacts        = ApiUrlTask + "/runs/:runId/artifacts/#name"
	ApiUrlLatestArtifact      = ApiUrlTask + "/artifacts/#name"
	ApiUrlRunArtifactsList    = ApiUrlTask + "/runs/:runId/artifacts"
	ApiUrlLatestArtifactsList = ApiUrlTask + "/artifacts"
)

// NewRouter wires every route in spec.md §6 to its handler.
func NewRouter(h *ArtifactHandlers) (rest.App, error) {
	routes := []*rest.Route{
		rest.Post(ApiUrlRunArtifacts, h.CreateArtifact),
		rest.Get(ApiUrlRunArtifacts, h.GetArtifact),
		rest.Get(ApiUrlLatestArtifact, h.GetLatestArtifact),
		rest.Get(ApiUrlRunArtifactsList, h.ListArtifacts),
		rest.Get(ApiUrlLatestArtifactsList, h.ListLatestArtifacts),
	}
	return rest.MakeRouter(restutil.AutogenOptionsRoutes(restutil.NewOptionsHandler, routes...)...)
}
