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

// DefaultListLimit is applied when a list request does not specify limit.
const DefaultListLimit = 1000

// MaxListLimit caps a caller-supplied limit, per the design note that an
// unbounded limit would let a caller force an unbounded store scan.
const MaxListLimit = 1000

// ArtifactFilter selects the run whose artifacts are being paged.
type ArtifactFilter struct {
	TaskID string
	RunID  int64
}

// ListOptions are the paging parameters of listArtifacts/listLatestArtifacts.
type ListOptions struct {
	Continuation string
	Limit        int64
}

// ListResult is the page returned by the Artifact Store.
type ListResult struct {
	Artifacts    []Artifact
	Continuation string // empty iff exhausted
}

// ListResultView is the wire envelope for listArtifacts/listLatestArtifacts:
// {artifacts: [artifact.json, …], continuationToken?}, the continuation
// token present iff the store reports more pages available.
type ListResultView struct {
	Artifacts    []ArtifactView `json:"artifacts"`
	Continuation string         `json:"continuationToken,omitempty"`
}

// View renders a ListResult's artifacts through ArtifactView.
func (r *ListResult) View() ListResultView {
	views := make([]ArtifactView, len(r.Artifacts))
	for i := range r.Artifacts {
		views[i] = r.Artifacts[i].View()
	}
	return ListResultView{Artifacts: views, Continuation: r.Continuation}
}
