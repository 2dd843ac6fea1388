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

import "time"

// RunState is the state of a single execution attempt of a task, as
// reported by the (external) Task entity service.
type RunState string

const (
	RunStateRunning   RunState = "running"
	RunStateException RunState = "exception"
	RunStateCompleted RunState = "completed"
	RunStateFailed    RunState = "failed"
)

// ExceptionGrace is how long after a run resolves into the exception
// state that the run is still considered uploadable.
const ExceptionGrace = 25 * time.Minute

// Run is one execution attempt of a task.
type Run struct {
	State       RunState  `bson:"state" json:"state"`
	WorkerGroup string    `bson:"worker_group" json:"workerGroup"`
	WorkerID    string    `bson:"worker_id" json:"workerId"`
	Resolved    time.Time `bson:"resolved,omitempty" json:"resolved,omitempty"`
}

// Uploadable reports whether an artifact may be created against this run
// at the given instant, per the run-state invariant in the service's
// create path.
func (r Run) Uploadable(now time.Time) bool {
	switch r.State {
	case RunStateRunning:
		return true
	case RunStateException:
		return now.Sub(r.Resolved) <= ExceptionGrace
	default:
		return false
	}
}

// Task is the read-only projection of the Task entity this core consumes.
type Task struct {
	ID      string    `bson:"_id" json:"taskId"`
	Expires time.Time `bson:"expires" json:"expires"`
	Routes  []string  `bson:"routes" json:"routes"`
	Runs    []Run     `bson:"runs" json:"runs"`
}

// Status summarizes the task for the artifactCreated event payload: the
// state of its most recent run, or "unscheduled" if it has none.
func (t *Task) Status() string {
	if len(t.Runs) == 0 {
		return "unscheduled"
	}
	return string(t.Runs[len(t.Runs)-1].State)
}

// LatestRunID resolves the implicit "latest" run reference.
func (t *Task) LatestRunID() (int64, bool) {
	if len(t.Runs) == 0 {
		return 0, false
	}
	return int64(len(t.Runs) - 1), true
}

func (t *Task) Run(runID int64) (Run, bool) {
	if runID < 0 || runID >= int64(len(t.Runs)) {
		return Run{}, false
	}
	return t.Runs[runID], true
}
