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

// Package view renders the Artifact Service's results and model.Error
// kinds as go-json-rest responses, the same shape the teacher's
// resources/deployments/view package renders DeploymentsView with.
package view

import (
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/rest_utils"

	"github.com/grenade/taskcluster-queue/model"
)

// RESTView is the rendering surface every handler in api/http consumes.
type RESTView struct{}

func (v *RESTView) RenderSuccessGet(w rest.ResponseWriter, object interface{}) {
	w.WriteJson(object)
}

func (v *RESTView) RenderSuccessPost(w rest.ResponseWriter, r *rest.Request, object interface{}) {
	w.WriteJson(object)
}

// RenderRedirect answers a getArtifact/getLatestArtifact with a 303 to
// location, per spec.md §4.2 — the client follows the redirect straight
// to the storage backend, never through this service.
func (v *RESTView) RenderRedirect(w rest.ResponseWriter, location string) {
	h, _ := w.(http.ResponseWriter)
	h.Header().Set("Location", location)
	h.WriteHeader(http.StatusSeeOther)
}

func (v *RESTView) RenderEmptySuccessResponse(w rest.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (v *RESTView) RenderErrorNotFound(w rest.ResponseWriter, r *rest.Request, l *log.Logger) {
	v.RenderError(w, r, model.NewError(model.KindResourceNotFound, "resource not found"), http.StatusNotFound, l)
}

// RenderError writes an ApiError body carrying the request ID, logging
// the underlying error at Error level, exactly the teacher's
// RestErrWithLog shape.
func (v *RESTView) RenderError(w rest.ResponseWriter, r *rest.Request, err error, status int, l *log.Logger) {
	w.WriteHeader(status)
	werr := w.WriteJson(rest_utils.ApiError{
		Err:   err.Error(),
		ReqId: requestid.GetReqId(r),
	})
	if werr != nil {
		panic(werr)
	}
	l.Error(err.Error())
}

func (v *RESTView) RenderInternalError(w rest.ResponseWriter, r *rest.Request, err error, l *log.Logger) {
	v.RenderError(w, r, err, http.StatusInternalServerError, l)
}

// RenderServiceError maps a model.Error's Kind to the HTTP status
// spec.md §7 assigns it and renders the ApiError body.
func (v *RESTView) RenderServiceError(w rest.ResponseWriter, r *rest.Request, err error, l *log.Logger) {
	status := http.StatusInternalServerError
	switch model.KindOf(err) {
	case model.KindInputError:
		status = http.StatusBadRequest
	case model.KindRequestConflict:
		status = http.StatusConflict
	case model.KindResourceNotFound:
		status = http.StatusNotFound
	case model.KindAuthorizationErr:
		status = http.StatusForbidden
	case model.KindInternalError:
		status = http.StatusInternalServerError
	}
	v.RenderError(w, r, err, status, l)
}

// RenderArtifactError renders a storageType=error artifact's stored
// {reason, message} body: invariant 6 of spec.md §8 — always 403, never
// wrapped in the ApiError envelope.
func (v *RESTView) RenderArtifactError(w rest.ResponseWriter, reason, message string) {
	w.WriteHeader(http.StatusForbidden)
	w.WriteJson(struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	}{Reason: reason, Message: message})
}
