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
package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ant0ine/go-json-rest/rest/test"
	"github.com/mendersoftware/go-lib-micro/requestid"
	mt "github.com/mendersoftware/go-lib-micro/testing"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"

	"github.com/grenade/taskcluster-queue/model"
	"github.com/grenade/taskcluster-queue/service"
	svcmocks "github.com/grenade/taskcluster-queue/service/mocks"
)

func TestCreateArtifactHandler(t *testing.T) {
	t.Parallel()

	expires := time.Now().Add(time.Hour).UTC()

	body := model.CreateArtifactInput{StorageType: model.StorageTypeS3, Expires: expires}

	testCases := map[string]struct {
		result   *service.CreateResult
		svcError error
		checker  mt.ResponseChecker
	}{
		"ok": {
			result: &service.CreateResult{
				StorageType: model.StorageTypeS3,
				PutURL:      "https://bucket.example.com/put",
			},
			checker: mt.NewJSONResponse(
				http.StatusOK,
				nil,
				&service.CreateResult{
					StorageType: model.StorageTypeS3,
					PutURL:      "https://bucket.example.com/put",
				},
			),
		},
		"error: conflict": {
			svcError: model.NewError(model.KindRequestConflict, "artifact already exists"),
			checker:  mt.NewJSONResponse(http.StatusConflict, nil, nil),
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			svc := &svcmocks.Service{}
			defer svc.AssertExpectations(t)

			svc.On("CreateArtifact",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			).Return(tc.result, tc.svcError)

			h := NewArtifactHandlers(svc)
			api := setUpRestTest(ApiUrlRunArtifacts, rest.Post, h.CreateArtifact)

			req := test.MakeSimpleRequest(
				"POST", "http://1.2.3.4/task/T1/runs/0/artifacts/public/log.txt",
				body,
			)
			req.Header.Add(requestid.RequestIdHeader, "test")

			recorded := test.RunRequest(t, api, req)
			recorded.CodeIs(tc.checker.(*mt.JSONResponse).Status)
		})
	}
}

func TestGetArtifactHandler(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		result   *service.GetResult
		svcError error
		wantCode int
	}{
		"ok redirect": {
			result:   &service.GetResult{StatusCode: http.StatusSeeOther, Location: "https://bucket.example.com/get"},
			wantCode: http.StatusSeeOther,
		},
		"error artifact": {
			result:   &service.GetResult{StatusCode: http.StatusForbidden, Reason: "expired-credentials", Message: "the credentials for this task have expired"},
			wantCode: http.StatusForbidden,
		},
		"not found": {
			svcError: model.NewError(model.KindResourceNotFound, "artifact not found"),
			wantCode: http.StatusNotFound,
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			svc := &svcmocks.Service{}
			defer svc.AssertExpectations(t)

			svc.On("GetArtifact",
				mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			).Return(tc.result, tc.svcError)

			h := NewArtifactHandlers(svc)
			api := setUpRestTest(ApiUrlRunArtifacts, rest.Get, h.GetArtifact)

			req := test.MakeSimpleRequest(
				"GET", "http://1.2.3.4/task/T1/runs/0/artifacts/public/log.txt", nil,
			)
			req.Header.Add(requestid.RequestIdHeader, "test")

			recorded := test.RunRequest(t, api, req)
			recorded.CodeIs(tc.wantCode)
		})
	}
}

func TestListArtifactsHandler(t *testing.T) {
	t.Parallel()

	svc := &svcmocks.Service{}
	defer svc.AssertExpectations(t)

	want := &model.ListResult{Artifacts: []model.Artifact{{Name: "public/log.txt"}}}
	svc.On("ListArtifacts", mock.Anything, "T1", int64(0), mock.Anything).Return(want, nil)

	h := NewArtifactHandlers(svc)
	api := setUpRestTest(ApiUrlRunArtifactsList, rest.Get, h.ListArtifacts)

	req := test.MakeSimpleRequest("GET", "http://1.2.3.4/task/T1/runs/0/artifacts", nil)
	req.Header.Add(requestid.RequestIdHeader, "test")

	recorded := test.RunRequest(t, api, req)
	recorded.CodeIs(http.StatusOK)
}

func TestListArtifactsHandlerBadRunID(t *testing.T) {
	t.Parallel()

	svc := &svcmocks.Service{}

	h := NewArtifactHandlers(svc)
	api := setUpRestTest(ApiUrlRunArtifactsList, rest.Get, h.ListArtifacts)

	req := test.MakeSimpleRequest("GET", "http://1.2.3.4/task/T1/runs/notanumber/artifacts", nil)
	req.Header.Add(requestid.RequestIdHeader, "test")

	recorded := test.RunRequest(t, api, req)
	recorded.CodeIs(http.StatusBadRequest)

	svc.AssertNotCalled(t, "ListArtifacts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLatestArtifactHandler(t *testing.T) {
	t.Parallel()

	svc := &svcmocks.Service{}
	defer svc.AssertExpectations(t)

	svc.On("GetLatestArtifact", mock.Anything, "T1", "public/log.txt", mock.Anything, mock.Anything).
		Return(&service.GetResult{StatusCode: http.StatusSeeOther, Location: "https://bucket.example.com/get"}, nil)

	h := NewArtifactHandlers(svc)
	api := setUpRestTest(ApiUrlLatestArtifact, rest.Get, h.GetLatestArtifact)

	req := test.MakeSimpleRequest("GET", "http://1.2.3.4/task/T1/artifacts/public/log.txt", nil)
	req.Header.Add(requestid.RequestIdHeader, "test")

	recorded := test.RunRequest(t, api, req)
	recorded.CodeIs(http.StatusSeeOther)
}

func TestListLatestArtifactsHandlerTaskNotFound(t *testing.T) {
	t.Parallel()

	svc := &svcmocks.Service{}
	defer svc.AssertExpectations(t)

	svc.On("ListLatestArtifacts", mock.Anything, "T1", mock.Anything).
		Return(nil, model.NewError(model.KindResourceNotFound, errors.New("task not found").Error()))

	h := NewArtifactHandlers(svc)
	api := setUpRestTest(ApiUrlLatestArtifactsList, rest.Get, h.ListLatestArtifacts)

	req := test.MakeSimpleRequest("GET", "http://1.2.3.4/task/T1/artifacts", nil)
	req.Header.Add(requestid.RequestIdHeader, "test")

	recorded := test.RunRequest(t, api, req)
	recorded.CodeIs(http.StatusNotFound)
}
