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
package main

import (
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/accesslog"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"

	"github.com/grenade/taskcluster-queue/config"
)

const (
	HttpHeaderContentType                 string = "Content-type"
	HttpHeaderOrigin                      string = "Origin"
	HttpHeaderAuthorization               string = "Authorization"
	HttpHeaderAcceptEncoding              string = "Accept-Encoding"
	HttpHeaderAccessControlRequestHeaders string = "Access-Control-Request-Headers"
	HttpHeaderAccessControlRequestMethod  string = "Access-Control-Request-Method"
	HttpHeaderLocation                    string = "Location"
	HttpHeaderAllow                       string = "Allow"
	HttpHeaderAccept                      string = "Accept"
)

var DefaultDevStack = []rest.Middleware{
	&requestlog.RequestLogMiddleware{},
	&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
	&rest.TimerMiddleware{},
	&rest.RecorderMiddleware{},
	&rest.RecoverMiddleware{
		EnableResponseStackTrace: true,
	},
	&rest.JsonIndentMiddleware{},
	&requestid.RequestIdMiddleware{},
}

var DefaultProdStack = []rest.Middleware{
	&requestlog.RequestLogMiddleware{},
	&accesslog.AccessLogMiddleware{Format: accesslog.SimpleLogFormat},
	&rest.TimerMiddleware{},
	&rest.RecorderMiddleware{},
	&rest.RecoverMiddleware{},
	&rest.GzipMiddleware{},
	&requestid.RequestIdMiddleware{},
}

// SetupMiddleware installs the request pipeline every route in
// api/http runs behind: logging, CORS, content negotiation, and the
// request ID propagated into every rendered error body.
func SetupMiddleware(c config.Reader, api *rest.Api) {
	api.Use(DefaultProdStack...)

	api.Use(&rest.ContentTypeCheckerMiddleware{})

	api.Use(&rest.CorsMiddleware{
		RejectNonCorsRequests: false,
		OriginValidator: func(origin string, request *rest.Request) bool {
			return true
		},
		AccessControlMaxAge:           60,
		AccessControlAllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			HttpHeaderAccept,
			HttpHeaderAllow,
			HttpHeaderContentType,
			HttpHeaderOrigin,
			HttpHeaderAuthorization,
			HttpHeaderAcceptEncoding,
			HttpHeaderAccessControlRequestHeaders,
			HttpHeaderAccessControlRequestMethod,
		},
		AccessControlExposeHeaders: []string{
			HttpHeaderLocation,
		},
	})
}
