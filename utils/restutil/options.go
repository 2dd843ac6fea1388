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
package restutil

import (
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
)

const HttpHeaderAllow string = "Allow"

type CreateOptionsHandler func(methods ...string) rest.HandlerFunc

type OptionsHandler struct {
	methods map[string]bool
}

// NewOptionsHandler builds an OPTIONS handler advertising methods, always
// including OPTIONS itself.
func NewOptionsHandler(methods ...string) rest.HandlerFunc {
	handler := &OptionsHandler{
		methods: make(map[string]bool, len(methods)+1),
	}
	for _, method := range methods {
		handler.methods[method] = true
	}
	if _, ok := handler.methods[http.MethodOptions]; !ok {
		handler.methods[http.MethodOptions] = true
	}
	return handler.handle
}

func (o *OptionsHandler) handle(w rest.ResponseWriter, r *rest.Request) {
	for method := range o.methods {
		w.Header().Add(HttpHeaderAllow, method)
	}
}

// AutogenOptionsRoutes adds an OPTIONS route for every distinct path
// pattern among routes, advertising the methods registered against it.
func AutogenOptionsRoutes(createHandler CreateOptionsHandler, routes ...*rest.Route) []*rest.Route {
	methodGroups := make(map[string][]string, len(routes))
	for _, route := range routes {
		methodGroups[route.PathExp] = append(methodGroups[route.PathExp], route.HttpMethod)
	}

	options := make([]*rest.Route, 0, len(methodGroups))
	for path, methods := range methodGroups {
		options = append(options, rest.Options(path, createHandler(methods...)))
	}
	return append(routes, options...)
}
