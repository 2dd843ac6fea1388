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

import "fmt"

// Kind discriminates the transport-neutral outcome of a failed service call.
type Kind string

const (
	KindInputError        Kind = "InputError"
	KindRequestConflict   Kind = "RequestConflict"
	KindResourceNotFound  Kind = "ResourceNotFound"
	KindAuthorizationErr  Kind = "AuthorizationError"
	KindInternalError     Kind = "InternalError"
)

// Error carries a Kind alongside a human readable message. It is the only
// error type the service package returns to its callers; everything else
// (store errors, adapter errors) is wrapped into one of these before it
// crosses the service boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func IsKind(err error, kind Kind) bool {
	merr, ok := err.(*Error)
	return ok && merr.Kind == kind
}

func KindOf(err error) Kind {
	if merr, ok := err.(*Error); ok {
		return merr.Kind
	}
	return KindInternalError
}
