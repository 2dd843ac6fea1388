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

package azblob

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Options configures one Azure blob container adapter.
type Options struct {
	Container        string
	ConnectionString string
}

func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Container, validation.Required),
		validation.Field(&o.ConnectionString, validation.Required),
	)
}
