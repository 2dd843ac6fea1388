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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpErrorMessage(t *testing.T) {
	testCases := map[string]struct {
		err      OpError
		expected string
	}{
		"op and reason": {
			err: OpError{
				Op:     OpGenerateWriteSAS,
				Reason: errors.New("boom"),
			},
			expected: "azblob GenerateWriteSAS: boom",
		},
		"op message and reason": {
			err: OpError{
				Op:      OpGetRequest,
				Message: "failed to generate SAS token",
				Reason:  errors.New("boom"),
			},
			expected: "azblob GetRequest: failed to generate SAS token: boom",
		},
		"bare": {
			err:      OpError{},
			expected: "azblob",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	reason := errors.New("boom")
	err := OpError{Reason: reason}
	assert.Equal(t, reason, errors.Unwrap(err))
}

func TestOptionsValidate(t *testing.T) {
	testCases := map[string]struct {
		opts    Options
		wantErr bool
	}{
		"valid": {
			opts:    Options{Container: "artifacts", ConnectionString: "UseDevelopmentStorage=true"},
			wantErr: false,
		},
		"missing container": {
			opts:    Options{ConnectionString: "UseDevelopmentStorage=true"},
			wantErr: true,
		},
		"missing connection string": {
			opts:    Options{Container: "artifacts"},
			wantErr: true,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
