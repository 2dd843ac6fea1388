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
package config

import (
	"errors"
	"testing"
	"time"
)

type mockReader struct{}

func (m *mockReader) Get(key string) interface{}                      { return nil }
func (m *mockReader) GetBool(key string) bool                         { return true }
func (m *mockReader) GetFloat64(key string) float64                   { return 1.1 }
func (m *mockReader) GetInt(key string) int                           { return 1 }
func (m *mockReader) GetString(key string) string                     { return "some string" }
func (m *mockReader) GetStringMap(key string) map[string]interface{}  { return nil }
func (m *mockReader) GetStringMapString(key string) map[string]string { return nil }
func (m *mockReader) GetStringSlice(key string) []string              { return []string{} }
func (m *mockReader) GetTime(key string) time.Time                    { return time.Now() }
func (m *mockReader) GetDuration(key string) time.Duration            { return time.Second }
func (m *mockReader) IsSet(key string) bool                           { return true }

func TestValidateConfig(t *testing.T) {
	failure := errors.New("test error")

	cases := []struct {
		out        error
		validators []Validator
	}{
		{nil, []Validator{}},
		{failure, []Validator{func(c Reader) error { return failure }}},
	}

	for _, c := range cases {
		if ValidateConfig(&mockReader{}, c.validators...) != c.out {
			t.FailNow()
		}
	}
}

func TestSetDefaults(t *testing.T) {
	v := map[string]interface{}{}
	writer := &mapWriter{v}
	SetDefaults(writer, []Default{
		{Key: "listen", Value: ":8080"},
		{Key: "aws.region", Value: "us-east-1"},
	})
	if v["listen"] != ":8080" || v["aws.region"] != "us-east-1" {
		t.FailNow()
	}
}

type mapWriter struct {
	m map[string]interface{}
}

func (w *mapWriter) SetDefault(key string, val interface{}) { w.m[key] = val }
func (w *mapWriter) Set(key string, val interface{})        { w.m[key] = val }
