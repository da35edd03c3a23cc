/*
 * © 2026 Snyk Limited
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package xhr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseJSON_Detail(t *testing.T) {
	tests := []struct {
		name     string
		body     ResponseJSON
		expected Detail
		ok       bool
	}{
		{name: "nil body", body: nil, ok: false},
		{name: "missing detail", body: ResponseJSON{"error": "x"}, ok: false},
		{name: "null detail", body: ResponseJSON{"detail": nil}, ok: false},
		{name: "empty string detail", body: ResponseJSON{"detail": ""}, ok: false},
		{name: "string detail", body: ResponseJSON{"detail": "Error"}, expected: Detail{Text: "Error"}, ok: true},
		{
			name:     "object detail with message",
			body:     ResponseJSON{"detail": map[string]any{"code": "api-err-code", "message": "Error message"}},
			expected: Detail{Code: "api-err-code", Message: "Error message", Structured: true},
			ok:       true,
		},
		{
			name:     "object detail with nested detail",
			body:     ResponseJSON{"detail": map[string]any{"code": "sudo-required", "detail": "Sudo required"}},
			expected: Detail{Code: "sudo-required", Message: "Sudo required", Structured: true},
			ok:       true,
		},
		{
			name:     "object detail with non-string code",
			body:     ResponseJSON{"detail": map[string]any{"code": 42.0}},
			expected: Detail{Structured: true},
			ok:       true,
		},
		{name: "zero detail", body: ResponseJSON{"detail": 0.0}, expected: Detail{Structured: true}, ok: false},
		{name: "zero int detail", body: ResponseJSON{"detail": 0}, expected: Detail{Structured: true}, ok: false},
		{name: "false detail", body: ResponseJSON{"detail": false}, expected: Detail{Structured: true}, ok: false},
		{name: "numeric detail", body: ResponseJSON{"detail": 42.0}, expected: Detail{Structured: true}, ok: true},
		{name: "true detail", body: ResponseJSON{"detail": true}, expected: Detail{Structured: true}, ok: true},
		{name: "array detail", body: ResponseJSON{"detail": []any{"a"}}, expected: Detail{Structured: true}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, ok := tt.body.Detail()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, detail)
		})
	}
}

func TestResponseLike_NilReceiver(t *testing.T) {
	var r *ResponseLike
	assert.Equal(t, 0, r.ResponseStatus())
	assert.Nil(t, r.ResponseBody())
}
