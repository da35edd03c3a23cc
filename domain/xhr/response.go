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

// Package xhr forwards failed API responses to the error tracking backend.
package xhr

// ResponseJSON is the decoded JSON object of an error response body.
type ResponseJSON map[string]any

// Detail describes the nature of an API error. The API sends it either as a plain string or as an
// object carrying a machine readable code and a message.
type Detail struct {
	Text       string
	Code       string
	Message    string
	Structured bool
}

// Detail returns the detail field of the body. ok is false when the field is absent or holds a
// zero value: null, "", 0 or false.
func (r ResponseJSON) Detail() (detail Detail, ok bool) {
	raw, found := r["detail"]
	if !found || raw == nil {
		return Detail{}, false
	}

	switch d := raw.(type) {
	case string:
		if d == "" {
			return Detail{}, false
		}
		return Detail{Text: d}, true
	case map[string]any:
		detail = Detail{Structured: true}
		detail.Code, _ = d["code"].(string)
		if msg, isString := d["message"].(string); isString {
			detail.Message = msg
		} else {
			detail.Message, _ = d["detail"].(string)
		}
		return detail, true
	case bool:
		return Detail{Structured: true}, d
	case float64:
		return Detail{Structured: true}, d != 0
	case int:
		return Detail{Structured: true}, d != 0
	default:
		// arrays and non-zero numbers or true carry no code
		return Detail{Structured: true}, true
	}
}

// ErrorResponse is anything shaped like a failed HTTP response.
type ErrorResponse interface {
	ResponseStatus() int
	ResponseBody() ResponseJSON
}

// EndpointResponse is an ErrorResponse that also knows which request produced it.
type EndpointResponse interface {
	ErrorResponse
	Endpoint() string
}

// ResponseLike is the minimal failed response: a status and a decoded body.
type ResponseLike struct {
	Status       int
	ResponseJSON ResponseJSON
}

func (r *ResponseLike) ResponseStatus() int {
	if r == nil {
		return 0
	}
	return r.Status
}

func (r *ResponseLike) ResponseBody() ResponseJSON {
	if r == nil {
		return nil
	}
	return r.ResponseJSON
}
