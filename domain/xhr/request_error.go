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
	"fmt"
	"strings"
)

// RequestError is returned by the API client when a request fails, either because the server
// answered with an error status or because no response was received at all.
type RequestError struct {
	Method   string
	Path     string
	Err      error
	Response *ResponseLike
}

var _ EndpointResponse = (*RequestError)(nil)

func NewRequestError(method string, path string, err error, response *ResponseLike) *RequestError {
	return &RequestError{
		Method:   strings.ToUpper(method),
		Path:     path,
		Err:      err,
		Response: response,
	}
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Endpoint()
	if status := e.ResponseStatus(); status != 0 {
		msg = fmt.Sprintf("%s %d", msg, status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Endpoint returns "METHOD path", or an empty string when either part is unknown.
func (e *RequestError) Endpoint() string {
	if e == nil || e.Method == "" || e.Path == "" {
		return ""
	}
	return e.Method + " " + e.Path
}

func (e *RequestError) ResponseStatus() int {
	if e == nil {
		return 0
	}
	return e.Response.ResponseStatus()
}

func (e *RequestError) ResponseBody() ResponseJSON {
	if e == nil {
		return nil
	}
	return e.Response.ResponseBody()
}
