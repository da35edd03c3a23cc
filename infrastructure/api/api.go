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

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/snyk/api-error-reporter/application/config"
	"github.com/snyk/api-error-reporter/domain/xhr"
)

const (
	maxErrorBodySize    = 1 << 20
	maxResponseBodySize = 64 << 20
)

type Client struct {
	c                   *config.Config
	httpClientFunc      func() *http.Client
	handler             *xhr.Handler
	maxResponseBodySize int64
}

func NewClient(c *config.Config, httpClientFunc func() *http.Client, handler *xhr.Handler) *Client {
	return &Client{
		c:                   c,
		httpClientFunc:      httpClientFunc,
		handler:             handler,
		maxResponseBodySize: maxResponseBodySize,
	}
}

// Do sends a request to the configured API and decodes the JSON object it answers with. Any
// failure, including error statuses, is returned as *xhr.RequestError.
func (a *Client) Do(ctx context.Context, method string, path string, requestBody []byte) (xhr.ResponseJSON, error) {
	logger := a.c.Logger().With().Str("method", "api.Do").Logger()
	method = strings.ToUpper(method)
	path = normalizePath(path)

	var body io.Reader
	if requestBody != nil {
		body = bytes.NewReader(requestBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, a.c.ApiUrl()+path, body)
	if err != nil {
		return nil, xhr.NewRequestError(method, path, errors.Wrap(err, "couldn't create request"), nil)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "api-error-reporter/"+config.Version)

	logger.Trace().Str("endpoint", method+" "+path).Str("requestBody", string(requestBody)).Msg("SEND TO REMOTE")
	response, err := a.httpClientFunc().Do(req)
	if err != nil {
		return nil, xhr.NewRequestError(method, path, errors.Wrap(err, "request failed"), nil)
	}
	defer func() {
		closeErr := response.Body.Close()
		if closeErr != nil {
			logger.Err(closeErr).Msg("Couldn't close response body")
		}
	}()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// error bodies are only inspected for their detail, a truncated one decodes to no detail
		errorBody, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
		logger.Trace().Str("response.Status", response.Status).Str("responseBody", string(errorBody)).Msg("RECEIVED FROM REMOTE")
		return nil, xhr.NewRequestError(method, path, errors.Errorf("unexpected status %s", response.Status), &xhr.ResponseLike{
			Status:       response.StatusCode,
			ResponseJSON: parseResponseJSON(errorBody, logger),
		})
	}

	responseBody, readErr := io.ReadAll(io.LimitReader(response.Body, a.maxResponseBodySize+1))
	logger.Trace().Str("response.Status", response.Status).Str("responseBody", string(responseBody)).Msg("RECEIVED FROM REMOTE")
	if readErr != nil {
		return nil, xhr.NewRequestError(method, path, errors.Wrap(readErr, "couldn't read response body"), nil)
	}
	if int64(len(responseBody)) > a.maxResponseBodySize {
		return nil, xhr.NewRequestError(method, path,
			errors.Errorf("response too large: more than %d bytes", a.maxResponseBodySize), nil)
	}

	if len(bytes.TrimSpace(responseBody)) == 0 {
		return xhr.ResponseJSON{}, nil
	}
	var result xhr.ResponseJSON
	if err = json.Unmarshal(responseBody, &result); err != nil {
		return nil, xhr.NewRequestError(method, path, errors.Wrap(err, "couldn't unmarshal response"), nil)
	}
	return result, nil
}

// DoAndReport behaves like Do and additionally reports a failed response to the handler, using
// message as the description of the reported error.
func (a *Client) DoAndReport(ctx context.Context, message string, method string, path string, requestBody []byte) (xhr.ResponseJSON, error) {
	result, err := a.Do(ctx, method, path, requestBody)
	var requestError *xhr.RequestError
	if err != nil && a.handler != nil && errors.As(err, &requestError) {
		a.handler.Handle(message, requestError)
	}
	return result, err
}

// parseResponseJSON decodes an error body. Bodies that are not a JSON object yield an empty
// ResponseJSON, which the handler treats as having no detail.
func parseResponseJSON(body []byte, logger zerolog.Logger) xhr.ResponseJSON {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return xhr.ResponseJSON{}
	}
	var responseJSON xhr.ResponseJSON
	if err := json.Unmarshal(trimmed, &responseJSON); err != nil {
		logger.Debug().Err(err).Msg("error response body is not valid JSON")
		return xhr.ResponseJSON{}
	}
	return responseJSON
}

func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
