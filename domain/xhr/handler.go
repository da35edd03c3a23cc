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
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	er "github.com/snyk/api-error-reporter/domain/observability/error_reporting"
)

// SudoRequiredCode signals that the API wants the user to re-authenticate. It is part of the
// normal flow and never reported.
const SudoRequiredCode = "sudo-required"

type Handler struct {
	client er.TelemetryClient
	logger *zerolog.Logger
}

func NewHandler(client er.TelemetryClient, logger *zerolog.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Handle reports resp to the telemetry client as an error described by message. Responses
// without a detail and sudo-required responses are dropped. When resp knows its status and
// endpoint, both are attached to a scope that only lives for this capture.
func (h *Handler) Handle(message string, resp ErrorResponse) {
	logger := h.logger.With().Str("method", "xhr.Handle").Logger()
	if resp == nil {
		logger.Trace().Msg("no response, nothing to report")
		return
	}

	body := resp.ResponseBody()
	detail, ok := body.Detail()
	if !ok {
		logger.Trace().Msg("response has no detail, nothing to report")
		return
	}

	if detail.Code == SudoRequiredCode {
		logger.Debug().Msg("ignoring sudo-required response")
		return
	}

	err := errors.New(message)
	status := resp.ResponseStatus()
	endpoint := ""
	if endpointResponse, isEndpointResponse := resp.(EndpointResponse); isEndpointResponse {
		endpoint = endpointResponse.Endpoint()
	}

	if status == 0 || endpoint == "" {
		logger.Debug().Str("code", detail.Code).Msg(message)
		h.client.CaptureException(err)
		return
	}

	logger.Debug().Int("status", status).Str("endpoint", endpoint).Str("code", detail.Code).Msg(message)
	h.client.CaptureExceptionWithScope(err, func(scope er.Scope) {
		scope.SetExtras(map[string]any{
			"status":       status,
			"responseJSON": body,
		})
		scope.SetTags(map[string]string{
			"responseStatus": strconv.Itoa(status),
			"endpoint":       endpoint,
		})
	})
}
