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

package sentry

import (
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	er "github.com/snyk/api-error-reporter/domain/observability/error_reporting"
)

type hubTelemetryClient struct {
	hub    *sentry.Hub
	logger *zerolog.Logger
}

func NewTelemetryClient(hub *sentry.Hub, logger *zerolog.Logger) er.TelemetryClient {
	return &hubTelemetryClient{hub: hub, logger: logger}
}

func (t *hubTelemetryClient) CaptureException(err error) {
	t.logCapture(err, t.hub.CaptureException(err))
}

// CaptureExceptionWithScope captures on a clone of the hub's current scope, so concurrent
// captures never see each other's tags or extras.
func (t *hubTelemetryClient) CaptureExceptionWithScope(err error, configure func(scope er.Scope)) {
	client := t.hub.Client()
	if client == nil {
		t.logger.Debug().Err(err).Str("method", "CaptureExceptionWithScope").Msg("no Sentry client bound")
		return
	}
	scope := t.hub.Scope().Clone()
	if configure != nil {
		configure(scope)
	}
	t.logCapture(err, client.CaptureException(err, &sentry.EventHint{OriginalException: err}, scope))
}

func (t *hubTelemetryClient) logCapture(err error, eventId *sentry.EventID) {
	if eventId == nil {
		t.logger.Debug().Err(err).Str("method", "CaptureException").Msg("error was not sent to Sentry")
		return
	}
	t.logger.Info().Err(err).Str("method", "CaptureException").Msgf("Sent error to Sentry (ID: %v)", *eventId)
}
