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
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/snyk/api-error-reporter/application/config"
	er "github.com/snyk/api-error-reporter/domain/observability/error_reporting"
)

// A Sentry implementation of our error reporter that respects user preferences regarding tracking
type gdprAwareSentryErrorReporter struct {
	c   *config.Config
	hub *sentry.Hub
}

func NewSentryErrorReporter(c *config.Config, hub *sentry.Hub) er.ErrorReporter {
	return &gdprAwareSentryErrorReporter{c: c, hub: hub}
}

func (s *gdprAwareSentryErrorReporter) FlushErrorReporting() {
	// Set the timeout to the maximum duration the program can afford to wait
	s.hub.Flush(2 * time.Second)
}

func (s *gdprAwareSentryErrorReporter) CaptureError(err error) bool {
	if s.c.IsErrorReportingEnabled() {
		eventId := s.hub.CaptureException(err)
		s.c.Logger().Info().Err(err).Str("method", "CaptureError").Msgf("Sent error to Sentry (ID: %v)", eventId)
		return true
	}
	return false
}
