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

package error_reporting

import (
	"github.com/rs/zerolog"
)

type testErrorReporter struct {
	logger *zerolog.Logger
}

func NewTestErrorReporter(logger *zerolog.Logger) ErrorReporter {
	return &testErrorReporter{logger: logger}
}

func (s *testErrorReporter) FlushErrorReporting() {
}

func (s *testErrorReporter) CaptureError(err error) bool {
	s.logger.Log().Err(err).Msg("An error has been captured by the testing error reporter")
	return true
}

// loggingScope keeps the last extras and tags so the testing client can log them on capture.
type loggingScope struct {
	extras map[string]any
	tags   map[string]string
}

func (s *loggingScope) SetExtras(extras map[string]any) {
	s.extras = extras
}

func (s *loggingScope) SetTags(tags map[string]string) {
	s.tags = tags
}

type testTelemetryClient struct {
	logger *zerolog.Logger
}

// NewTestTelemetryClient returns a client that only logs captured exceptions.
func NewTestTelemetryClient(logger *zerolog.Logger) TelemetryClient {
	return &testTelemetryClient{logger: logger}
}

func (c *testTelemetryClient) CaptureException(err error) {
	c.logger.Log().Err(err).Msg("An exception has been captured by the testing telemetry client")
}

func (c *testTelemetryClient) CaptureExceptionWithScope(err error, configure func(scope Scope)) {
	scope := &loggingScope{}
	if configure != nil {
		configure(scope)
	}
	c.logger.Log().Err(err).
		Interface("extras", scope.extras).
		Interface("tags", scope.tags).
		Msg("An exception has been captured by the testing telemetry client")
}
