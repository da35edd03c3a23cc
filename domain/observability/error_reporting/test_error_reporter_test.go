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
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTestErrorReporter_CaptureError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	reporter := NewTestErrorReporter(&logger)

	assert.True(t, reporter.CaptureError(errors.New("boom")))
	assert.Contains(t, buf.String(), "boom")
}

func TestTestTelemetryClient_LogsScope(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	client := NewTestTelemetryClient(&logger)

	client.CaptureExceptionWithScope(errors.New("scoped"), func(scope Scope) {
		scope.SetTags(map[string]string{"endpoint": "GET /ball"})
	})
	assert.Contains(t, buf.String(), "GET /ball")

	buf.Reset()
	client.CaptureException(errors.New("unscoped"))
	assert.Contains(t, buf.String(), "unscoped")
	assert.NotContains(t, buf.String(), "GET /ball")
}

func TestTestTelemetryClient_NilConfigure(t *testing.T) {
	logger := zerolog.Nop()
	client := NewTestTelemetryClient(&logger)

	assert.NotPanics(t, func() { client.CaptureExceptionWithScope(errors.New("boom"), nil) })
}
