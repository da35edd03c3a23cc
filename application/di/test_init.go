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

package di

import (
	"net/http"
	"testing"

	"github.com/snyk/api-error-reporter/application/config"
	er "github.com/snyk/api-error-reporter/domain/observability/error_reporting"
	"github.com/snyk/api-error-reporter/domain/xhr"
	"github.com/snyk/api-error-reporter/infrastructure/api"
)

// TestInit wires the logging test doubles instead of Sentry. The http client is the one the
// test passes in, so it can be stubbed.
func TestInit(t *testing.T, c *config.Config, httpClient *http.Client) {
	t.Helper()
	TestInitWithTelemetryClient(t, c, httpClient, er.NewTestTelemetryClient(c.Logger()))
}

// TestInitWithTelemetryClient is TestInit with a caller supplied telemetry client, e.g. a mock.
func TestInitWithTelemetryClient(t *testing.T, c *config.Config, httpClient *http.Client, telemetry er.TelemetryClient) {
	t.Helper()
	initMutex.Lock()
	defer initMutex.Unlock()
	errorReporter = er.NewTestErrorReporter(c.Logger())
	telemetryClient = telemetry
	xhrHandler = xhr.NewHandler(telemetryClient, c.Logger())
	apiClient = api.NewClient(c, func() *http.Client { return httpClient }, xhrHandler)
}
