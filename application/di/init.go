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
	"sync"

	"github.com/snyk/api-error-reporter/application/config"
	er "github.com/snyk/api-error-reporter/domain/observability/error_reporting"
	"github.com/snyk/api-error-reporter/domain/xhr"
	"github.com/snyk/api-error-reporter/infrastructure/api"
	"github.com/snyk/api-error-reporter/infrastructure/sentry"
	"github.com/snyk/api-error-reporter/internal/httpclient"
)

var errorReporter er.ErrorReporter
var telemetryClient er.TelemetryClient
var xhrHandler *xhr.Handler
var apiClient *api.Client
var initMutex = &sync.Mutex{}

func Init(c *config.Config) error {
	initMutex.Lock()
	defer initMutex.Unlock()
	if err := initInfrastructure(c); err != nil {
		return err
	}
	initDomain(c)
	initApplication(c)
	return nil
}

func initInfrastructure(c *config.Config) error {
	hub, err := sentry.NewHub(c, nil)
	if err != nil {
		return err
	}
	errorReporter = sentry.NewSentryErrorReporter(c, hub)
	telemetryClient = sentry.NewTelemetryClient(hub, c.Logger())
	return nil
}

func initDomain(c *config.Config) {
	xhrHandler = xhr.NewHandler(telemetryClient, c.Logger())
}

func initApplication(c *config.Config) {
	httpClient := httpclient.NewHTTPClient(c)
	apiClient = api.NewClient(c, func() *http.Client { return httpClient }, xhrHandler)
}

func ErrorReporter() er.ErrorReporter {
	initMutex.Lock()
	defer initMutex.Unlock()
	return errorReporter
}

func TelemetryClient() er.TelemetryClient {
	initMutex.Lock()
	defer initMutex.Unlock()
	return telemetryClient
}

func XhrHandler() *xhr.Handler {
	initMutex.Lock()
	defer initMutex.Unlock()
	return xhrHandler
}

func ApiClient() *api.Client {
	initMutex.Lock()
	defer initMutex.Unlock()
	return apiClient
}
