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

	"github.com/snyk/api-error-reporter/application/config"
	"github.com/snyk/api-error-reporter/internal/httpclient"
)

// NewHub creates a hub bound to its own client. A nil transport selects the default one, which
// does not send anything unless a DSN is configured.
func NewHub(c *config.Config, transport sentry.Transport) (*sentry.Hub, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              c.SentryDsn(),
		Environment:      sentryEnvironment(),
		Release:          config.Version,
		Debug:            config.IsDevelopment(),
		BeforeSend:       beforeSend(c),
		HTTPClient:       httpclient.NewHTTPClient(c),
		Transport:        transport,
		AttachStacktrace: true,
	})
	if err != nil {
		c.Logger().Error().Err(err).Str("method", "NewHub").Msg("couldn't initialize error reporting")
		return nil, err
	}

	hub := sentry.NewHub(client, sentry.NewScope())
	addUserId(c, hub)
	c.Logger().Info().Str("method", "NewHub").Msg("Error reporting initialized")
	return hub, nil
}

func addUserId(c *config.Config, hub *sentry.Hub) {
	device := c.DeviceID()
	if device != "" {
		hub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetUser(sentry.User{ID: device})
		})
	}
}

func beforeSend(c *config.Config) func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	return func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
		if c.IsErrorReportingEnabled() {
			return event
		}
		return nil
	}
}

func sentryEnvironment() string {
	if config.IsDevelopment() {
		return "development"
	} else {
		return "production"
	}
}
