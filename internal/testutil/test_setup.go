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

package testutil

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/snyk/api-error-reporter/application/config"
)

// UnitTest installs a fresh config with a fixed device id and logging routed to the test log.
func UnitTest(t *testing.T) *config.Config {
	t.Helper()
	c := config.New(
		config.WithDeviceID("00000000-0000-0000-0000-000000000001"),
		config.WithLogOutput(zerolog.NewTestWriter(t)),
	)
	c.ConfigureLogging(zerolog.DebugLevel.String())
	config.SetCurrentConfig(c)
	t.Cleanup(func() {
		config.SetCurrentConfig(nil)
	})
	return c
}
