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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New(WithDeviceID("device"))

	assert.Equal(t, DefaultApiUrl, c.ApiUrl())
	assert.False(t, c.IsErrorReportingEnabled())
	assert.False(t, c.Insecure())
	assert.Empty(t, c.SentryDsn())
	assert.Equal(t, "device", c.DeviceID())
	assert.Equal(t, "info", c.LogLevel())
	assert.NotNil(t, c.Logger())
}

func TestNew_DeterminesDeviceId(t *testing.T) {
	c := New()
	assert.NotEmpty(t, c.DeviceID())
}

func TestCurrentConfig(t *testing.T) {
	c := New(WithDeviceID("current"))
	SetCurrentConfig(c)
	t.Cleanup(func() { SetCurrentConfig(nil) })

	assert.Same(t, c, CurrentConfig())

	SetCurrentConfig(nil)
	assert.NotNil(t, CurrentConfig())
}

func TestIsDevelopment(t *testing.T) {
	original := Development
	t.Cleanup(func() { Development = original })

	Development = "true"
	assert.True(t, IsDevelopment())

	Development = "false"
	assert.False(t, IsDevelopment())

	Development = "not-a-bool"
	assert.False(t, IsDevelopment())
}

func TestSetApiUrl_TrimsTrailingSlash(t *testing.T) {
	c := New(WithDeviceID("device"))
	c.SetApiUrl("https://api.example.com/")
	assert.Equal(t, "https://api.example.com", c.ApiUrl())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(SentryDsnKey, "https://public@sentry.example.com/1")
	t.Setenv(ApiUrlKey, "https://api.example.com")
	t.Setenv(ReportErrorsKey, "true")
	t.Setenv(InsecureKey, "1")

	c := New(WithDeviceID("device"))
	require.NoError(t, c.Load())

	assert.Equal(t, "https://public@sentry.example.com/1", c.SentryDsn())
	assert.Equal(t, "https://api.example.com", c.ApiUrl())
	assert.True(t, c.IsErrorReportingEnabled())
	assert.True(t, c.Insecure())
}

func TestLoad_ConfigFileOverridesEnvironment(t *testing.T) {
	t.Setenv(ApiUrlKey, "https://env.example.com")
	t.Setenv(ReportErrorsKey, "true")

	configFile := filepath.Join(t.TempDir(), "reporter.env")
	content := "API_ERROR_REPORTER_API_URL=https://file.example.com\n" +
		"API_ERROR_REPORTER_REPORT_ERRORS=false\n" +
		"API_ERROR_REPORTER_LOG_LEVEL=debug\n"
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

	c := New(WithDeviceID("device"), WithConfigFile(configFile))
	require.NoError(t, c.Load())

	assert.Equal(t, "https://file.example.com", c.ApiUrl())
	assert.False(t, c.IsErrorReportingEnabled())
	assert.Equal(t, "debug", c.LogLevel())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	c := New(WithDeviceID("device"), WithConfigFile(filepath.Join(t.TempDir(), "does-not-exist.env")))

	err := c.Load()

	assert.ErrorContains(t, err, "couldn't open config file")
}

func TestConfigureLogging(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithDeviceID("device"), WithLogOutput(&buf))

	t.Run("valid level", func(t *testing.T) {
		c.ConfigureLogging("debug")
		assert.Equal(t, "debug", c.LogLevel())

		c.Logger().Debug().Str("method", "TestConfigureLogging").Msg("visible at debug")
		assert.Contains(t, buf.String(), "visible at debug")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		buf.Reset()
		c.ConfigureLogging("chatty")
		assert.Equal(t, "info", c.LogLevel())

		c.Logger().Debug().Msg("hidden at info")
		assert.NotContains(t, buf.String(), "hidden at info")
	})
}
