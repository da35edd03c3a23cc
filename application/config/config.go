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

// Package config implements the configuration functionality
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
)

const (
	SentryDsnKey       = "SENTRY_DSN"
	ApiUrlKey          = "API_ERROR_REPORTER_API_URL"
	ReportErrorsKey    = "API_ERROR_REPORTER_REPORT_ERRORS"
	InsecureKey        = "API_ERROR_REPORTER_INSECURE"
	LogLevelKey        = "API_ERROR_REPORTER_LOG_LEVEL"
	DefaultApiUrl      = "https://api.snyk.io"
	machineIdAppSecret = "api-error-reporter"
)

var (
	Version       = "SNAPSHOT"
	Development   = "true"
	currentConfig *Config
	mutex         = &sync.Mutex{}
)

type Config struct {
	m                       sync.RWMutex
	configFile              string
	sentryDsn               string
	apiUrl                  string
	isErrorReportingEnabled bool
	insecure                bool
	deviceId                string
	logLevel                string
	logger                  *zerolog.Logger
	logOutput               io.Writer
}

func CurrentConfig() *Config {
	mutex.Lock()
	defer mutex.Unlock()
	if currentConfig == nil {
		currentConfig = New()
	}
	return currentConfig
}

func SetCurrentConfig(config *Config) {
	mutex.Lock()
	defer mutex.Unlock()
	currentConfig = config
}

func IsDevelopment() bool {
	parseBool, _ := strconv.ParseBool(Development)
	return parseBool
}

func New(opts ...ConfigOption) *Config {
	c := &Config{
		apiUrl:                  DefaultApiUrl,
		isErrorReportingEnabled: false,
		logLevel:                zerolog.InfoLevel.String(),
		logOutput:               os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.newLogger()
	if c.deviceId == "" {
		c.deviceId = c.determineDeviceId()
	}
	return c
}

func (c *Config) newLogger() *zerolog.Logger {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(c.getConsoleWriter(c.logOutput)).
		Level(level).
		With().Timestamp().Str("method", "").
		Logger()
	return &logger
}

func (c *Config) getConsoleWriter(writer io.Writer) zerolog.ConsoleWriter {
	return zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = writer
		w.NoColor = true
		w.TimeFormat = time.RFC3339Nano
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"method",
			zerolog.MessageFieldName,
		}
		w.FieldsExclude = []string{"method"}
	})
}

// determineDeviceId is called from New before the config is shared, so it does not lock.
func (c *Config) determineDeviceId() string {
	id, machineErr := machineid.ProtectedID(machineIdAppSecret)
	if machineErr != nil {
		c.logger.Debug().Err(machineErr).Str("method", "config.New").Msg("cannot retrieve machine id")
		return uuid.NewString()
	}
	return id
}

// Load reads settings from the process environment and, if a config file is set, from that
// file. Values in the file override the environment.
func (c *Config) Load() error {
	env := map[string]string{}
	for _, key := range []string{SentryDsnKey, ApiUrlKey, ReportErrorsKey, InsecureKey, LogLevelKey} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}

	configFile := c.ConfigFile()
	if configFile != "" {
		fileEnv, err := readConfigFile(configFile)
		if err != nil {
			return err
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}

	c.apply(env)
	c.Logger().Debug().Str("method", "config.Load").Str("configFile", configFile).Msg("configuration loaded")
	return nil
}

func readConfigFile(path string) (gotenv.Env, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open config file "+path)
	}
	defer func() { _ = file.Close() }()

	env, err := gotenv.StrictParse(file)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't parse config file "+path)
	}
	return env, nil
}

func (c *Config) apply(env map[string]string) {
	if dsn, ok := env[SentryDsnKey]; ok {
		c.SetSentryDsn(dsn)
	}
	if apiUrl, ok := env[ApiUrlKey]; ok && apiUrl != "" {
		c.SetApiUrl(apiUrl)
	}
	if value, ok := env[ReportErrorsKey]; ok {
		c.SetErrorReportingEnabled(parseBoolOrFalse(value))
	}
	if value, ok := env[InsecureKey]; ok {
		c.SetInsecure(parseBoolOrFalse(value))
	}
	if level, ok := env[LogLevelKey]; ok && level != "" {
		c.ConfigureLogging(level)
	}
}

func parseBoolOrFalse(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

// ConfigureLogging rebuilds the logger with the given level. Unknown levels fall back to info.
func (c *Config) ConfigureLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		_, _ = fmt.Fprintln(c.logOutput, "Can't set log level from flag. Setting to default (=info)")
		parsed = zerolog.InfoLevel
	}
	c.m.Lock()
	defer c.m.Unlock()
	c.logLevel = parsed.String()
	c.logger = c.newLogger()
}

func (c *Config) Logger() *zerolog.Logger {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.logger
}

func (c *Config) LogLevel() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.logLevel
}

func (c *Config) ConfigFile() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.configFile
}

func (c *Config) SetConfigFile(configFile string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.configFile = configFile
}

func (c *Config) SentryDsn() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.sentryDsn
}

func (c *Config) SetSentryDsn(dsn string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.sentryDsn = dsn
}

func (c *Config) ApiUrl() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.apiUrl
}

func (c *Config) SetApiUrl(apiUrl string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.apiUrl = strings.TrimSuffix(apiUrl, "/")
}

func (c *Config) IsErrorReportingEnabled() bool {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.isErrorReportingEnabled
}

func (c *Config) SetErrorReportingEnabled(enabled bool) {
	c.m.Lock()
	defer c.m.Unlock()
	c.isErrorReportingEnabled = enabled
}

func (c *Config) Insecure() bool {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.insecure
}

func (c *Config) SetInsecure(insecure bool) {
	c.m.Lock()
	defer c.m.Unlock()
	c.insecure = insecure
}

func (c *Config) DeviceID() string {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.deviceId
}

func (c *Config) SetDeviceID(deviceId string) {
	c.m.Lock()
	defer c.m.Unlock()
	c.deviceId = deviceId
}
