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

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/snyk/api-error-reporter/application/config"
	"github.com/snyk/api-error-reporter/application/di"
	"github.com/snyk/api-error-reporter/domain/xhr"
)

const defaultMessage = "API request failed"

type request struct {
	method  string
	path    string
	message string
	body    []byte
}

// cliOptions holds the flags that override configuration. Empty values leave the
// configuration untouched.
type cliOptions struct {
	logLevel     string
	configFile   string
	reportErrors bool
	dsn          string
	apiUrl       string
}

func main() {
	os.Exit(run(config.New(), os.Args, os.Stdout, di.Init))
}

func run(c *config.Config, args []string, out io.Writer, initDependencies func(c *config.Config) error) int {
	config.SetCurrentConfig(c)

	req, opts, output, err := parseFlags(args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err, output)
		return 1
	}
	if err = loadConfig(c, opts); err != nil {
		c.Logger().Err(err).Str("method", "main").Msg("couldn't load configuration")
		return 1
	}
	if err = initDependencies(c); err != nil {
		c.Logger().Err(err).Str("method", "main").Msg("couldn't initialize dependencies")
		return 1
	}

	errorReporter := di.ErrorReporter()
	defer errorReporter.FlushErrorReporting()
	defer func() {
		if r := recover(); r != nil {
			errorReporter.CaptureError(fmt.Errorf("%v", r))
			errorReporter.FlushErrorReporting()
			panic(r)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := di.ApiClient().DoAndReport(ctx, req.message, req.method, req.path, req.body)
	if err != nil {
		var requestError *xhr.RequestError
		if errors.As(err, &requestError) {
			c.Logger().Error().Str("method", "main").Int("status", requestError.ResponseStatus()).Msg(err.Error())
		} else {
			c.Logger().Err(err).Str("method", "main").Send()
		}
		return 2
	}

	c.Logger().Debug().Str("method", "main").Interface("response", result).Msg("request succeeded")
	_, _ = fmt.Fprintln(out, "OK")
	return 0
}

// loadConfig reads the environment and the config file, then applies the flags on top, so an
// explicit flag always wins.
func loadConfig(c *config.Config, opts cliOptions) error {
	c.SetConfigFile(opts.configFile)
	if err := c.Load(); err != nil {
		return err
	}
	opts.apply(c)
	return nil
}

func (o cliOptions) apply(c *config.Config) {
	if o.logLevel != "" {
		c.ConfigureLogging(o.logLevel)
	}
	if o.reportErrors {
		c.SetErrorReportingEnabled(true)
	}
	if o.dsn != "" {
		c.SetSentryDsn(o.dsn)
	}
	if o.apiUrl != "" {
		c.SetApiUrl(o.apiUrl)
	}
}

func parseFlags(args []string) (request, cliOptions, string, error) {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	var buf bytes.Buffer
	flags.SetOutput(&buf)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(&buf, "Usage of %s: [flags] METHOD PATH [MESSAGE]\n", args[0])
		flags.PrintDefaults()
	}

	logLevelFlag := flags.StringP("logLevel", "l", "info", "sets the log-level to <trace|debug|info|warn|error|fatal>")
	configFlag := flags.StringP(
		"configfile",
		"c",
		"",
		"provide the full path of a config file to use. Format VARIABLENAME=VARIABLEVALUE")
	reportErrorsFlag := flags.Bool("reportErrors", false, "enables error reporting")
	dsnFlag := flags.String("dsn", "", "Sentry DSN errors are reported to")
	apiUrlFlag := flags.String("apiUrl", "", "base URL of the API, defaults to "+config.DefaultApiUrl)
	dataFlag := flags.StringP("data", "d", "", "JSON request body")

	err := flags.Parse(args[1:])
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			flags.Usage()
		}
		return request{}, cliOptions{}, buf.String(), err
	}

	positional := flags.Args()
	if len(positional) < 2 {
		flags.Usage()
		return request{}, cliOptions{}, buf.String(), errors.New("METHOD and PATH are required")
	}

	opts := cliOptions{
		configFile:   *configFlag,
		reportErrors: *reportErrorsFlag,
		dsn:          *dsnFlag,
		apiUrl:       *apiUrlFlag,
	}
	// the default level must not override a level from the environment
	if flags.Changed("logLevel") {
		opts.logLevel = *logLevelFlag
	}

	req := request{method: positional[0], path: positional[1], message: defaultMessage}
	if len(positional) > 2 {
		req.message = positional[2]
	}
	if *dataFlag != "" {
		req.body = []byte(*dataFlag)
	}
	return req, opts, buf.String(), nil
}
