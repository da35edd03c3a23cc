/*
 * Copyright 2022 Snyk Ltd.
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

package httpclient

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"

	"github.com/snyk/api-error-reporter/application/config"
)

const defaultTimeout = 30 * time.Second

func NewHTTPClient(c *config.Config) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	method := "NewHTTPClient"
	logger := c.Logger()
	if c.Insecure() {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via configuration
		logger.Info().Str("method", method).Msg("Creating insecure http client")
	}
	client := &http.Client{Transport: tr, Timeout: defaultTimeout}

	req, err := http.NewRequest(http.MethodGet, c.ApiUrl(), nil)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
		return client
	}
	proxy, err := tr.Proxy(req)
	if err != nil {
		logger.Err(err).Str("method", method).Send()
	}
	if proxy != nil {
		logger.Info().Str("method", method).Str("proxy", maskProxyCredentials(proxy.String())).Msg("created http client with proxy support")
	}
	return client
}

func maskProxyCredentials(proxy string) string {
	proxySplit := strings.Split(proxy, "@")
	if len(proxySplit) > 1 {
		scheme := ""
		if i := strings.Index(proxySplit[0], "://"); i >= 0 {
			scheme = proxySplit[0][:i+3]
		}
		return scheme + "xxx@" + proxySplit[len(proxySplit)-1]
	}
	return proxy
}
