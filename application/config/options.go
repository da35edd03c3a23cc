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

import "io"

// ConfigOption is a function that configures a Config instance
type ConfigOption func(*Config)

// WithLogOutput sets the writer the logger writes to (stderr by default)
func WithLogOutput(w io.Writer) ConfigOption {
	return func(c *Config) {
		c.logOutput = w
	}
}

// WithDeviceID skips machine id lookup
func WithDeviceID(deviceId string) ConfigOption {
	return func(c *Config) {
		c.deviceId = deviceId
	}
}

func WithConfigFile(path string) ConfigOption {
	return func(c *Config) {
		c.configFile = path
	}
}
