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
	"github.com/stretchr/testify/mock"
)

type TelemetryClientMock struct {
	mock.Mock
}

func NewTelemetryClientMock() *TelemetryClientMock {
	return &TelemetryClientMock{}
}

var _ TelemetryClient = (*TelemetryClientMock)(nil)

func (m *TelemetryClientMock) CaptureException(err error) {
	m.Called(err)
}

// CaptureExceptionWithScope records err and hands the Scope given to Return to configure.
func (m *TelemetryClientMock) CaptureExceptionWithScope(err error, configure func(scope Scope)) {
	args := m.Called(err)
	if scope, ok := args.Get(0).(Scope); ok && configure != nil {
		configure(scope)
	}
}

type ScopeMock struct {
	mock.Mock
}

func NewScopeMock() *ScopeMock {
	return &ScopeMock{}
}

var _ Scope = (*ScopeMock)(nil)

func (m *ScopeMock) SetExtras(extras map[string]any) {
	m.Called(extras)
}

func (m *ScopeMock) SetTags(tags map[string]string) {
	m.Called(tags)
}
