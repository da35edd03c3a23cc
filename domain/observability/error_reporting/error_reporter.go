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

type ErrorReporter interface {
	FlushErrorReporting()
	CaptureError(err error) bool
}

// Scope holds metadata that is attached to exceptions captured while it is the current scope.
type Scope interface {
	SetExtras(extras map[string]any)
	SetTags(tags map[string]string)
}

// TelemetryClient is the capture side of an error tracking SDK.
type TelemetryClient interface {
	CaptureException(err error)
	// CaptureExceptionWithScope captures err with a scope that belongs to this call only.
	// configure fills the scope in before the capture.
	CaptureExceptionWithScope(err error, configure func(scope Scope))
}
