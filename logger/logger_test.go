/*
Copyright 2025 Meldq Authors. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	require.Equal(t, LogInfo, LogLevelFromEnvironment())

	for env, level := range map[string]LogLevel{
		"error": LogError,
		"warn":  LogWarn,
		"info":  LogInfo,
		"debug": LogDebug,
	} {
		t.Setenv("LOG_LEVEL", env)
		require.Equal(t, level, LogLevelFromEnvironment())
	}
}

func TestSimpleLogger(t *testing.T) {
	var buf bytes.Buffer

	l := NewSimpleLoggerWithLevel("leftist", &buf, LogWarn)

	l.Debugf("debug line")
	l.Infof("info line")
	require.Zero(t, buf.Len())

	l.Warningf("warning %d", 1)
	l.Errorf("error %d", 2)

	out := buf.String()
	require.Contains(t, out, "leftist ")
	require.Contains(t, out, "WARNING: warning 1")
	require.Contains(t, out, "ERROR: error 2")
	require.NotContains(t, out, "info line")

	require.NoError(t, l.Close())
}

func TestMemoryLogger(t *testing.T) {
	l := NewMemoryLoggerWithLevel(LogDebug)

	l.Debugf("op %s aborted", "push")
	l.Infof("heap %s created", "h1")
	l.Warningf("warning")
	l.Errorf("error")

	logs := l.GetLogs()
	require.Len(t, logs, 4)
	require.Contains(t, logs[0], "DBG: op push aborted")
	require.Contains(t, logs[1], "INF: heap h1 created")
	require.Contains(t, logs[2], "WRN: warning")
	require.Contains(t, logs[3], "ERR: error")

	// a level-filtered line is not retained
	filtered := NewMemoryLoggerWithLevel(LogError)
	filtered.Debugf("dropped")
	require.Empty(t, filtered.GetLogs())

	require.NoError(t, l.Close())
}
