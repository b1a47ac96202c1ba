// Copyright © 2026 antareswinjobs contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFileLogger_CreatesFolderAndFile(t *testing.T) {
	root := t.TempDir()
	logFolder := filepath.Join(root, "logs")

	logger, err := NewFileLogger(logFolder, "driver", ELogLevel.Info(), false)
	require.NoError(t, err)
	defer logger.CloseLog()

	entries, err := os.ReadDir(logFolder)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasSuffix(entries[0].Name(), "-driver.log"))
}

func TestFileLogger_ShouldLog_RespectsMinimumLevel(t *testing.T) {
	root := t.TempDir()
	logger, err := NewFileLogger(root, "worker", ELogLevel.Warning(), false)
	require.NoError(t, err)
	defer logger.CloseLog()

	require.True(t, logger.ShouldLog(ELogLevel.Error()))
	require.True(t, logger.ShouldLog(ELogLevel.Warning()))
	require.False(t, logger.ShouldLog(ELogLevel.Info()))
	require.False(t, logger.ShouldLog(ELogLevel.Debug()))
	require.False(t, logger.ShouldLog(ELogLevel.None()))
}

func TestFileLogger_Log_WritesAcceptedLevelsToFile(t *testing.T) {
	root := t.TempDir()
	logger, err := NewFileLogger(root, "worker", ELogLevel.Warning(), false)
	require.NoError(t, err)

	logger.Log(ELogLevel.Warning(), "disk getting full")
	logger.Log(ELogLevel.Info(), "this should not appear")
	logger.CloseLog()

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(root, entries[0].Name()))
	require.NoError(t, err)
	require.Contains(t, string(contents), "disk getting full")
	require.NotContains(t, string(contents), "this should not appear")
}

func TestNopLogger_NeverLogs(t *testing.T) {
	var l NopLogger
	require.False(t, l.ShouldLog(ELogLevel.Error()))
	require.False(t, l.ShouldLog(ELogLevel.Debug()))
	l.Log(ELogLevel.Error(), "discarded")
	l.CloseLog()
}
