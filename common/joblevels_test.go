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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevel_StringAndParseRoundTrip(t *testing.T) {
	for _, lvl := range []LogLevel{ELogLevel.None(), ELogLevel.Error(), ELogLevel.Warning(), ELogLevel.Info(), ELogLevel.Debug()} {
		var parsed LogLevel
		require.NoError(t, parsed.Parse(lvl.String()))
		require.Equal(t, lvl, parsed)
	}
}

func TestLogLevel_ParseRejectsUnknown(t *testing.T) {
	var lvl LogLevel
	require.Error(t, lvl.Parse("not-a-level"))
}

func TestLogLevel_Ordering(t *testing.T) {
	require.Less(t, ELogLevel.None(), ELogLevel.Error())
	require.Less(t, ELogLevel.Error(), ELogLevel.Warning())
	require.Less(t, ELogLevel.Warning(), ELogLevel.Info())
	require.Less(t, ELogLevel.Info(), ELogLevel.Debug())
}

func TestTaskStatus_IsTerminal(t *testing.T) {
	require.False(t, ETaskStatus.Running().IsTerminal())
	require.True(t, ETaskStatus.Completed().IsTerminal())
	require.True(t, ETaskStatus.Failed().IsTerminal())
}

func TestTaskStatus_JSONRoundTrips(t *testing.T) {
	for _, ts := range []TaskStatus{ETaskStatus.Running(), ETaskStatus.Completed(), ETaskStatus.Failed()} {
		raw, err := json.Marshal(ts)
		require.NoError(t, err)

		var decoded TaskStatus
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.Equal(t, ts, decoded)
	}
}

func TestTaskStatus_UnmarshalRejectsUnknown(t *testing.T) {
	var ts TaskStatus
	err := json.Unmarshal([]byte(`"bogus"`), &ts)
	require.Error(t, err)
}

func TestJobDisposition_String(t *testing.T) {
	require.NotEqual(t, EJobDisposition.Queued().String(), EJobDisposition.Finished().String())
}
