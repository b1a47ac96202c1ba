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
	"reflect"

	"github.com/JeffreyRichter/enum/enum"
)

var ELogLevel = LogLevel(0)

// LogLevel controls which messages a logger accepts, from none up to debug.
type LogLevel uint8

func (LogLevel) None() LogLevel    { return LogLevel(0) }
func (LogLevel) Error() LogLevel   { return LogLevel(1) }
func (LogLevel) Warning() LogLevel { return LogLevel(2) }
func (LogLevel) Info() LogLevel    { return LogLevel(3) }
func (LogLevel) Debug() LogLevel   { return LogLevel(4) }

func (ll *LogLevel) Parse(s string) error {
	val, err := enum.ParseInt(reflect.TypeOf(ll), s, true, true)
	if err == nil {
		*ll = val.(LogLevel)
	}
	return err
}

func (ll LogLevel) String() string {
	return enum.StringInt(uint8(ll), reflect.TypeOf(ll))
}

// //////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
var ETaskStatus = TaskStatus(0)

// TaskStatus is the terminal/non-terminal state of a single worker assignment.
// Once a Task reaches a terminal status it never transitions again.
type TaskStatus uint8

func (TaskStatus) Running() TaskStatus   { return TaskStatus(0) }
func (TaskStatus) Completed() TaskStatus { return TaskStatus(1) }
func (TaskStatus) Failed() TaskStatus    { return TaskStatus(2) }

func (ts TaskStatus) IsTerminal() bool {
	return ts == ETaskStatus.Completed() || ts == ETaskStatus.Failed()
}

func (ts *TaskStatus) Parse(s string) error {
	val, err := enum.ParseInt(reflect.TypeOf(ts), s, true, true)
	if err == nil {
		*ts = val.(TaskStatus)
	}
	return err
}

func (ts TaskStatus) String() string {
	return enum.StringInt(uint8(ts), reflect.TypeOf(ts))
}

func (ts TaskStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *TaskStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return ts.Parse(s)
}

// //////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
var EJobDisposition = JobDisposition(0)

// JobDisposition is where a job currently lives: the pending queue, or the finished list.
// A job moves Queued -> Finished exactly once, when its workload reaches 100%.
type JobDisposition uint8

func (JobDisposition) Queued() JobDisposition   { return JobDisposition(0) }
func (JobDisposition) Finished() JobDisposition { return JobDisposition(1) }

func (jd JobDisposition) String() string {
	return enum.StringInt(uint8(jd), reflect.TypeOf(jd))
}
