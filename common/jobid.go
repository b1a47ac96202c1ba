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

	"github.com/google/uuid"
)

// JobID is a globally unique opaque identifier for a Job, rendered as text
// on the wire and in persisted state.
type JobID struct{ u uuid.UUID }

// NewJobID returns a new random (v4) JobID.
func NewJobID() JobID {
	return JobID{u: uuid.New()}
}

// ParseJobID parses a rendered JobID back into its typed form.
func ParseJobID(s string) (JobID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return JobID{}, err
	}
	return JobID{u: u}, nil
}

func (j JobID) String() string { return j.u.String() }

func (j JobID) IsZero() bool { return j.u == uuid.Nil }

func (j JobID) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.u.String())
}

func (j *JobID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseJobID(s)
	if err != nil {
		return err
	}
	*j = parsed
	return nil
}

// TaskID is a globally unique opaque identifier for a Task.
type TaskID struct{ u uuid.UUID }

func NewTaskID() TaskID {
	return TaskID{u: uuid.New()}
}

func ParseTaskID(s string) (TaskID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, err
	}
	return TaskID{u: u}, nil
}

func (t TaskID) String() string { return t.u.String() }

func (t TaskID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.u.String())
}

func (t *TaskID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTaskID(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
