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

// Package jobqueue is the driver's scheduling and persistence core: a
// prioritized, persistent job queue and the task assignment/completion
// protocol that slices a job's workload across polling workers.
package jobqueue

import (
	"time"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/study"
)

// Job is an accepted unit of work: a submitted study and the Monte-Carlo
// years it still needs solved.
type Job struct {
	ID            common.JobID `json:"id"`
	Submitter     string       `json:"submitter"`
	Priority      int          `json:"priority"`
	ZipFilePath   string       `json:"zip_file_path"`
	StudyName     string       `json:"study_name"`
	AntaresStudy  *study.Study `json:"antares_study"`
	Workload      []int        `json:"workload"`
	Tasks         []*Task      `json:"tasks"`
	PercentComplete int        `json:"percentage_complete"`
}

// Task is a slice of a job assigned to one worker.
type Task struct {
	ID        common.TaskID     `json:"id"`
	JobID     common.JobID      `json:"job_id"`
	Worker    string            `json:"worker"`
	CreatedAt time.Time         `json:"created_at"`
	Status    common.TaskStatus `json:"status"`
	Workload  []int             `json:"workload"`
}

// assignedYears returns the union of years claimed by any task of the job,
// regardless of status: once claimed, a year is never handed out again
// (there is no retry of failed years and no preemption of running ones).
func (j *Job) assignedYears() map[int]bool {
	claimed := make(map[int]bool)
	for _, t := range j.Tasks {
		for _, y := range t.Workload {
			claimed[y] = true
		}
	}
	return claimed
}

// remainingWorkload returns the job's years, in original order, that no
// task has yet claimed.
func (j *Job) remainingWorkload() []int {
	claimed := j.assignedYears()
	var remaining []int
	for _, y := range j.Workload {
		if !claimed[y] {
			remaining = append(remaining, y)
		}
	}
	return remaining
}

// recomputePercentComplete sets PercentComplete from the terminal tasks'
// share of the total workload. A zero-length workload is always 100%.
func (j *Job) recomputePercentComplete() {
	if len(j.Workload) == 0 {
		j.PercentComplete = 100
		return
	}
	done := 0
	for _, t := range j.Tasks {
		if t.Status.IsTerminal() {
			done += len(t.Workload)
		}
	}
	j.PercentComplete = (100 * done) / len(j.Workload)
}

// findTask returns the task with the given id, or nil.
func (j *Job) findTask(id common.TaskID) *Task {
	for _, t := range j.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
