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

package jobqueue

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jorritvm/antareswinjobs/common"
)

// pendingEntry is one slot of the prioritized queue: a job plus the
// (priority, sequence) key it was enqueued under. priority is duplicated
// off the job here (rather than read from job.Priority on every compare)
// so that the ordering key is frozen at enqueue time, matching the
// original tuple-based queue entry.
type pendingEntry struct {
	Priority int   `json:"priority"`
	Sequence int64 `json:"sequence"`
	Job      *Job  `json:"job"`
}

func lessEntry(a, b *pendingEntry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Sequence < b.Sequence
}

// JobQueue owns the pending (prioritized) and finished job collections and
// mirrors every mutation to disk. All operations serialize through a
// single mutex: ordering invariants depend on one serialization point
// covering both collections and every job's task list.
type JobQueue struct {
	mu sync.Mutex

	pending  []*pendingEntry
	finished []*Job
	sequence int64

	persistDir string
	logger     common.ILogger
}

// New constructs a JobQueue backed by persistDir, reconciling any
// previously persisted state against what is currently on disk.
func New(persistDir string, logger common.ILogger) (*JobQueue, error) {
	if logger == nil {
		logger = common.NopLogger{}
	}
	q := &JobQueue{
		persistDir: persistDir,
		logger:     logger,
	}
	if err := q.loadAndReconcile(); err != nil {
		return nil, err
	}
	return q, nil
}

// AddJob enqueues job under the next sequence number and persists.
func (q *JobQueue) AddJob(job *Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	job.recomputePercentComplete()

	if job.PercentComplete >= 100 {
		q.finished = append(q.finished, job)
		return q.persistLocked()
	}

	entry := &pendingEntry{Priority: job.Priority, Sequence: q.sequence, Job: job}
	q.sequence++
	q.insertLocked(entry)
	return q.persistLocked()
}

func (q *JobQueue) insertLocked(entry *pendingEntry) {
	i := sort.Search(len(q.pending), func(i int) bool {
		return lessEntry(entry, q.pending[i])
	})
	q.pending = append(q.pending, nil)
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = entry
}

// TaskRecord is the wire shape of an assignment: enough of the parent job's
// identity that a worker never needs a second round trip to learn what it
// was handed.
type TaskRecord struct {
	ID              common.TaskID     `json:"id"`
	JobID           common.JobID      `json:"job_id"`
	Submitter       string            `json:"submitter"`
	Priority        int               `json:"priority"`
	ZipFilePath     string            `json:"zip_file_path"`
	StudyName       string            `json:"study_name"`
	Worker          string            `json:"worker"`
	Workload        []int             `json:"workload"`
	PercentComplete int               `json:"percentage_complete"`
}

// AssignTask scans the pending queue in priority order and assigns up to
// amount unclaimed years from the first job with remaining workload to a
// new Task for worker. It returns (nil, nil) when no job has work.
func (q *JobQueue) AssignTask(worker string, amount int) (*TaskRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, entry := range q.pending {
		job := entry.Job
		remaining := job.remainingWorkload()
		if len(remaining) == 0 {
			continue
		}
		if amount <= 0 || amount > len(remaining) {
			amount = len(remaining)
		}

		task := &Task{
			ID:       common.NewTaskID(),
			JobID:    job.ID,
			Worker:   worker,
			Status:   common.ETaskStatus.Running(),
			Workload: append([]int(nil), remaining[:amount]...),
		}
		task.CreatedAt = time.Now()
		job.Tasks = append(job.Tasks, task)

		if err := q.persistLocked(); err != nil {
			return nil, err
		}
		return &TaskRecord{
			ID:              task.ID,
			JobID:           job.ID,
			Submitter:       job.Submitter,
			Priority:        job.Priority,
			ZipFilePath:     job.ZipFilePath,
			StudyName:       job.StudyName,
			Worker:          worker,
			Workload:        task.Workload,
			PercentComplete: job.PercentComplete,
		}, nil
	}
	return nil, nil
}

// FinishTaskRequest is the caller-supplied report of a worker's outcome.
type FinishTaskRequest struct {
	TaskID     common.TaskID
	JobID      common.JobID
	Workload   []int
	OutputPath string
	Success    bool
}

// FinishTask records a worker's outcome for one task. An unknown job id is
// logged as an error with no state change; a task that has already reached
// a terminal status is a no-op (the protocol is idempotent under retries
// of the same completion report).
func (q *JobQueue) FinishTask(req FinishTaskRequest) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, _ := q.findJobLocked(req.JobID)
	if job == nil {
		q.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("finish_task: unknown job %s", req.JobID))
		return nil
	}

	task := job.findTask(req.TaskID)
	if task == nil {
		q.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("finish_task: unknown task %s for job %s", req.TaskID, req.JobID))
		return nil
	}
	if task.Status != common.ETaskStatus.Running() {
		q.logger.Log(common.ELogLevel.Info(), fmt.Sprintf("finish_task: task %s already terminal, ignoring", req.TaskID))
		return nil
	}

	if req.Success {
		task.Status = common.ETaskStatus.Completed()
		q.stitchOutputsLocked(job, req)
	} else {
		task.Status = common.ETaskStatus.Failed()
	}

	job.recomputePercentComplete()

	if job.PercentComplete >= 100 {
		q.moveToFinishedLocked(job)
	}

	return q.persistLocked()
}

func (q *JobQueue) moveToFinishedLocked(job *Job) {
	for i, entry := range q.pending {
		if entry.Job.ID == job.ID {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			break
		}
	}
	q.finished = append(q.finished, job)
}

// GetJobByID searches both collections. The returned disposition indicates
// which collection the job was found in.
func (q *JobQueue) GetJobByID(id common.JobID) (*Job, common.JobDisposition, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, disposition := q.findJobLocked(id)
	return job, disposition, job != nil
}

func (q *JobQueue) findJobLocked(id common.JobID) (*Job, common.JobDisposition) {
	for _, entry := range q.pending {
		if entry.Job.ID == id {
			return entry.Job, common.EJobDisposition.Queued()
		}
	}
	for _, job := range q.finished {
		if job.ID == id {
			return job, common.EJobDisposition.Finished()
		}
	}
	return nil, common.EJobDisposition.Queued()
}

// GetQueueLength returns the number of jobs still pending (percentage
// complete under 100).
func (q *JobQueue) GetQueueLength() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
