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

import "github.com/jorritvm/antareswinjobs/common"

// JobOverview is the read-only, flattened record returned by the overview
// and details endpoints. Priority and Sequence are only meaningful for
// queued jobs; once a job has moved to the finished list they are left at
// their zero value and omitted from the JSON output.
type JobOverview struct {
	ID              common.JobID `json:"id"`
	Submitter       string       `json:"submitter"`
	ZipFilePath     string       `json:"zip_file_path"`
	StudyName       string       `json:"study_name"`
	StudyPath       string       `json:"study_path"`
	WorkloadLength  int          `json:"workload_length"`
	PercentComplete int          `json:"percentage_complete"`
	Status          string       `json:"status"`
	Priority        int          `json:"priority,omitempty"`
	Sequence        int64        `json:"sequence,omitempty"`
}

func overviewOfJob(job *Job, status string, priority int, sequence int64) JobOverview {
	studyPath := ""
	if job.AntaresStudy != nil {
		studyPath = job.AntaresStudy.StudyPath
	}
	return JobOverview{
		ID:              job.ID,
		Submitter:       job.Submitter,
		ZipFilePath:     job.ZipFilePath,
		StudyName:       job.StudyName,
		StudyPath:       studyPath,
		WorkloadLength:  len(job.Workload),
		PercentComplete: job.PercentComplete,
		Status:          status,
		Priority:        priority,
		Sequence:        sequence,
	}
}

// Overview returns a snapshot of every job, queued jobs first in their
// current priority order, then finished jobs in completion order.
func (q *JobQueue) Overview() []JobOverview {
	q.mu.Lock()
	defer q.mu.Unlock()

	records := make([]JobOverview, 0, len(q.pending)+len(q.finished))
	for _, entry := range q.pending {
		records = append(records, overviewOfJob(entry.Job, common.EJobDisposition.Queued().String(), entry.Priority, entry.Sequence))
	}
	for _, job := range q.finished {
		records = append(records, overviewOfJob(job, common.EJobDisposition.Finished().String(), 0, 0))
	}
	return records
}

// JobDetails returns the overview record for a single job id.
func (q *JobQueue) JobDetails(id common.JobID) (JobOverview, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, entry := range q.pending {
		if entry.Job.ID == id {
			return overviewOfJob(entry.Job, common.EJobDisposition.Queued().String(), entry.Priority, entry.Sequence), true
		}
	}
	for _, job := range q.finished {
		if job.ID == id {
			return overviewOfJob(job, common.EJobDisposition.Finished().String(), 0, 0), true
		}
	}
	return JobOverview{}, false
}
