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
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/study"
)

// maxConcurrentSymlinks bounds how many symlink creations run at once for
// a single task-completion report; the years in a task are usually few,
// but this keeps a pathological report with a huge workload from opening
// an unbounded number of file descriptors at once.
const maxConcurrentSymlinks = 8

// stitchOutputsLocked creates a symlink under the job's output collection
// folder for every year the worker reported, pointing at the worker's
// per-year output subfolder. Missing worker subfolders are logged and
// skipped; they do not fail the task. Called with the queue mutex held.
func (q *JobQueue) stitchOutputsLocked(job *Job, req FinishTaskRequest) {
	if job.AntaresStudy == nil || job.AntaresStudy.OutputDir == "" {
		q.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("job %s has no output collection folder, skipping stitch", job.ID))
		return
	}

	driverMcIndDir := filepath.Join(job.AntaresStudy.OutputDir, "economy", "mc-ind")
	if err := os.MkdirAll(driverMcIndDir, 0o755); err != nil {
		q.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("creating %s: %v", driverMcIndDir, err))
		return
	}

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentSymlinks)

	for _, year := range req.Workload {
		year := year
		g.Go(func() error {
			q.stitchOneYear(driverMcIndDir, req.OutputPath, year)
			return nil
		})
	}
	_ = g.Wait() // stitchOneYear never returns an error; failures are logged, not fatal
}

func (q *JobQueue) stitchOneYear(driverMcIndDir, workerOutputPath string, year int) {
	sub := study.YearOutputSubfolder(year)
	workerYearDir := filepath.Join(workerOutputPath, sub)

	if info, err := os.Stat(workerYearDir); err != nil || !info.IsDir() {
		q.logger.Log(common.ELogLevel.Warning(), fmt.Sprintf("worker output folder missing for year %d: %s", year, workerYearDir))
		return
	}

	linkName := filepath.Base(workerYearDir)
	linkPath := filepath.Join(driverMcIndDir, linkName)
	if _, err := os.Lstat(linkPath); err == nil {
		return // already stitched (idempotent finish_task retry)
	}

	if err := os.Symlink(workerYearDir, linkPath); err != nil {
		q.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("creating symlink %s -> %s: %v", linkPath, workerYearDir, err))
	}
}
