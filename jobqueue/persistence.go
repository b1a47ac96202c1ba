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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/common"
)

const (
	queueFileName    = "queue.json"
	finishedFileName = "finished.json"
)

// persistedQueue is the on-disk shape of the pending collection plus the
// sequence high-water mark, replacing the original's language-native
// pickle with a stable, self-describing, forward-compatible format.
type persistedQueue struct {
	Entries  []*pendingEntry `json:"entries"`
	Sequence int64           `json:"sequence"`
}

// persistLocked writes both collections to disk atomically (write to a
// temp file, then rename). Must be called with the mutex held; every
// mutating operation commits its in-memory change before calling this, so
// on-disk state never contradicts accepted in-memory state.
func (q *JobQueue) persistLocked() error {
	if q.persistDir == "" {
		return nil
	}
	if err := os.MkdirAll(q.persistDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating persisted queue folder %s", q.persistDir)
	}

	pq := persistedQueue{Entries: q.pending, Sequence: q.sequence}
	if err := writeJSONAtomic(filepath.Join(q.persistDir, queueFileName), pq); err != nil {
		return errors.Wrap(err, "persisting pending queue")
	}
	if err := writeJSONAtomic(filepath.Join(q.persistDir, finishedFileName), q.finished); err != nil {
		return errors.Wrap(err, "persisting finished jobs")
	}
	return nil
}

func writeJSONAtomic(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// loadAndReconcile reads queue.json and finished.json (if present) and
// keeps only entries whose backing zip and extracted study folder still
// exist on disk. Dropped entries are logged as warnings, never errors.
func (q *JobQueue) loadAndReconcile() error {
	if q.persistDir == "" {
		return nil
	}

	var pq persistedQueue
	if err := readJSONIfExists(filepath.Join(q.persistDir, queueFileName), &pq); err != nil {
		return errors.Wrap(err, "reading persisted pending queue")
	}
	var finished []*Job
	if err := readJSONIfExists(filepath.Join(q.persistDir, finishedFileName), &finished); err != nil {
		return errors.Wrap(err, "reading persisted finished jobs")
	}

	for _, entry := range pq.Entries {
		if q.backingFilesExist(entry.Job) {
			q.pending = append(q.pending, entry)
		} else {
			q.logger.Log(common.ELogLevel.Warning(), fmt.Sprintf("dropping pending job %s on reload: backing files missing", entry.Job.ID))
		}
	}
	for _, job := range finished {
		if q.backingFilesExist(job) {
			q.finished = append(q.finished, job)
		} else {
			q.logger.Log(common.ELogLevel.Warning(), fmt.Sprintf("dropping finished job %s on reload: backing files missing", job.ID))
		}
	}

	q.sequence = pq.Sequence
	return nil
}

func (q *JobQueue) backingFilesExist(job *Job) bool {
	if job == nil {
		return false
	}
	if _, err := os.Stat(job.ZipFilePath); err != nil {
		return false
	}
	if job.AntaresStudy == nil {
		return false
	}
	if _, err := os.Stat(job.AntaresStudy.StudyPath); err != nil {
		return false
	}
	return true
}

func readJSONIfExists(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
