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

package driver

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/jobqueue"
	"github.com/jorritvm/antareswinjobs/study"
	"github.com/jorritvm/antareswinjobs/studyzip"
)

// prepareJobForQueue extracts the uploaded zip, wraps the result in a study
// handle, creates the output collection folder, and computes the job's
// workload from the study's active playlist. Failure here is fatal for the
// submission; the caller surfaces the error to the client unchanged.
func prepareJobForQueue(job *jobqueue.Job, newJobsStudyFolderPath string) error {
	dest := filepath.Join(newJobsStudyFolderPath, job.StudyName)
	if err := studyzip.Extract(job.ZipFilePath, dest); err != nil {
		return errors.Wrap(err, "extracting study archive")
	}

	s := study.New(dest)
	if _, err := s.CreateOutputCollectionFolder(); err != nil {
		return errors.Wrap(err, "creating output collection folder")
	}

	years, err := s.ActivePlaylistYears()
	if err != nil {
		return errors.Wrap(err, "reading active playlist")
	}

	job.AntaresStudy = s
	job.Workload = years
	return nil
}
