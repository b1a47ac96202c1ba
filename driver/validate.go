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

// Package driver implements the central HTTP service: submission intake,
// job validation and preparation, and the REST surface workers poll.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jorritvm/antareswinjobs/jobqueue"
)

const (
	minPriority = 1
	maxPriority = 100
)

func newValidationError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// validateJobParameters checks a freshly-constructed job against the rules
// in the job acceptance contract. It never touches the filesystem beyond
// stat calls, and never mutates the job.
func validateJobParameters(job *jobqueue.Job, newJobsStudyFolderPath string) error {
	if job.Priority < minPriority || job.Priority > maxPriority {
		return newValidationError("priority %d out of range [%d, %d]", job.Priority, minPriority, maxPriority)
	}
	if strings.TrimSpace(job.Submitter) == "" {
		return newValidationError("submitter must not be empty")
	}

	info, err := os.Stat(job.ZipFilePath)
	if err != nil || !info.Mode().IsRegular() {
		return newValidationError("uploaded zip %s does not exist as a regular file", job.ZipFilePath)
	}

	rootInfo, err := os.Stat(newJobsStudyFolderPath)
	if err != nil || !rootInfo.IsDir() {
		return newValidationError("extraction root %s does not exist as a directory", newJobsStudyFolderPath)
	}

	target := filepath.Join(newJobsStudyFolderPath, job.StudyName)
	if _, err := os.Stat(target); err == nil {
		return newValidationError("extraction target %s already exists", target)
	}

	return nil
}
