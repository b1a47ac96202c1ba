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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorritvm/antareswinjobs/jobqueue"
)

func TestPrepareJobForQueue_ExtractsAndComputesWorkload(t *testing.T) {
	zipPath := buildStudyZip(t, "prep1")
	studyRoot := t.TempDir()

	job := &jobqueue.Job{
		ZipFilePath: zipPath,
		StudyName:   "prep1",
	}

	require.NoError(t, prepareJobForQueue(job, studyRoot))
	require.Equal(t, []int{0, 1, 2}, job.Workload)
	require.NotNil(t, job.AntaresStudy)
	require.NotEmpty(t, job.AntaresStudy.OutputDir)

	_, err := os.Stat(filepath.Join(studyRoot, "prep1", "study.antares"))
	require.NoError(t, err)
}
