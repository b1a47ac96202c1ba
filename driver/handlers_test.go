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
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/jobqueue"
	"github.com/jorritvm/antareswinjobs/studyzip"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	root := t.TempDir()
	cfg := common.DriverConfig{
		NewJobsZipFolderPath:   filepath.Join(root, "zips"),
		NewJobsStudyFolderPath: filepath.Join(root, "studies"),
		ListenAddress:          ":0",
	}
	require.NoError(t, os.MkdirAll(cfg.NewJobsZipFolderPath, 0o755))
	require.NoError(t, os.MkdirAll(cfg.NewJobsStudyFolderPath, 0o755))

	queue, err := jobqueue.New(filepath.Join(root, "persist"), common.NopLogger{})
	require.NoError(t, err)

	return NewServer(cfg, queue, common.NopLogger{})
}

// buildStudyZip creates a minimal, valid antares study folder and packages
// it into a zip ready for upload.
func buildStudyZip(t *testing.T, name string) string {
	t.Helper()
	studyDir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(studyDir, "input"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(studyDir, "output"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(studyDir, "settings"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(studyDir, "study.antares"), []byte("[antares]\nversion = 880\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(studyDir, "settings", "generaldata.ini"), []byte("[general]\nnbyears = 3\n"), 0o644))

	zipPath := filepath.Join(t.TempDir(), name+".zip")
	require.NoError(t, studyzip.Archive(studyDir, zipPath))
	return zipPath
}

func submitMultipart(t *testing.T, handler http.Handler, zipPath, submitter string, priority int) *httptest.ResponseRecorder {
	t.Helper()

	file, err := os.Open(zipPath)
	require.NoError(t, err)
	defer file.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("zip_file", filepath.Base(zipPath))
	require.NoError(t, err)
	_, err = part.ReadFrom(file)
	require.NoError(t, err)
	require.NoError(t, w.WriteField("priority", fmt.Sprintf("%d", priority)))
	require.NoError(t, w.WriteField("submitter", submitter))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit_job", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleSubmitJob_Success(t *testing.T) {
	s := newTestServer(t)
	zipPath := buildStudyZip(t, "study1")

	rec := submitMultipart(t, s.Handler(), zipPath, "alice", 50)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp submitJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.WorkloadLength)
	require.Equal(t, 1, resp.JobQueueLength) // the 3-year workload stays pending, not finished
}

func TestHandleSubmitJob_RejectsNonZipExtension(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("zip_file", "study.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("not a zip"))
	require.NoError(t, w.WriteField("priority", "50"))
	require.NoError(t, w.WriteField("submitter", "alice"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/submit_job", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSubmitJob_InvalidPriorityIsBusinessError(t *testing.T) {
	s := newTestServer(t)
	zipPath := buildStudyZip(t, "study2")

	rec := submitMultipart(t, s.Handler(), zipPath, "alice", 999)
	require.Equal(t, http.StatusOK, rec.Code) // business error, not a transport fault

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Error)
}

func TestHandleSubmitJob_DuplicateFilenameIsBusinessError(t *testing.T) {
	s := newTestServer(t)
	zipPath := buildStudyZip(t, "study3")

	rec := submitMultipart(t, s.Handler(), zipPath, "alice", 50)
	require.Equal(t, http.StatusOK, rec.Code)

	rec2 := submitMultipart(t, s.Handler(), zipPath, "alice", 50)
	require.Equal(t, http.StatusOK, rec2.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &body))
	require.Contains(t, body.Error, "already been submitted")
}

func TestJobLifecycle_OverviewDetailsGetTaskTaskDone(t *testing.T) {
	s := newTestServer(t)
	zipPath := buildStudyZip(t, "study4")

	rec := submitMultipart(t, s.Handler(), zipPath, "alice", 50)
	require.Equal(t, http.StatusOK, rec.Code)
	var submitResp submitJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submitResp))

	// jobs_overview shows the job queued.
	overviewReq := httptest.NewRequest(http.MethodGet, "/jobs_overview", nil)
	overviewRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(overviewRec, overviewReq)
	require.Equal(t, http.StatusOK, overviewRec.Code)

	var overview []jobqueue.JobOverview
	require.NoError(t, json.Unmarshal(overviewRec.Body.Bytes(), &overview))
	require.Len(t, overview, 1)
	require.Equal(t, submitResp.JobID, overview[0].ID)

	// job_details/{id} returns the same record.
	detailsReq := httptest.NewRequest(http.MethodGet, "/job_details/"+submitResp.JobID.String(), nil)
	detailsRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(detailsRec, detailsReq)
	require.Equal(t, http.StatusOK, detailsRec.Code)

	// get_task hands out the whole workload to a worker.
	getTaskBody, _ := json.Marshal(getTaskRequest{Worker: "worker-a", Cores: 4})
	getTaskReq := httptest.NewRequest(http.MethodPost, "/get_task", bytes.NewReader(getTaskBody))
	getTaskRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(getTaskRec, getTaskReq)
	require.Equal(t, http.StatusOK, getTaskRec.Code)

	var task jobqueue.TaskRecord
	require.NoError(t, json.Unmarshal(getTaskRec.Body.Bytes(), &task))
	require.Equal(t, submitResp.JobID, task.JobID)
	require.Equal(t, []int{0, 1, 2}, task.Workload)

	// task_done with success=true completes the job.
	doneBody, _ := json.Marshal(taskDoneRequest{
		TaskID:     task.ID.String(),
		JobID:      task.JobID.String(),
		Workload:   task.Workload,
		OutputPath: t.TempDir(),
		Success:    true,
	})
	doneReq := httptest.NewRequest(http.MethodPost, "/task_done", bytes.NewReader(doneBody))
	doneRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(doneRec, doneReq)
	require.Equal(t, http.StatusOK, doneRec.Code)

	require.Equal(t, 0, s.queue.GetQueueLength())
}

func TestHandleGetTask_NoWorkAvailable(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(getTaskRequest{Worker: "worker-a", Cores: 2})
	req := httptest.NewRequest(http.MethodPost, "/get_task", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No work available")
}

func TestHandleJobDetails_UnknownIDReturns404(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/job_details/"+common.NewJobID().String(), nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
