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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/jobqueue"
)

const maxUploadBytes = 1 << 30 // 1 GiB; a study archive can be sizeable

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type submitJobResponse struct {
	JobID           common.JobID `json:"job_id"`
	WorkloadLength  int          `json:"workload_length"`
	JobQueueLength  int          `json:"job_queue_length"`
}

func (s *Server) handleSubmitJob(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeFault(w, http.StatusBadRequest, "malformed multipart submission: "+err.Error())
		return
	}

	file, header, err := r.FormFile("zip_file")
	if err != nil {
		writeFault(w, http.StatusBadRequest, "missing zip_file field: "+err.Error())
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".zip") {
		writeFault(w, http.StatusBadRequest, "uploaded file must have a .zip extension")
		return
	}

	priority, err := strconv.Atoi(r.FormValue("priority"))
	if err != nil {
		writeFault(w, http.StatusBadRequest, "priority must be an integer")
		return
	}
	submitter := r.FormValue("submitter")

	targetZip := filepath.Join(s.cfg.NewJobsZipFolderPath, header.Filename)
	if _, err := os.Stat(targetZip); err == nil {
		writeBusinessError(w, fmt.Sprintf("a file named %s has already been submitted", header.Filename))
		return
	}

	if err := saveUpload(file, targetZip); err != nil {
		writeFault(w, http.StatusInternalServerError, "storing uploaded archive: "+err.Error())
		return
	}

	job := &jobqueue.Job{
		ID:          common.NewJobID(),
		Submitter:   submitter,
		Priority:    priority,
		ZipFilePath: targetZip,
		StudyName:   strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
	}

	if err := validateJobParameters(job, s.cfg.NewJobsStudyFolderPath); err != nil {
		writeBusinessError(w, err.Error())
		return
	}

	if err := prepareJobForQueue(job, s.cfg.NewJobsStudyFolderPath); err != nil {
		s.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("preparing job for %s: %v", header.Filename, err))
		writeFault(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := s.queue.AddJob(job); err != nil {
		s.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("persisting job %s: %v", job.ID, err))
		writeFault(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, submitJobResponse{
		JobID:          job.ID,
		WorkloadLength: len(job.Workload),
		JobQueueLength: s.queue.GetQueueLength(),
	})
}

func saveUpload(src io.Reader, targetPath string) error {
	out, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}

func (s *Server) handleJobsOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.queue.Overview())
}

func (s *Server) handleJobDetails(w http.ResponseWriter, r *http.Request) {
	id, err := common.ParseJobID(r.PathValue("id"))
	if err != nil {
		writeFault(w, http.StatusBadRequest, "invalid job id")
		return
	}
	record, ok := s.queue.JobDetails(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

type getTaskRequest struct {
	Worker string `json:"worker"`
	Cores  int    `json:"cores"`
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	var req getTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFault(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	task, err := s.queue.AssignTask(req.Worker, req.Cores)
	if err != nil {
		s.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("assigning task to %s: %v", req.Worker, err))
		writeFault(w, http.StatusInternalServerError, err.Error())
		return
	}
	if task == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No work available at this time."})
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type taskDoneRequest struct {
	TaskID     string `json:"task_id"`
	JobID      string `json:"job_id"`
	Workload   []int  `json:"workload"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
}

func (s *Server) handleTaskDone(w http.ResponseWriter, r *http.Request) {
	var req taskDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFault(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	taskID, err := common.ParseTaskID(req.TaskID)
	if err != nil {
		writeFault(w, http.StatusBadRequest, "invalid task_id")
		return
	}
	jobID, err := common.ParseJobID(req.JobID)
	if err != nil {
		writeFault(w, http.StatusBadRequest, "invalid job_id")
		return
	}

	err = s.queue.FinishTask(jobqueue.FinishTaskRequest{
		TaskID:     taskID,
		JobID:      jobID,
		Workload:   req.Workload,
		OutputPath: req.OutputPath,
		Success:    req.Success,
	})
	if err != nil {
		s.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("finishing task %s: %v", req.TaskID, err))
		writeFault(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
