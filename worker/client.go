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

package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/jobqueue"
)

// driverClient is the worker's HTTP client onto the driver's REST surface.
type driverClient struct {
	baseURL string
	http    *http.Client
}

func newDriverClient(ip string, port int) *driverClient {
	return &driverClient{
		baseURL: fmt.Sprintf("http://%s:%d", ip, port),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type getTaskRequest struct {
	Worker string `json:"worker"`
	Cores  int    `json:"cores"`
}

// getTask polls for an assignment. A nil record with no error means no
// work was available.
func (c *driverClient) getTask(ctx context.Context, worker string, cores int) (*jobqueue.TaskRecord, error) {
	body, err := json.Marshal(getTaskRequest{Worker: worker, Cores: cores})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/get_task", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling /get_task")
	}
	defer resp.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decoding /get_task response")
	}

	var sentinel struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &sentinel); err == nil && sentinel.Message != "" {
		return nil, nil
	}

	var task jobqueue.TaskRecord
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, errors.Wrap(err, "decoding task record")
	}
	return &task, nil
}

type taskDoneRequest struct {
	TaskID     string `json:"task_id"`
	JobID      string `json:"job_id"`
	Workload   []int  `json:"workload"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
}

// reportTaskDone posts the outcome of a completed or failed task.
func (c *driverClient) reportTaskDone(ctx context.Context, task *jobqueue.TaskRecord, outputPath string, success bool) error {
	body, err := json.Marshal(taskDoneRequest{
		TaskID:     task.ID.String(),
		JobID:      task.JobID.String(),
		Workload:   task.Workload,
		OutputPath: outputPath,
		Success:    success,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/task_done", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "calling /task_done")
	}
	defer resp.Body.Close()
	return nil
}
