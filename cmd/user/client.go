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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/jobqueue"
)

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(ip string, port int) *apiClient {
	return &apiClient{
		baseURL: fmt.Sprintf("http://%s:%d", ip, port),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

type submitJobResponse struct {
	JobID          string `json:"job_id"`
	WorkloadLength int    `json:"workload_length"`
	JobQueueLength int    `json:"job_queue_length"`
	Error          string `json:"error"`
}

// submitJob uploads zipPath as a new job and returns the driver's response.
func (c *apiClient) submitJob(zipPath string, priority int, submitter string) (*submitJobResponse, error) {
	file, err := os.Open(zipPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", zipPath)
	}
	defer file.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("zip_file", filepath.Base(zipPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	_ = w.WriteField("priority", fmt.Sprintf("%d", priority))
	_ = w.WriteField("submitter", submitter)
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/submit_job", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling /submit_job")
	}
	defer resp.Body.Close()

	var out submitJobResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decoding /submit_job response")
	}
	return &out, nil
}

func (c *apiClient) jobsOverview() ([]jobqueue.JobOverview, error) {
	resp, err := c.http.Get(c.baseURL + "/jobs_overview")
	if err != nil {
		return nil, errors.Wrap(err, "calling /jobs_overview")
	}
	defer resp.Body.Close()

	var out []jobqueue.JobOverview
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decoding /jobs_overview response")
	}
	return out, nil
}

func (c *apiClient) jobDetails(id string) (*jobqueue.JobOverview, error) {
	resp, err := c.http.Get(c.baseURL + "/job_details/" + id)
	if err != nil {
		return nil, errors.Wrap(err, "calling /job_details")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	var out jobqueue.JobOverview
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decoding /job_details response")
	}
	return &out, nil
}
