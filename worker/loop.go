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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/study"
	"github.com/jorritvm/antareswinjobs/studyzip"
)

// Loop is a long-running worker: it polls the driver at an equidistant
// cadence, solves any assigned years locally, and reports back. Run blocks
// until ctx is cancelled.
type Loop struct {
	cfg    common.WorkerConfig
	client *driverClient
	logger common.ILogger
	host   string
}

// NewLoop constructs a worker loop bound to cfg. host identifies this
// worker to the driver (typically os.Hostname()).
func NewLoop(cfg common.WorkerConfig, logger common.ILogger, host string) *Loop {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Loop{
		cfg:    cfg,
		client: newDriverClient(cfg.DriverIP, cfg.DriverPort),
		logger: logger,
		host:   host,
	}
}

// Run executes the poll/solve/report cycle until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	interval := time.Duration(l.cfg.WaitTimeBetweenRequests) * time.Second
	if interval <= 0 {
		interval = time.Second
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		deadline := time.Now().Add(interval)

		if err := l.runOnce(ctx); err != nil {
			l.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("worker iteration failed: %v", err))
		}

		sleepUntil(ctx, deadline)
	}
}

func sleepUntil(ctx context.Context, deadline time.Time) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return
	}
	t := time.NewTimer(remaining)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (l *Loop) runOnce(ctx context.Context) error {
	cores, err := determineCores(l.cfg.MaxCoresToUse)
	if err != nil {
		return errors.Wrap(err, "determining core count")
	}

	task, err := l.client.getTask(ctx, l.host, cores)
	if err != nil {
		return errors.Wrap(err, "polling for task")
	}
	if task == nil {
		l.logger.Log(common.ELogLevel.Debug(), "no work available")
		return nil
	}
	l.logger.Log(common.ELogLevel.Info(), fmt.Sprintf("assigned task %s for job %s: %d years", task.ID, task.JobID, len(task.Workload)))

	localStudyPath := filepath.Join(l.cfg.LocalStudyFolderPath, task.StudyName)
	if err := l.ensureStudyAvailable(task.ZipFilePath, task.StudyName, localStudyPath); err != nil {
		return errors.Wrap(err, "fetching study")
	}

	s := study.New(localStudyPath)
	if err := s.SetPlaylist(task.Workload); err != nil {
		return errors.Wrap(err, "setting playlist")
	}

	success := true
	if err := s.RunAntares(ctx, l.cfg.AntaresFilePath, cores); err != nil {
		l.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("solver run failed: %v", err))
		success = false
	} else {
		ok, err := s.VerifyLastRunSuccessful()
		if err != nil {
			l.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("verifying solver output: %v", err))
			success = false
		} else {
			success = ok
		}
	}

	outputPath, err := s.LatestOutputDir()
	if err != nil {
		l.logger.Log(common.ELogLevel.Error(), fmt.Sprintf("locating latest output folder: %v", err))
		success = false
	}
	if err := l.client.reportTaskDone(ctx, task, outputPath, success); err != nil {
		return errors.Wrap(err, "reporting task completion")
	}
	return nil
}

// ensureStudyAvailable copies and extracts the study archive on first
// encounter; once the local zip cache has it, the worker trusts its
// previously-extracted study folder (crash-safe: a restart re-detects the
// same local path and skips straight to set_playlist).
func (l *Loop) ensureStudyAvailable(remoteZipPath, studyName, localStudyPath string) error {
	localZipPath := filepath.Join(l.cfg.LocalZipFolderPath, filepath.Base(remoteZipPath))
	if _, err := os.Stat(localZipPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(l.cfg.LocalZipFolderPath, 0o755); err != nil {
		return errors.Wrapf(err, "creating local zip folder %s", l.cfg.LocalZipFolderPath)
	}
	if err := copyFile(remoteZipPath, localZipPath); err != nil {
		return errors.Wrap(err, "copying study archive")
	}

	if err := studyzip.Extract(localZipPath, localStudyPath); err != nil {
		return errors.Wrap(err, "extracting study archive")
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
