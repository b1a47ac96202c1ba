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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/driver"
	"github.com/jorritvm/antareswinjobs/jobqueue"
)

const shutdownGrace = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the driver HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveDriverConfig()

		logger, err := common.NewFileLogger(cfg.LogFolderPath, "antares-driver", common.ELogLevel.Info(), true)
		if err != nil {
			return fmt.Errorf("opening driver log: %w", err)
		}
		driverLogger = logger
		defer driverLogger.CloseLog()

		if err := os.MkdirAll(cfg.NewJobsZipFolderPath, 0o755); err != nil {
			return fmt.Errorf("creating new-jobs zip folder: %w", err)
		}
		if err := os.MkdirAll(cfg.NewJobsStudyFolderPath, 0o755); err != nil {
			return fmt.Errorf("creating new-jobs study folder: %w", err)
		}

		queue, err := jobqueue.New(cfg.PersistedQueueFolderPath, driverLogger)
		if err != nil {
			return fmt.Errorf("loading persisted job queue: %w", err)
		}

		server := driver.NewServer(cfg, queue, driverLogger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
