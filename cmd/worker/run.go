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

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/worker"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the poll/solve/report loop until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveWorkerConfig()

		logger, err := common.NewFileLogger(cfg.LogFolderPath, "antares-worker", common.ELogLevel.Info(), true)
		if err != nil {
			return fmt.Errorf("opening worker log: %w", err)
		}
		defer logger.CloseLog()

		if err := os.MkdirAll(cfg.LocalZipFolderPath, 0o755); err != nil {
			return fmt.Errorf("creating local zip folder: %w", err)
		}
		if err := os.MkdirAll(cfg.LocalStudyFolderPath, 0o755); err != nil {
			return fmt.Errorf("creating local study folder: %w", err)
		}

		host, err := os.Hostname()
		if err != nil {
			host = "unknown-worker"
		}

		loop := worker.NewLoop(cfg, logger, host)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return loop.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
