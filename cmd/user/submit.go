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
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagSubmitPriority  int
	flagSubmitSubmitter string
)

var submitCmd = &cobra.Command{
	Use:   "submit <study.zip>",
	Short: "Upload a packaged study archive to the driver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveUserConfig()
		client := newAPIClient(cfg.DriverIP, cfg.DriverPort)

		resp, err := client.submitJob(args[0], flagSubmitPriority, flagSubmitSubmitter)
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("driver rejected submission: %s", resp.Error)
		}

		fmt.Printf("job %s accepted: %d years queued, %d jobs in queue\n", resp.JobID, resp.WorkloadLength, resp.JobQueueLength)
		return nil
	},
}

func init() {
	submitCmd.Flags().IntVar(&flagSubmitPriority, "priority", 50, "job priority, 1 (highest) to 100 (lowest)")
	submitCmd.Flags().StringVar(&flagSubmitSubmitter, "submitter", "", "identifying name of the submitter")
	rootCmd.AddCommand(submitCmd)
}
