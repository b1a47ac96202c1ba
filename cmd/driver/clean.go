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
	"time"

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/driver"
)

var flagRetentionHours int

// cleanCmd purges extracted study folders and stale uploads. It is never
// invoked automatically; an operator runs it on a schedule of their own
// choosing.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove extracted study folders and uploads older than a retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveDriverConfig()
		retention := time.Duration(flagRetentionHours) * time.Hour

		removed, err := driver.CleanDataRoot(cfg.NewJobsZipFolderPath, cfg.NewJobsStudyFolderPath, retention)
		if err != nil {
			return fmt.Errorf("cleaning data root: %w", err)
		}
		fmt.Printf("removed %d stale entries older than %s\n", removed, retention)
		return nil
	},
}

func init() {
	cleanCmd.Flags().IntVar(&flagRetentionHours, "retention-hours", 24*7, "remove entries untouched for longer than this many hours")
	rootCmd.AddCommand(cleanCmd)
}
