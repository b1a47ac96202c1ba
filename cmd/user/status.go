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
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect jobs known to the driver",
}

var jobsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List every queued and finished job",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveUserConfig()
		client := newAPIClient(cfg.DriverIP, cfg.DriverPort)

		overview, err := client.jobsOverview()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSTATUS\tSUBMITTER\tPRIORITY\tSTUDY\t%COMPLETE")
		for _, j := range overview {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%d\n", j.ID, j.Status, j.Submitter, j.Priority, j.StudyName, j.PercentComplete)
		}
		return tw.Flush()
	},
}

var jobStatusCmd = &cobra.Command{
	Use:   "status <job-id>",
	Short: "Show one job's detail record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveUserConfig()
		client := newAPIClient(cfg.DriverIP, cfg.DriverPort)

		record, err := client.jobDetails(args[0])
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("no job found with id %s", args[0])
		}

		fmt.Printf("id:          %s\n", record.ID)
		fmt.Printf("status:      %s\n", record.Status)
		fmt.Printf("submitter:   %s\n", record.Submitter)
		fmt.Printf("study:       %s (%s)\n", record.StudyName, record.StudyPath)
		fmt.Printf("workload:    %d years\n", record.WorkloadLength)
		fmt.Printf("complete:    %d%%\n", record.PercentComplete)
		return nil
	},
}

func init() {
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobStatusCmd)
	rootCmd.AddCommand(jobsCmd)
}
