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
	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/common"
)

var (
	flagPersistedQueueFolder string
	flagNewJobsZipFolder     string
	flagNewJobsStudyFolder   string
	flagSevenZipPath         string
	flagListenAddress        string
	flagLogFolder            string

	driverLogger common.ILoggerCloser
)

// rootCmd is the antares-driver entry point: the HTTP service that owns
// the job queue.
var rootCmd = &cobra.Command{
	Use:   "antares-driver",
	Short: "Run the antares winjobs driver service",
	Long:  "antares-driver accepts study submissions, owns the persisted job queue, and hands out tasks to polling workers.",
}

func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flagPersistedQueueFolder, "persisted-queue-folder", "", "folder backing the persisted job queue (env ANTARES_PERSISTED_QUEUE_FOLDER)")
	persistent.StringVar(&flagNewJobsZipFolder, "new-jobs-zip-folder", "", "folder where uploaded study archives are stored (env ANTARES_NEW_JOBS_ZIP_FOLDER)")
	persistent.StringVar(&flagNewJobsStudyFolder, "new-jobs-study-folder", "", "extraction root for submitted studies (env ANTARES_NEW_JOBS_STUDY_FOLDER)")
	persistent.StringVar(&flagSevenZipPath, "seven-zip-path", "", "optional path to a 7z executable (env ANTARES_7ZIP_PATH)")
	persistent.StringVar(&flagListenAddress, "listen", "", "HTTP listen address (env ANTARES_DRIVER_LISTEN, default :8080)")
	persistent.StringVar(&flagLogFolder, "log-folder", "", "folder for the driver's own process log (env ANTARES_DRIVER_LOG_FOLDER)")
}

func resolveDriverConfig() common.DriverConfig {
	return common.DriverConfig{
		PersistedQueueFolderPath: common.EnvOrFlag(flagPersistedQueueFolder, "ANTARES_PERSISTED_QUEUE_FOLDER", "./data/queue"),
		NewJobsZipFolderPath:     common.EnvOrFlag(flagNewJobsZipFolder, "ANTARES_NEW_JOBS_ZIP_FOLDER", "./data/zips"),
		NewJobsStudyFolderPath:   common.EnvOrFlag(flagNewJobsStudyFolder, "ANTARES_NEW_JOBS_STUDY_FOLDER", "./data/studies"),
		SevenZipFilePath:         common.EnvOrFlag(flagSevenZipPath, "ANTARES_7ZIP_PATH", ""),
		ListenAddress:            common.EnvOrFlag(flagListenAddress, "ANTARES_DRIVER_LISTEN", ":8080"),
		LogFolderPath:            common.EnvOrFlag(flagLogFolder, "ANTARES_DRIVER_LOG_FOLDER", "./logs"),
	}
}

// Execute runs the antares-driver CLI.
func Execute() error {
	return rootCmd.Execute()
}
