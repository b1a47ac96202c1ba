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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/common"
)

var (
	flagDriverIP     string
	flagDriverPort   string
	flagLocalZip     string
	flagLocalStudy   string
	flagMaxCores     string
	flagAntaresPath  string
	flagWaitSeconds  string
	flagSevenZip     string
	flagWorkerLogDir string
)

var rootCmd = &cobra.Command{
	Use:   "antares-worker",
	Short: "Poll the antares winjobs driver and solve assigned years locally",
}

func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flagDriverIP, "driver-ip", "", "driver host (env ANTARES_DRIVER_IP)")
	persistent.StringVar(&flagDriverPort, "driver-port", "", "driver port (env ANTARES_DRIVER_PORT, default 8080)")
	persistent.StringVar(&flagLocalZip, "local-zip-folder", "", "local cache folder for study archives (env ANTARES_LOCAL_ZIP_FOLDER)")
	persistent.StringVar(&flagLocalStudy, "local-study-folder", "", "local folder for extracted studies (env ANTARES_LOCAL_STUDY_FOLDER)")
	persistent.StringVar(&flagMaxCores, "max-cores", "", "maximum solver cores to use, 0 for all physical cores (env ANTARES_MAX_CORES)")
	persistent.StringVar(&flagAntaresPath, "antares-path", "", "path to the antares solver executable (env ANTARES_SOLVER_PATH)")
	persistent.StringVar(&flagWaitSeconds, "wait-seconds", "", "seconds between poll iterations (env ANTARES_WAIT_SECONDS, default 10)")
	persistent.StringVar(&flagSevenZip, "seven-zip-path", "", "optional path to a 7z executable (env ANTARES_7ZIP_PATH)")
	persistent.StringVar(&flagWorkerLogDir, "log-folder", "", "folder for the worker's own process log (env ANTARES_WORKER_LOG_FOLDER)")
}

func resolveWorkerConfig() common.WorkerConfig {
	port, _ := strconv.Atoi(common.EnvOrFlag(flagDriverPort, "ANTARES_DRIVER_PORT", "8080"))
	maxCores, _ := strconv.Atoi(common.EnvOrFlag(flagMaxCores, "ANTARES_MAX_CORES", "0"))
	wait, _ := strconv.Atoi(common.EnvOrFlag(flagWaitSeconds, "ANTARES_WAIT_SECONDS", "10"))

	return common.WorkerConfig{
		DriverIP:                common.EnvOrFlag(flagDriverIP, "ANTARES_DRIVER_IP", "localhost"),
		DriverPort:              port,
		LocalZipFolderPath:      common.EnvOrFlag(flagLocalZip, "ANTARES_LOCAL_ZIP_FOLDER", "./data/zips"),
		LocalStudyFolderPath:    common.EnvOrFlag(flagLocalStudy, "ANTARES_LOCAL_STUDY_FOLDER", "./data/studies"),
		MaxCoresToUse:           maxCores,
		AntaresFilePath:         common.EnvOrFlag(flagAntaresPath, "ANTARES_SOLVER_PATH", "antares-solver"),
		WaitTimeBetweenRequests: wait,
		SevenZipFilePath:        common.EnvOrFlag(flagSevenZip, "ANTARES_7ZIP_PATH", ""),
		LogFolderPath:           common.EnvOrFlag(flagWorkerLogDir, "ANTARES_WORKER_LOG_FOLDER", "./logs"),
	}
}

// Execute runs the antares-worker CLI.
func Execute() error {
	return rootCmd.Execute()
}
