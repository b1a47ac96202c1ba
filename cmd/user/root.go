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

// Command antares-user is the thin operator CLI: package a study, submit
// it, and check on its progress.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/common"
)

var (
	flagDriverIP      string
	flagDriverPort    string
	flagLocalZip      string
	flagUserSevenZip  string
)

var rootCmd = &cobra.Command{
	Use:   "antares-user",
	Short: "Package, submit, and track antares studies against the driver",
}

func init() {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flagDriverIP, "driver-ip", "", "driver host (env ANTARES_DRIVER_IP)")
	persistent.StringVar(&flagDriverPort, "driver-port", "", "driver port (env ANTARES_DRIVER_PORT, default 8080)")
	persistent.StringVar(&flagLocalZip, "local-zip-folder", "", "folder to write packaged archives into (env ANTARES_LOCAL_ZIP_FOLDER)")
	persistent.StringVar(&flagUserSevenZip, "seven-zip-path", "", "optional path to a 7z executable (env ANTARES_USER_7ZIP_PATH)")
}

func resolveUserConfig() common.UserConfig {
	port, _ := strconv.Atoi(common.EnvOrFlag(flagDriverPort, "ANTARES_DRIVER_PORT", "8080"))
	return common.UserConfig{
		DriverIP:           common.EnvOrFlag(flagDriverIP, "ANTARES_DRIVER_IP", "localhost"),
		DriverPort:         port,
		LocalZipFolderPath: common.EnvOrFlag(flagLocalZip, "ANTARES_LOCAL_ZIP_FOLDER", "./data/zips"),
		User7zPath:         common.EnvOrFlag(flagUserSevenZip, "ANTARES_USER_7ZIP_PATH", ""),
	}
}

// Execute runs the antares-user CLI.
func Execute() error {
	return rootCmd.Execute()
}
