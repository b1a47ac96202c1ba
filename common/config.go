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

package common

import "os"

// EnvOrFlag resolves a configuration value: an explicit (non-empty) flag
// value wins, otherwise the named environment variable, otherwise fallback.
// This mirrors the ambient, flag-first / env-fallback resolution the CLI
// layer uses for every folder path and connection setting it needs.
func EnvOrFlag(flagValue, envName, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := os.LookupEnv(envName); ok && v != "" {
		return v
	}
	return fallback
}

// DriverConfig holds the configuration keys consumed by the driver process.
type DriverConfig struct {
	PersistedQueueFolderPath string
	NewJobsZipFolderPath     string
	NewJobsStudyFolderPath   string
	SevenZipFilePath         string // optional
	ListenAddress            string
	LogFolderPath            string
}

// WorkerConfig holds the configuration keys consumed by the worker process.
type WorkerConfig struct {
	DriverIP                string
	DriverPort              int
	LocalZipFolderPath      string
	LocalStudyFolderPath    string
	MaxCoresToUse           int
	AntaresFilePath         string
	WaitTimeBetweenRequests int // seconds
	SevenZipFilePath        string // optional
	LogFolderPath           string
}

// UserConfig holds the configuration keys consumed by the user CLI.
type UserConfig struct {
	DriverIP             string
	DriverPort           int
	LocalZipFolderPath   string
	User7zPath           string // optional
}
