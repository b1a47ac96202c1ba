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

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// ILogger is the logging surface every component (driver, worker, jobqueue)
// is handed at construction time, rather than reaching for a package-level
// global. Tests substitute a no-op or buffering implementation.
type ILogger interface {
	ShouldLog(level LogLevel) bool
	Log(level LogLevel, msg string)
}

type ILoggerCloser interface {
	ILogger
	CloseLog()
}

const maxLogSize = 100 * 1024 * 1024

// fileLogger writes leveled, timestamped lines to a rotating file and,
// optionally, to stderr.
type fileLogger struct {
	minimumLevelToLog LogLevel
	file              io.WriteCloser
	logger            *log.Logger
	alsoConsole       bool
}

// NewFileLogger opens (creating parent folders as needed) a rotating log
// file named after the given process and returns a logger that accepts
// everything up to minimumLevelToLog.
func NewFileLogger(logFolder, processName string, minimumLevelToLog LogLevel, alsoConsole bool) (ILoggerCloser, error) {
	if err := os.MkdirAll(logFolder, 0o755); err != nil {
		return nil, fmt.Errorf("creating log folder %s: %w", logFolder, err)
	}

	stamp := time.Now().Format("20060102_150405")
	logPath := filepath.Join(logFolder, fmt.Sprintf("%s-%s.log", stamp, processName))

	file, err := NewRotatingWriter(logPath, maxLogSize)
	if err != nil {
		return nil, err
	}

	fl := &fileLogger{
		minimumLevelToLog: minimumLevelToLog,
		file:              file,
		alsoConsole:       alsoConsole,
	}
	fl.logger = log.New(fl.file, "", log.LstdFlags|log.LUTC)
	fl.logger.Printf("%s starting, pid=%d, os=%s/%s", processName, os.Getpid(), runtime.GOOS, runtime.GOARCH)
	return fl, nil
}

func (fl *fileLogger) ShouldLog(level LogLevel) bool {
	if level == ELogLevel.None() {
		return false
	}
	return level <= fl.minimumLevelToLog
}

func (fl *fileLogger) Log(level LogLevel, msg string) {
	if !fl.ShouldLog(level) {
		return
	}
	line := fmt.Sprintf("[%s] %s", level, msg)
	fl.logger.Println(line)
	if fl.alsoConsole {
		fmt.Fprintln(os.Stderr, line)
	}
}

func (fl *fileLogger) CloseLog() {
	fl.logger.Println("closing log")
	_ = fl.file.Close()
}

// NopLogger discards everything; used by tests that don't care about log output.
type NopLogger struct{}

func (NopLogger) ShouldLog(LogLevel) bool  { return false }
func (NopLogger) Log(LogLevel, string)     {}
func (NopLogger) CloseLog()                {}

var _ ILoggerCloser = (*fileLogger)(nil)
var _ ILoggerCloser = NopLogger{}
