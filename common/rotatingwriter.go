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
	"os"
	"strings"
	"sync"
)

// rotatingWriter rolls the target file to a numbered sibling once it crosses
// maxSize, rather than growing one file without bound for the lifetime of a
// long-running driver or worker process.
type rotatingWriter struct {
	filePath    string
	file        *os.File
	l           sync.Mutex
	currentSize uint64
	maxSize     uint64
	generation  int
}

// NewRotatingWriter opens filePath for append, creating it if necessary, and
// rotates to "<filePath>.<n>" once maxSize bytes have been written.
func NewRotatingWriter(filePath string, maxSize uint64) (io.WriteCloser, error) {
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &rotatingWriter{
		filePath:    filePath,
		file:        file,
		currentSize: uint64(info.Size()),
		maxSize:     maxSize,
	}, nil
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.l.Lock()
	defer w.l.Unlock()

	if w.currentSize+uint64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.currentSize += uint64(n)
	return n, err
}

func (w *rotatingWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return err
	}
	w.generation++
	rotated := fmt.Sprintf("%s.%d", w.filePath, w.generation)
	if err := os.Rename(w.filePath, rotated); err != nil && !strings.Contains(err.Error(), "no such file") {
		return err
	}
	file, err := os.OpenFile(w.filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	w.file = file
	w.currentSize = 0
	return nil
}

func (w *rotatingWriter) Close() error {
	w.l.Lock()
	defer w.l.Unlock()
	return w.file.Close()
}
