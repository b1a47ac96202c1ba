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

// Package worker implements the polling loop that solves a worker's share
// of a job locally and reports back to the driver.
package worker

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
)

// determineCores returns min(maxConfigured, physical cores), or the
// physical core count when maxConfigured is 0 (unbounded).
func determineCores(maxConfigured int) (int, error) {
	physical, err := cpu.Counts(false)
	if err != nil {
		return 0, errors.Wrap(err, "detecting physical core count")
	}
	if physical <= 0 {
		physical = 1
	}
	if maxConfigured <= 0 || maxConfigured > physical {
		return physical, nil
	}
	return maxConfigured, nil
}
