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

package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jorritvm/antareswinjobs/common"
	"github.com/jorritvm/antareswinjobs/studyzip"
)

func TestEnsureStudyAvailable_ExtractsOnFirstEncounter(t *testing.T) {
	root := t.TempDir()

	studySource := filepath.Join(root, "source-study")
	require.NoError(t, os.MkdirAll(filepath.Join(studySource, "input"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(studySource, "output"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(studySource, "study.antares"), []byte("[antares]\n"), 0o644))

	remoteZip := filepath.Join(root, "remote", "study1.zip")
	require.NoError(t, os.MkdirAll(filepath.Dir(remoteZip), 0o755))
	require.NoError(t, studyzip.Archive(studySource, remoteZip))

	l := &Loop{
		cfg: common.WorkerConfig{
			LocalZipFolderPath:   filepath.Join(root, "local-zips"),
			LocalStudyFolderPath: filepath.Join(root, "local-studies"),
		},
		logger: common.NopLogger{},
	}

	localStudyPath := filepath.Join(l.cfg.LocalStudyFolderPath, "study1")
	require.NoError(t, l.ensureStudyAvailable(remoteZip, "study1", localStudyPath))

	_, err := os.Stat(filepath.Join(localStudyPath, "study.antares"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(l.cfg.LocalZipFolderPath, "study1.zip"))
	require.NoError(t, err)
}

func TestEnsureStudyAvailable_SkipsReExtractionWhenLocalZipPresent(t *testing.T) {
	root := t.TempDir()
	l := &Loop{
		cfg: common.WorkerConfig{
			LocalZipFolderPath:   filepath.Join(root, "local-zips"),
			LocalStudyFolderPath: filepath.Join(root, "local-studies"),
		},
		logger: common.NopLogger{},
	}

	require.NoError(t, os.MkdirAll(l.cfg.LocalZipFolderPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(l.cfg.LocalZipFolderPath, "study1.zip"), []byte("cached"), 0o644))

	// A remote path that does not even exist should not matter: the
	// presence of the local zip short-circuits the copy/extract entirely.
	err := l.ensureStudyAvailable("/does/not/exist/study1.zip", "study1", filepath.Join(root, "local-studies", "study1"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "local-studies", "study1"))
	require.True(t, os.IsNotExist(err))
}

func TestCopyFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.txt")
	dst := filepath.Join(root, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	require.NoError(t, copyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))
}

func TestSleepUntil_ReturnsPromptlyOnPastDeadline(t *testing.T) {
	start := time.Now()
	sleepUntil(context.Background(), start.Add(-time.Second))
	require.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestSleepUntil_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	sleepUntil(ctx, start.Add(time.Hour))
	require.Less(t, time.Since(start), time.Second)
}
