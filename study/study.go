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

// Package study wraps an on-disk antares study folder: its settings INI
// files, its active playlist of Monte-Carlo years, and the external solver
// invocation. Everything here is the contract described for the "study
// handle" collaborator; nothing outside this package knows the on-disk
// layout of a study.
package study

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jorritvm/antareswinjobs/iniutil"
)

const (
	generalDataRelPath = "settings/generaldata.ini"
	studyManifestName  = "study.antares"
	successMarker      = "Simulation completed"
)

// Study is a handle onto a validated study folder rooted at StudyPath.
type Study struct {
	StudyPath string
	StudyName string
	OutputDir string // set once CreateOutputCollectionFolder has run
}

// New wraps path without validating it; call IsValidStudy first if the
// caller needs that guarantee.
func New(path string) *Study {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Study{
		StudyPath: abs,
		StudyName: filepath.Base(abs),
	}
}

// IsValidStudy reports whether path is a directory containing input,
// output, and study.antares.
func IsValidStudy(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, required := range []string{"input", "output", studyManifestName} {
		if _, err := os.Stat(filepath.Join(path, required)); err != nil {
			return false
		}
	}
	return true
}

// AntaresVersion reads [antares].version from study.antares.
func (s *Study) AntaresVersion() (string, error) {
	f, err := iniutil.Load(filepath.Join(s.StudyPath, studyManifestName))
	if err != nil {
		return "", err
	}
	if !f.HasSection("antares") {
		return "", errors.New("section [antares] not found in study.antares")
	}
	if !f.HasKey("antares", "version") {
		return "", errors.New("version key not found in [antares] section")
	}
	return strings.TrimSpace(f.String("antares", "version")), nil
}

// ActivePlaylistYears parses settings/generaldata.ini and returns the
// 0-based Monte-Carlo year indices this study should solve.
//
//   - the default playlist is [0..nbyears)
//   - if [playlist] is absent, the default is returned unchanged
//   - if [playlist].playlist_reset is present, the active list is exactly
//     the repeated playlist_year + values (empty if none given)
//   - otherwise the default list has each playlist_year - value removed
func (s *Study) ActivePlaylistYears() ([]int, error) {
	path := filepath.Join(s.StudyPath, generalDataRelPath)
	f, err := iniutil.Load(path)
	if err != nil {
		return nil, err
	}
	if !f.HasSection("general") {
		return nil, errors.New("section [general] not found in settings file")
	}
	if !f.HasKey("general", "nbyears") {
		return nil, errors.New("nbyears key not found in [general] section")
	}
	nbYears, err := strconv.Atoi(strings.TrimSpace(f.String("general", "nbyears")))
	if err != nil {
		return nil, errors.Wrap(err, "parsing nbyears")
	}

	playlist := make([]int, nbYears)
	for i := range playlist {
		playlist[i] = i
	}

	if !f.HasSection("playlist") {
		return playlist, nil
	}

	if f.HasKey("playlist", "playlist_reset") {
		var active []int
		for _, v := range f.Values("playlist", "playlist_year +") {
			year, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return nil, errors.Wrap(err, "parsing playlist_year +")
			}
			active = append(active, year)
		}
		return active, nil
	}

	removed := make(map[int]bool)
	for _, v := range f.Values("playlist", "playlist_year -") {
		year, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.Wrap(err, "parsing playlist_year -")
		}
		removed[year] = true
	}
	active := playlist[:0:0]
	for _, y := range playlist {
		if !removed[y] {
			active = append(active, y)
		}
	}
	return active, nil
}

// SetPlaylist overwrites [playlist] with playlist_reset=false and one
// playlist_year + entry per year, in the given order.
func (s *Study) SetPlaylist(years []int) error {
	path := filepath.Join(s.StudyPath, generalDataRelPath)
	f, err := iniutil.Load(path)
	if err != nil {
		return err
	}

	if err := f.Set("playlist", "playlist_reset", "false"); err != nil {
		return err
	}
	values := make([]string, len(years))
	for i, y := range years {
		values[i] = strconv.Itoa(y)
	}
	if err := f.SetRepeated("playlist", "playlist_year +", values); err != nil {
		return err
	}
	return f.SaveTo(path)
}

// CreateOutputCollectionFolder creates output/<timestamp> and records it
// as OutputDir.
func (s *Study) CreateOutputCollectionFolder() (string, error) {
	stamp := time.Now().Format("20060102_150405")
	dir := filepath.Join(s.StudyPath, "output", stamp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating output collection folder %s", dir)
	}
	s.OutputDir = dir
	return dir, nil
}

// RunAntares spawns the external solver against this study and waits for
// it to exit. cores bounds the solver's internal parallelism.
func (s *Study) RunAntares(ctx context.Context, exePath string, cores int) error {
	cmd := exec.CommandContext(ctx, exePath, s.StudyPath, "--force-parallel", strconv.Itoa(cores))
	cmd.Dir = s.StudyPath
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "running antares solver: %s", string(out))
	}
	return nil
}

// LatestOutputDir returns the most recently named subfolder under
// <study>/output, the same one a just-finished solver run wrote into.
// Folder names are compact timestamps, so lexicographic order is
// chronological order.
func (s *Study) LatestOutputDir() (string, error) {
	outputRoot := filepath.Join(s.StudyPath, "output")
	entries, err := os.ReadDir(outputRoot)
	if err != nil {
		return "", errors.Wrapf(err, "reading output folder %s", outputRoot)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", errors.New("no output subfolders found")
	}
	sort.Strings(names)
	return filepath.Join(outputRoot, names[len(names)-1]), nil
}

// VerifyLastRunSuccessful inspects the last 5 lines of the most recent
// output subfolder's simulation.log for the solver's success marker.
func (s *Study) VerifyLastRunSuccessful() (bool, error) {
	latest, err := s.LatestOutputDir()
	if err != nil {
		return false, err
	}

	logPath := filepath.Join(latest, "simulation.log")
	lines, err := lastNLines(logPath, 5)
	if err != nil {
		return false, err
	}
	for _, line := range lines {
		if strings.Contains(line, successMarker) {
			return true, nil
		}
	}
	return false, nil
}

func lastNLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var ring []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		ring = append(ring, scanner.Text())
		if len(ring) > n {
			ring = ring[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return ring, nil
}

// YearOutputSubfolder returns the expected economy/mc-ind/<NNNNN> relative
// path for the given 0-based year index, using antares's 1-based, 5-digit
// zero-padded naming convention.
func YearOutputSubfolder(year int) string {
	return filepath.Join("economy", "mc-ind", fmt.Sprintf("%05d", year+1))
}
