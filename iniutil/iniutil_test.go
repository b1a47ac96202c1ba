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

package iniutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[general]\nnbyears = 10\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.True(t, f.HasSection("general"))
	require.True(t, f.HasKey("general", "nbyears"))
	require.Equal(t, "10", f.String("general", "nbyears"))
	require.False(t, f.HasSection("playlist"))
}

func TestValues_RepeatedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	body := "[playlist]\nplaylist_year + = 0\nplaylist_year + = 3\nplaylist_year + = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "3", "7"}, f.Values("playlist", "playlist_year +"))
}

func TestValues_MissingKeyReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[playlist]\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Nil(t, f.Values("playlist", "playlist_year +"))
}

func TestSetRepeated_ThenSaveThenReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")

	f := NewDocument()
	require.NoError(t, f.Set("playlist", "playlist_reset", "false"))
	require.NoError(t, f.SetRepeated("playlist", "playlist_year +", []string{"1", "2", "3"}))
	require.NoError(t, f.SaveTo(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "false", reloaded.String("playlist", "playlist_reset"))
	require.Equal(t, []string{"1", "2", "3"}, reloaded.Values("playlist", "playlist_year +"))
}

func TestSetRepeated_ReplacesPriorValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.ini")
	require.NoError(t, os.WriteFile(path, []byte("[playlist]\nplaylist_year + = 9\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.SetRepeated("playlist", "playlist_year +", []string{"1", "2"}))
	require.NoError(t, f.SaveTo(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2"}, reloaded.Values("playlist", "playlist_year +"))
}
