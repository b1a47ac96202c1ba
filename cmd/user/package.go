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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jorritvm/antareswinjobs/studyzip"
)

// packageCmd zips a study folder (excluding output/) into the user's local
// zip cache, ready for submit. This mirrors the original CLI's combined
// zip-then-submit workflow; here the two steps are separate commands so
// either can be scripted independently.
var packageCmd = &cobra.Command{
	Use:   "package <study-folder>",
	Short: "Archive a study folder into a zip ready for submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveUserConfig()
		studyFolder := args[0]
		studyName := filepath.Base(filepath.Clean(studyFolder))
		zipPath := filepath.Join(cfg.LocalZipFolderPath, studyName+".zip")

		if err := os.MkdirAll(cfg.LocalZipFolderPath, 0o755); err != nil {
			return err
		}
		if err := studyzip.Archive(studyFolder, zipPath); err != nil {
			return err
		}

		fmt.Printf("packaged %s -> %s\n", studyFolder, zipPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packageCmd)
}
