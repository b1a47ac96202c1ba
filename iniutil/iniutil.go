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

// Package iniutil reads and writes INI files that, unlike a strict INI
// grammar, allow a key to repeat within a section (the on-disk settings
// format antares studies use for playlist entries). It is a thin adapter
// over go-ini/ini's shadow-load support rather than a hand-rolled parser.
package iniutil

import (
	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// File wraps a loaded INI document that may contain shadowed (repeated) keys.
type File struct {
	f *ini.File
}

// Load reads path, allowing repeated keys per section.
func Load(path string) (*File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading ini file %s", path)
	}
	return &File{f: f}, nil
}

// String returns the single value of key in section, or "" if absent.
func (f *File) String(section, key string) string {
	sec := f.f.Section(section)
	if !sec.HasKey(key) {
		return ""
	}
	return sec.Key(key).String()
}

// HasKey reports whether section contains key at all (even with an empty value).
func (f *File) HasKey(section, key string) bool {
	return f.f.Section(section).HasKey(key)
}

// HasSection reports whether section is present in the document.
func (f *File) HasSection(section string) bool {
	return f.f.HasSection(section)
}

// Values returns every value of the (possibly repeated) key within section,
// in file order. A non-repeated key yields a single-element slice.
func (f *File) Values(section, key string) []string {
	sec := f.f.Section(section)
	if !sec.HasKey(key) {
		return nil
	}
	return sec.Key(key).ValueWithShadows()
}

// NewDocument starts an empty document for writing.
func NewDocument() *File {
	return &File{f: ini.Empty(ini.LoadOptions{AllowShadows: true})}
}

// SetRepeated replaces section/key with one entry per value, emitted as
// repeated `key = value` lines, in the order given.
func (f *File) SetRepeated(section, key string, values []string) error {
	sec, err := f.f.NewSection(section)
	if err != nil {
		return errors.Wrapf(err, "creating section %s", section)
	}
	sec.DeleteKey(key)
	for _, v := range values {
		if _, err := sec.NewKey(key, v); err != nil {
			return errors.Wrapf(err, "writing repeated key %s in section %s", key, section)
		}
	}
	return nil
}

// Set replaces section/key with a single value.
func (f *File) Set(section, key, value string) error {
	sec, err := f.f.NewSection(section)
	if err != nil {
		return errors.Wrapf(err, "creating section %s", section)
	}
	sec.Key(key).SetValue(value)
	return nil
}

// SaveTo writes the document to path.
func (f *File) SaveTo(path string) error {
	return errors.Wrapf(f.f.SaveTo(path), "saving ini file %s", path)
}
