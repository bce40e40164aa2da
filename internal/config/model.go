package config

import (
	"errors"
	"fmt"
)

var (
	// ErrRead wraps failures to open or read a candidate file.
	ErrRead = errors.New("cannot read candidate file")
	// ErrParse wraps structurally malformed candidate files.
	ErrParse = errors.New("cannot parse candidate file")
)

// Format names the syntax of a candidate file.
type Format string

const (
	FormatText Format = "text"
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Source is the format-agnostic content of a candidate file.
type Source struct {
	Path    string
	Format  Format
	Entries []Entry
}

// Entry is one candidate value as written in the file.
type Entry struct {
	// Raw is the textual value, not yet parsed into a number.
	Raw string
	// Pos is the 1-based line number for text files, or the 1-based element
	// index for structured formats.
	Pos int
}

// Location describes where the entry came from, for error messages.
func (s *Source) Location(e Entry) string {
	if s.Format == FormatText {
		return fmt.Sprintf("%s:%d", s.Path, e.Pos)
	}
	return fmt.Sprintf("%s: values[%d]", s.Path, e.Pos-1)
}

// Raw returns the textual value of every entry, in file order.
func (s *Source) Raw() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Raw
	}
	return out
}
