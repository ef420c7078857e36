// Package gitload reconstructs a dive log from a git repository whose trees
// encode trips and dives purely in directory and file names.
//
// A dive log repository lays its trees out as
//
//	yyyy/mm/[dd-tripname/][[yyyy-]mm-]dd-suffix-hh:mm:ss[~hex]/
//
// with per-dive files named "Dive[n]" and "Divecomputer[n]" and a per-trip
// descriptor named "00-Trip". The loader walks the branch tree once, in
// pre-order, classifying each directory from its name and ancestor segments
// and attaching each file to the dive or trip currently in scope.
package gitload

import (
	"errors"
	"fmt"
	"strings"
)

// locationMarker prefixes location strings that refer to a git repository.
// The marker is case-sensitive and must be followed by whitespace.
const locationMarker = "git"

// ErrNotGitLocation is returned when a location string does not carry the
// git marker.
var ErrNotGitLocation = errors.New("not a git repository location")

// Location identifies a repository and the branch to load from.
type Location struct {
	// Path is the filesystem path of the repository.
	Path string

	// Branch is the branch to load. Empty means the repository's HEAD.
	Branch string
}

// ParseLocation parses a location string of the form
//
//	git <path>[:branch]
//
// The marker must be followed by whitespace. Whitespace around the path is
// trimmed, and the last colon in the string separates the branch name.
func ParseLocation(s string) (Location, error) {
	rest, ok := strings.CutPrefix(s, locationMarker)
	if !ok || rest == "" || !isSpace(rest[0]) {
		return Location{}, fmt.Errorf("%w: %q", ErrNotGitLocation, s)
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return Location{}, fmt.Errorf("%w: missing repository path in %q", ErrNotGitLocation, s)
	}

	loc := Location{Path: rest}
	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		loc.Path = rest[:i]
		loc.Branch = rest[i+1:]
	}
	if loc.Path == "" {
		return Location{}, fmt.Errorf("%w: missing repository path in %q", ErrNotGitLocation, s)
	}
	return loc, nil
}

// isSpace reports whether c is an ASCII whitespace character.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
