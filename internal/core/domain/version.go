package domain

import (
	"fmt"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// ParseError is returned when a version string is not a valid MAJOR.MINOR.PATCH[-pre] version.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Version is an immutable parsed release version. Build metadata is kept in the
// original string but never takes part in ordering.
type Version struct {
	v *semver.Version
}

func ParseVersion(raw string) (Version, error) {
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return Version{}, &ParseError{Input: raw, Err: err}
	}
	return Version{v: v}, nil
}

func (v Version) Major() uint64 { return v.v.Major() }
func (v Version) Minor() uint64 { return v.v.Minor() }
func (v Version) Patch() uint64 { return v.v.Patch() }

func (v Version) Prerelease() []string {
	if v.v.Prerelease() == "" {
		return nil
	}
	return strings.Split(v.v.Prerelease(), ".")
}

func (v Version) IsStable() bool {
	return v.v.Prerelease() == ""
}

func (v Version) String() string {
	return v.v.Original()
}

// Compare returns -1, 0 or 1.
//
// The core triple decides first. On an equal core a stable version outranks any
// prerelease. Two prereleases are compared identifier by identifier: numeric
// identifiers numerically, alphanumeric ones by byte order, numeric below
// alphanumeric, and a longer sequence wins when the shorter one is its prefix.
func (v Version) Compare(o Version) int {
	if c := compareUint(v.Major(), o.Major()); c != 0 {
		return c
	}
	if c := compareUint(v.Minor(), o.Minor()); c != 0 {
		return c
	}
	if c := compareUint(v.Patch(), o.Patch()); c != 0 {
		return c
	}
	return comparePrerelease(v.Prerelease(), o.Prerelease())
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePrerelease orders identifier sequences. nil is a stable release.
func comparePrerelease(a, b []string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareUint(uint64(len(a)), uint64(len(b)))
}

func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		// no leading zeros after strict parsing, so the longer number is the bigger one
		if c := compareUint(uint64(len(a)), uint64(len(b))); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsNewer reports whether candidate is strictly newer than baseline.
func IsNewer(candidate, baseline string) (bool, error) {
	c, err := ParseVersion(candidate)
	if err != nil {
		return false, err
	}
	b, err := ParseVersion(baseline)
	if err != nil {
		return false, err
	}
	return c.Compare(b) > 0, nil
}

// CompareVersions parses both inputs and returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
