package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	versionSeparator = "@"
	minimumPrefix    = ">="
)

// SdkReference identifies an SDK by name with an optional version constraint.
// It is an immutable value.
type SdkReference struct {
	Name           string
	Version        string
	MinimumVersion string
}

// NewSdkReference creates a reference with an optional exact version.
func NewSdkReference(name, version string) SdkReference {
	return SdkReference{Name: name, Version: version}
}

// ParseSdkReference parses "name", "name@version" or "name@>=minimum".
func ParseSdkReference(s string) (SdkReference, error) {
	s = strings.TrimSpace(s)
	name, constraint, hasConstraint := strings.Cut(s, versionSeparator)
	name = strings.TrimSpace(name)
	constraint = strings.TrimSpace(constraint)

	if name == "" {
		return SdkReference{}, zerr.With(zerr.Wrap(ErrEmptySdkName, "cannot parse sdk reference"), "reference", s)
	}
	if !hasConstraint {
		return SdkReference{Name: name}, nil
	}
	if constraint == "" {
		return SdkReference{}, zerr.With(zerr.Wrap(ErrInvalidSdkReference, "cannot parse sdk reference"), "reference", s)
	}

	if minimum, ok := strings.CutPrefix(constraint, minimumPrefix); ok {
		minimum = strings.TrimSpace(minimum)
		if minimum == "" {
			return SdkReference{}, zerr.With(zerr.Wrap(ErrInvalidSdkReference, "cannot parse sdk reference"), "reference", s)
		}
		return SdkReference{Name: name, MinimumVersion: minimum}, nil
	}

	return SdkReference{Name: name, Version: constraint}, nil
}

// Validate checks that the reference can be resolved.
func (r SdkReference) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptySdkName
	}
	return nil
}

// Key returns the cache identity of the reference.
//
// The key is the lower-cased name followed by the exact version, or by the minimum
// version when no exact version is set. Version strings are not normalized, so
// "1.0" and "1.0.0" are distinct keys.
func (r SdkReference) Key() SdkKey {
	var b strings.Builder
	b.WriteString(strings.ToLower(r.Name))
	switch {
	case r.Version != "":
		b.WriteString(versionSeparator)
		b.WriteString(r.Version)
	case r.MinimumVersion != "":
		b.WriteString(versionSeparator)
		b.WriteString(minimumPrefix)
		b.WriteString(r.MinimumVersion)
	}
	return NewSdkKey(b.String())
}

// String returns the reference in the syntax accepted by ParseSdkReference.
func (r SdkReference) String() string {
	switch {
	case r.Version != "":
		return r.Name + versionSeparator + r.Version
	case r.MinimumVersion != "":
		return r.Name + versionSeparator + minimumPrefix + r.MinimumVersion
	default:
		return r.Name
	}
}
