package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SharingPolicy decides whether project evaluations reuse one resolution cache.
type SharingPolicy int

const (
	// SharingPolicyShared lets every project evaluated through a context share its cache.
	SharingPolicyShared SharingPolicy = iota
	// SharingPolicyIsolated gives every project after the first its own cache.
	SharingPolicyIsolated
)

// String returns the policy name as used in configuration.
func (p SharingPolicy) String() string {
	switch p {
	case SharingPolicyShared:
		return "shared"
	case SharingPolicyIsolated:
		return "isolated"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the declared policies.
func (p SharingPolicy) Valid() bool {
	return p == SharingPolicyShared || p == SharingPolicyIsolated
}

// ParseSharingPolicy parses "shared" or "isolated", ignoring case.
// An empty string yields the isolated default.
func ParseSharingPolicy(s string) (SharingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "isolated":
		return SharingPolicyIsolated, nil
	case "shared":
		return SharingPolicyShared, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownSharingPolicy, "cannot parse sharing policy"), "policy", s)
	}
}
