package domain

import "unique"

// SdkKey is the interned cache identity of an SdkReference.
// Two references share a key when their names are equal ignoring case and their
// version discriminators (exact version and minimum version) are equal byte for byte.
type SdkKey struct {
	h unique.Handle[string]
}

// NewSdkKey creates a new SdkKey from its canonical string form.
func NewSdkKey(s string) SdkKey {
	return SdkKey{
		h: unique.Make(s),
	}
}

// String returns the canonical string form of the key.
func (k SdkKey) String() string {
	var zero unique.Handle[string]
	if k.h == zero {
		return ""
	}
	return k.h.Value()
}
