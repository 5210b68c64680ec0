package domain

import "path/filepath"

const (
	// SdkresDirName is the name of the internal state directory.
	SdkresDirName = ".sdkres"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// NixHubDirName is the name of the NixHub cache directory.
	NixHubDirName = "nixhub"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "sdkres.yaml"

	// DefaultEnvPrefix is the environment variable prefix consulted by the env resolver.
	DefaultEnvPrefix = "SDKRES_SDK_"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultNixHubCachePath returns the default path for the NixHub cache.
// It joins .sdkres, cache, and nixhub.
func DefaultNixHubCachePath() string {
	return filepath.Join(SdkresDirName, CacheDirName, NixHubDirName)
}
