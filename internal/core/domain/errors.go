package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptySdkName is returned when an SDK reference has no name.
	ErrEmptySdkName = zerr.New("sdk reference name is empty")

	// ErrInvalidSdkReference is returned when an SDK reference string cannot be parsed.
	ErrInvalidSdkReference = zerr.New("invalid sdk reference, expected name, name@version or name@>=minimum")

	// ErrServiceAlreadyResolving is returned when the resolver chain of a service is replaced
	// after the service has started serving resolutions.
	ErrServiceAlreadyResolving = zerr.New("sdk resolver service cannot be initialized after resolution has begun")

	// ErrNilResolverResult is returned when a resolver returns neither a result nor an error.
	ErrNilResolverResult = zerr.New("sdk resolver returned a nil result")

	// ErrResolverFault is returned when a resolver panics during resolution.
	ErrResolverFault = zerr.New("sdk resolver faulted")

	// ErrUnknownSharingPolicy is returned when a sharing policy is not shared or isolated.
	ErrUnknownSharingPolicy = zerr.New("unknown sharing policy, expected 'shared' or 'isolated'")

	// ErrNoSdkReferences is returned when an evaluation is requested without any SDK references.
	ErrNoSdkReferences = zerr.New("no sdk references specified")

	// ErrResolutionFailed is returned when at least one SDK reference could not be resolved.
	ErrResolutionFailed = zerr.New("sdk resolution failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidResolverConfig is returned when a resolver section of the config is invalid.
	ErrInvalidResolverConfig = zerr.New("invalid resolver configuration")

	// ErrNixCacheCreateFailed is returned when the NixHub cache directory cannot be created.
	ErrNixCacheCreateFailed = zerr.New("failed to create nixhub cache directory")

	// ErrNixCacheReadFailed is returned when a NixHub cache entry cannot be read.
	ErrNixCacheReadFailed = zerr.New("failed to read nixhub cache entry")

	// ErrNixCacheUnmarshalFailed is returned when a NixHub cache entry cannot be decoded.
	ErrNixCacheUnmarshalFailed = zerr.New("failed to unmarshal nixhub cache entry")

	// ErrNixCacheMarshalFailed is returned when a NixHub cache entry cannot be encoded.
	ErrNixCacheMarshalFailed = zerr.New("failed to marshal nixhub cache entry")

	// ErrNixCacheWriteFailed is returned when a NixHub cache entry cannot be written.
	ErrNixCacheWriteFailed = zerr.New("failed to write nixhub cache entry")

	// ErrNixAPIRequestFailed is returned when the NixHub API request fails.
	ErrNixAPIRequestFailed = zerr.New("nixhub api request failed")

	// ErrNixAPIParseFailed is returned when the NixHub API response cannot be decoded.
	ErrNixAPIParseFailed = zerr.New("failed to parse nixhub api response")

	// ErrNixPackageNotFound is returned when NixHub has no package for the requested version.
	ErrNixPackageNotFound = zerr.New("package not found in nixhub")

	// ErrNixInstallFailed is returned when nix build fails to realise a package.
	ErrNixInstallFailed = zerr.New("failed to install package with nix")

	// ErrNixBuildFailed marks an install failure where nix build ran and exited non-zero.
	ErrNixBuildFailed = zerr.New("nix build exited with an error")
)
