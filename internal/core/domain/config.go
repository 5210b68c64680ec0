package domain

// Default resolver priorities. Lower values are attempted first.
const (
	DefaultManifestPriority  = 1000
	DefaultEnvPriority       = 2000
	DefaultDirectoryPriority = 3000
	DefaultNixPriority       = 9000
)

// Config is the resolved sdkres configuration.
type Config struct {
	// Root is the directory containing the config file; relative paths are joined to it.
	Root        string
	HostVersion string
	Policy      SharingPolicy
	Manifest    ManifestResolverConfig
	Env         EnvResolverConfig
	Directory   DirectoryResolverConfig
	Nix         NixResolverConfig
	// Projects maps a project file path to the SDK references it requests.
	Projects map[string][]SdkReference
}

// ManifestResolverConfig configures the map-based resolver.
type ManifestResolverConfig struct {
	Enabled  bool
	Priority int
	// Sdks maps "name" or "name@version" to a directory.
	Sdks map[string]string
}

// EnvResolverConfig configures the environment-variable resolver.
type EnvResolverConfig struct {
	Enabled  bool
	Priority int
	Prefix   string
}

// DirectoryResolverConfig configures the versioned directory resolver.
type DirectoryResolverConfig struct {
	Enabled  bool
	Priority int
	Roots    []string
}

// NixResolverConfig configures the NixHub-backed resolver.
type NixResolverConfig struct {
	Enabled  bool
	Priority int
	CacheDir string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:   root,
		Policy: SharingPolicyIsolated,
		Manifest: ManifestResolverConfig{
			Enabled:  true,
			Priority: DefaultManifestPriority,
			Sdks:     map[string]string{},
		},
		Env: EnvResolverConfig{
			Enabled:  true,
			Priority: DefaultEnvPriority,
			Prefix:   DefaultEnvPrefix,
		},
		Directory: DirectoryResolverConfig{
			Enabled:  true,
			Priority: DefaultDirectoryPriority,
		},
		Nix: NixResolverConfig{
			Priority: DefaultNixPriority,
			CacheDir: DefaultNixHubCachePath(),
		},
		Projects: map[string][]SdkReference{},
	}
}
