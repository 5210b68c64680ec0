package config

// Sdkresfile represents the structure of the sdkres.yaml configuration file.
type Sdkresfile struct {
	Version     string              `yaml:"version"`
	HostVersion string              `yaml:"hostVersion"`
	Policy      string              `yaml:"policy"`
	Resolvers   ResolversDTO        `yaml:"resolvers"`
	Projects    map[string][]string `yaml:"projects"`
}

// ResolversDTO holds the per-resolver sections. A missing section keeps the defaults.
type ResolversDTO struct {
	Manifest  *ManifestDTO  `yaml:"manifest"`
	Env       *EnvDTO       `yaml:"env"`
	Directory *DirectoryDTO `yaml:"directory"`
	Nix       *NixDTO       `yaml:"nix"`
}

// ManifestDTO configures the manifest resolver.
type ManifestDTO struct {
	Enabled  *bool             `yaml:"enabled"`
	Priority *int              `yaml:"priority"`
	Sdks     map[string]string `yaml:"sdks"`
}

// EnvDTO configures the environment-variable resolver.
type EnvDTO struct {
	Enabled  *bool   `yaml:"enabled"`
	Priority *int    `yaml:"priority"`
	Prefix   *string `yaml:"prefix"`
}

// DirectoryDTO configures the directory resolver.
type DirectoryDTO struct {
	Enabled  *bool    `yaml:"enabled"`
	Priority *int     `yaml:"priority"`
	Roots    []string `yaml:"roots"`
}

// NixDTO configures the NixHub resolver.
type NixDTO struct {
	Enabled  *bool   `yaml:"enabled"`
	Priority *int    `yaml:"priority"`
	CacheDir *string `yaml:"cacheDir"`
}
