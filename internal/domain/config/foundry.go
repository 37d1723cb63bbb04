package config

// DefaultFoundryProfile is the profile consulted for build output paths
const DefaultFoundryProfile = "default"

// FoundryConfig represents the parts of foundry.toml this tool reads
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	OutPath string `toml:"out,omitempty"`
}

// OutDir returns the artifact output directory of a profile, defaulting to "out"
func (c *FoundryConfig) OutDir(profile string) string {
	if c != nil {
		if p, ok := c.Profile[profile]; ok && p.OutPath != "" {
			return p.OutPath
		}
	}
	return "out"
}
