package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete fleet.yaml inventory file.
type Config struct {
	Version int               `yaml:"version" mapstructure:"version"`
	Hosts   map[string]Host   `yaml:"hosts" mapstructure:"hosts"`
	Domains map[string]Domain `yaml:"domains" mapstructure:"domains"`
	Auth    AuthConfig        `yaml:"auth,omitempty" mapstructure:"auth"`
	Output  OutputConfig      `yaml:"output,omitempty" mapstructure:"output"`
}

// Host defines a managed server.
type Host struct {
	// Address is the hostname or IP the server is reached at.
	Address string `yaml:"address" mapstructure:"address"`

	// User is the login name. Supports ${USER} expansion.
	User string `yaml:"user,omitempty" mapstructure:"user"`

	// Port is the SSH port, 22 when zero.
	Port int `yaml:"port,omitempty" mapstructure:"port"`

	// Tags for filtering hosts with --tags.
	Tags []string `yaml:"tags,omitempty" mapstructure:"tags"`
}

// Domain is a managed domain and its DNS records.
type Domain struct {
	// IP is the address the apex record points at.
	IP string `yaml:"ip" mapstructure:"ip"`

	// Records are the DNS entries under this domain.
	Records []DNSRecord `yaml:"records,omitempty" mapstructure:"records"`
}

// DNSRecord is a single DNS entry.
type DNSRecord struct {
	Type  string `yaml:"type" mapstructure:"type"`
	Name  string `yaml:"name,omitempty" mapstructure:"name"`
	Value string `yaml:"value" mapstructure:"value"`
}

// AuthConfig holds the stored deploy credential.
type AuthConfig struct {
	// PasswordHash is a bcrypt hash, never the plaintext.
	PasswordHash string `yaml:"password_hash,omitempty" mapstructure:"password_hash"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color,omitempty" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Hosts:   make(map[string]Host),
		Domains: make(map[string]Domain),
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
