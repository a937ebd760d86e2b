package config

import (
	"os"
	"path/filepath"

	"github.com/shunt-cli/shunt"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = "fleet.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/fleet"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, shunt.WrapErrorWithCode(err, shunt.ErrConfig,
				"Config file not found",
				"Run 'fleet host add' to create an inventory, or specify one with --config")
		}
		return nil, shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. fleet.yaml in current directory
// 3. fleet.yaml in parent directories (stops at git root or home)
// 4. ~/.config/fleet/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", shunt.WrapErrorWithCode(err, shunt.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", shunt.WrapErrorWithCode(err, shunt.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults when no
// file exists yet. Commands that create the inventory use this.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// DefaultPath returns where a fresh config file should be written: the found
// config when one exists, else fleet.yaml in the current directory.
func DefaultPath(explicit string) string {
	if path, err := Find(explicit); err == nil && path != "" {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(cwd, ConfigFileName)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// Expand variables in host login names
	for name, host := range cfg.Hosts {
		host.User = Expand(host.User)
		cfg.Hosts[name] = host
	}

	return cfg, nil
}

// setDefaults configures defaults merged under any file contents.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentConfigVersion)
	v.SetDefault("output.color", "auto")
}
