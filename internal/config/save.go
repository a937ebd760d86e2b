package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shunt-cli/shunt"
	"gopkg.in/yaml.v3"
)

// configHeader is written at the top of a freshly generated file.
const configHeader = `# Fleet inventory
# Run 'fleet help' for an overview of available commands

`

// Save writes the config to path as YAML, creating parent directories as
// needed. A new file gets the standard header comment; rewriting an existing
// file drops hand-written comments, so prefer AddDNSRecord for incremental
// record edits.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return shunt.WrapErrorWithCode(err, shunt.ErrConfig,
				fmt.Sprintf("Failed to create config directory: %s", dir),
				"Check directory permissions")
		}
	}

	content := configHeader + string(data)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}

	return nil
}
