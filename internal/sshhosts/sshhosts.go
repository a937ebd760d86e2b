// Package sshhosts reads host aliases out of the user's SSH config so the
// interactive picker can offer them when adding inventory hosts.
package sshhosts

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kevinburke/ssh_config"
)

// Entry represents a parsed host entry from SSH config.
type Entry struct {
	Alias    string // The Host pattern (alias)
	Hostname string // The HostName value (actual host to connect to)
	User     string // The User value
	Port     string // The Port value
}

// Description returns a user-friendly description of the host.
func (e Entry) Description() string {
	parts := []string{}

	if e.Hostname != "" && e.Hostname != e.Alias {
		parts = append(parts, e.Hostname)
	}

	if e.User != "" {
		parts = append(parts, "user: "+e.User)
	}

	if e.Port != "" && e.Port != "22" {
		parts = append(parts, "port: "+e.Port)
	}

	if len(parts) == 0 {
		return e.Alias
	}

	return strings.Join(parts, ", ")
}

// Parse parses ~/.ssh/config and returns all host entries.
// It filters out wildcard patterns, returning only concrete host aliases.
func Parse() ([]Entry, error) {
	return ParseFile(filepath.Join(homeDir(), ".ssh", "config"))
}

// ParseFile parses the specified SSH config file. A missing file yields no
// entries and no error.
func ParseFile(configPath string) ([]Entry, error) {
	content, err := preprocess(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No SSH config is fine
		}
		return nil, err
	}

	cfg, err := ssh_config.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	var entries []Entry
	seen := make(map[string]bool)

	for _, host := range cfg.Hosts {
		for _, pattern := range host.Patterns {
			alias := pattern.String()

			// Skip wildcards and special patterns
			if strings.Contains(alias, "*") || strings.Contains(alias, "?") {
				continue
			}

			if seen[alias] {
				continue
			}
			seen[alias] = true

			entry := Entry{
				Alias: alias,
			}

			if hostname, _ := cfg.Get(alias, "HostName"); hostname != "" {
				entry.Hostname = hostname
			}

			if user, _ := cfg.Get(alias, "User"); user != "" {
				entry.User = user
			}

			if port, _ := cfg.Get(alias, "Port"); port != "" {
				entry.Port = port
			}

			entries = append(entries, entry)
		}
	}

	// Sort by alias for consistent ordering
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Alias < entries[j].Alias
	})

	return entries, nil
}

// preprocess reads the SSH config up to the first Match directive, which the
// decoder does not understand. Returns the original content if no Match
// directive is found.
func preprocess(configPath string) ([]byte, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(trimmed), "match ") {
			break
		}
		result = append(result, line)
	}

	return []byte(strings.Join(result, "\n")), nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return home
}
