package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/internal/config"
	"github.com/shunt-cli/shunt/internal/lock"
)

// lockTimeout bounds how long a mutating command waits for another fleet
// process to release the inventory.
const lockTimeout = 5 * time.Second

// configPathFrom returns the explicit inventory path when --config was given
// anywhere in the arguments.
func configPathFrom(inv *shunt.Invocation) string {
	if path, ok := inv.GlobalValue("--config"); ok {
		return path
	}
	return ""
}

// loadExisting loads the inventory for commands that require one to exist.
func loadExisting(inv *shunt.Invocation) (*config.Config, string, error) {
	path, err := config.Find(configPathFrom(inv))
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return nil, "", shunt.NewError(shunt.ErrConfig,
			"No inventory file found",
			"Run 'fleet host add <name>' to create one, or pass --config <path>.")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// loadOrCreate loads the inventory or starts a fresh one for commands that
// may create it. The returned path is where Save should write. An explicit
// --config path that does not exist yet means a fresh inventory there.
func loadOrCreate(inv *shunt.Invocation) (*config.Config, string, error) {
	explicit := configPathFrom(inv)
	if explicit != "" {
		if _, err := os.Stat(explicit); os.IsNotExist(err) {
			return config.DefaultConfig(), explicit, nil
		}
	}

	cfg, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, "", err
	}
	return cfg, config.DefaultPath(explicit), nil
}

// withInventoryLock runs fn while holding the inventory lock for path, so
// concurrent fleet processes cannot interleave writes.
func withInventoryLock(path string, fn func() error) error {
	l, err := lock.Acquire(path, lockTimeout)
	if err != nil {
		return shunt.WrapErrorWithCode(err, shunt.ErrConfig,
			"Couldn't lock the inventory",
			fmt.Sprintf("Another fleet process may be writing to it. If none is running, remove %s.", lock.LockDir(path)))
	}
	defer l.Release()
	return fn()
}

// saveLocked writes the inventory under its lock.
func saveLocked(cfg *config.Config, path string) error {
	return withInventoryLock(path, func() error {
		return config.Save(cfg, path)
	})
}

// commandLogger returns a debug logger when --verbose was given, else a
// silent one.
func commandLogger(inv *shunt.Invocation) shunt.Logger {
	if inv.HasGlobal("--verbose") {
		return shunt.NewLogger("fleet")
	}
	return shunt.NoopLogger()
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// hasAllTags reports whether the host carries every wanted tag.
func hasAllTags(host config.Host, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range host.Tags {
			if t == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sortedHostNames returns the inventory's host names in sorted order.
func sortedHostNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Hosts))
	for name := range cfg.Hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedDomainNames returns the inventory's domain names in sorted order.
func sortedDomainNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Domains))
	for name := range cfg.Domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
