package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/shunt-cli/shunt"
)

// validRecordTypes are the DNS record types fleet knows how to store.
var validRecordTypes = map[string]bool{
	"A":     true,
	"AAAA":  true,
	"CNAME": true,
	"MX":    true,
	"TXT":   true,
	"NS":    true,
	"SRV":   true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return shunt.NewError(shunt.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	// Check version
	if cfg.Version > CurrentConfigVersion {
		return shunt.NewError(shunt.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but fleet only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade fleet to the latest release.")
	}

	// Validate each host
	for name, host := range cfg.Hosts {
		if err := validateHost(name, host); err != nil {
			return shunt.WrapErrorWithCode(err, shunt.ErrConfig, err.Error(),
				"Check the 'hosts' section in fleet.yaml.")
		}
	}

	// Validate each domain
	for name, domain := range cfg.Domains {
		if err := validateDomain(name, domain); err != nil {
			return shunt.WrapErrorWithCode(err, shunt.ErrConfig, err.Error(),
				"Check the 'domains' section in fleet.yaml.")
		}
	}

	if err := validateOutput(cfg.Output); err != nil {
		return shunt.WrapErrorWithCode(err, shunt.ErrConfig, err.Error(),
			"Check the 'output' section in fleet.yaml.")
	}

	return nil
}

// validateHost checks a single host configuration.
func validateHost(name string, host Host) error {
	if strings.TrimSpace(host.Address) == "" {
		return fmt.Errorf("host '%s' needs an 'address' - that's how fleet reaches it", name)
	}

	if host.Port < 0 || host.Port > 65535 {
		return fmt.Errorf("host '%s' port %d isn't a valid port number", name, host.Port)
	}

	for i, tag := range host.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("host '%s' has an empty tag at position %d - remove it or name it", name, i)
		}
	}

	return nil
}

// validateDomain checks a single domain and its records.
func validateDomain(name string, domain Domain) error {
	if strings.TrimSpace(domain.IP) == "" {
		return fmt.Errorf("domain '%s' needs an 'ip' for its apex record", name)
	}
	if net.ParseIP(domain.IP) == nil {
		return fmt.Errorf("domain '%s' ip '%s' doesn't look like an IP address", name, domain.IP)
	}

	for i, rec := range domain.Records {
		if !validRecordTypes[strings.ToUpper(rec.Type)] {
			return fmt.Errorf("domain '%s' record %d has type '%s' - use one of A, AAAA, CNAME, MX, TXT, NS, SRV", name, i+1, rec.Type)
		}
		if strings.TrimSpace(rec.Value) == "" {
			return fmt.Errorf("domain '%s' record %d is missing its 'value'", name, i+1)
		}
	}

	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
