package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/internal/config"
	"github.com/shunt-cli/shunt/internal/util"
	"github.com/shunt-cli/shunt/ui"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// manifest is the per-host deployment bundle written by the deploy command.
type manifest struct {
	Host        string           `yaml:"host"`
	Address     string           `yaml:"address"`
	User        string           `yaml:"user,omitempty"`
	Port        int              `yaml:"port,omitempty"`
	Tags        []string         `yaml:"tags,omitempty"`
	Domains     []manifestDomain `yaml:"domains,omitempty"`
	GeneratedAt string           `yaml:"generated_at"`
}

// manifestDomain is a domain served from the manifest's host.
type manifestDomain struct {
	Name    string             `yaml:"name"`
	Records []config.DNSRecord `yaml:"records,omitempty"`
}

// DeployCommand builds deployment bundles for inventory hosts.
type DeployCommand struct{}

// Help describes the deploy command.
func (c *DeployCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Deploy",
		"fleet deploy <host...>",
		"Build a deployment bundle for each named host: a YAML manifest with the host's connection details and every domain pointing at its address. Requires the stored deploy credential.",
	)
	h.AddParam("host...", "One or more inventory host names")
	h.AddFlag("--output", "Directory to write manifests into (default: deploy)")
	h.AddFlag("--dry-run", "Show what would be written without writing")
	h.AddExample("fleet deploy web-1")
	h.AddExample("fleet deploy web-1 db-1 --output bundles")
	return h
}

// Process verifies the credential, resolves the targets, and writes one
// manifest per host.
func (c *DeployCommand) Process(inv *shunt.Invocation) error {
	if err := inv.RequireArgs(1); err != nil {
		return err
	}

	cfg, _, err := loadExisting(inv)
	if err != nil {
		return err
	}
	log := commandLogger(inv)

	// Resolve every target before touching anything
	targets := make([]string, 0, len(inv.Args))
	for _, name := range inv.Args {
		if _, ok := cfg.Hosts[name]; !ok {
			names := sortedHostNames(cfg)
			if similar := shunt.SuggestSimilar(name, names, 3); len(similar) > 0 {
				return shunt.NewError(shunt.ErrConfig,
					fmt.Sprintf("Host '%s' not found", name),
					fmt.Sprintf("Did you mean: %s", strings.Join(similar, ", ")))
			}
			return shunt.NewError(shunt.ErrConfig,
				fmt.Sprintf("Host '%s' not found", name),
				fmt.Sprintf("Available hosts: %s", strings.Join(names, ", ")))
		}
		targets = append(targets, name)
	}

	if err := verifyCredential(cfg); err != nil {
		return err
	}

	outDir := inv.ValueOr("--output", "deploy")
	if inv.HasFlag("--dry-run") {
		for _, name := range targets {
			fmt.Printf("Would write %s\n", filepath.Join(outDir, name+".yaml"))
		}
		return nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return shunt.WrapError(err, fmt.Sprintf("Couldn't create output directory %s", outDir))
	}

	progress := ui.NewInlineProgress("Writing manifests", os.Stdout)
	progress.Start()
	for i, name := range targets {
		m := buildManifest(cfg, name)
		log.Debug("manifest for %s: %d domain(s)", name, len(m.Domains))

		if err := writeManifest(m, filepath.Join(outDir, name+".yaml")); err != nil {
			progress.Fail()
			return err
		}
		progress.Update(float64(i+1)/float64(len(targets)), name)
	}
	progress.Success()

	fmt.Printf("%s Deployed %d %s to %s\n", ui.SymbolSuccess, len(targets),
		util.Pluralize(len(targets), "manifest", "manifests"), outDir)
	return nil
}

// verifyCredential checks the deploy password against the stored bcrypt hash.
// FLEET_PASSWORD supplies the password non-interactively.
func verifyCredential(cfg *config.Config) error {
	if cfg.Auth.PasswordHash == "" {
		return shunt.NewError(shunt.ErrConfig,
			"No deploy credential set",
			"Run 'fleet auth set' first.")
	}

	password := os.Getenv("FLEET_PASSWORD")
	if password == "" {
		var err error
		password, err = ui.Password("Deploy password: ")
		if err != nil {
			return shunt.WrapError(err, "Couldn't read the password")
		}
	}

	spinner := ui.NewSpinner("Verifying credential")
	spinner.Start()
	err := bcrypt.CompareHashAndPassword([]byte(cfg.Auth.PasswordHash), []byte(password))
	if err != nil {
		spinner.Fail()
		return shunt.NewError(shunt.ErrHandler,
			"Deploy password doesn't match",
			"Run 'fleet auth set' if you need to reset it.")
	}
	spinner.Success()
	return nil
}

// buildManifest assembles the bundle for one host: its connection details and
// the domains whose apex points at its address.
func buildManifest(cfg *config.Config, name string) manifest {
	h := cfg.Hosts[name]
	m := manifest{
		Host:        name,
		Address:     h.Address,
		User:        h.User,
		Port:        h.Port,
		Tags:        h.Tags,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, domainName := range sortedDomainNames(cfg) {
		d := cfg.Domains[domainName]
		if d.IP != h.Address {
			continue
		}
		m.Domains = append(m.Domains, manifestDomain{
			Name:    domainName,
			Records: d.Records,
		})
	}

	return m
}

// writeManifest marshals the bundle and writes it to path.
func writeManifest(m manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return shunt.WrapError(err, "Couldn't generate the manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return shunt.WrapError(err, fmt.Sprintf("Couldn't write %s", path))
	}
	return nil
}
