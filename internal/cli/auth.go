package cli

import (
	"fmt"

	"github.com/shunt-cli/shunt"
	"github.com/shunt-cli/shunt/ui"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the shortest deploy credential fleet accepts.
const minPasswordLength = 8

// AuthSetCommand stores the deploy credential as a bcrypt hash.
type AuthSetCommand struct{}

// Help describes the auth set command.
func (c *AuthSetCommand) Help() *shunt.HelpScreen {
	h := shunt.NewHelpScreen(
		"Auth Set",
		"fleet auth set",
		"Set the deploy credential. You are asked for the password twice; only a bcrypt hash is stored in the inventory, never the plaintext.",
	)
	h.AddExample("fleet auth set")
	return h
}

// Process prompts for the new credential and saves its hash.
func (c *AuthSetCommand) Process(inv *shunt.Invocation) error {
	cfg, path, err := loadOrCreate(inv)
	if err != nil {
		return err
	}

	password, err := ui.NewPassword(minPasswordLength)
	if err != nil {
		return shunt.WrapError(err, "Couldn't read the password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return shunt.WrapError(err, "Couldn't hash the password")
	}

	cfg.Auth.PasswordHash = string(hash)
	if err := saveLocked(cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Deploy credential updated\n", ui.SymbolSuccess)
	return nil
}
