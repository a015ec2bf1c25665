package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuscore/provenance/internal/authz"
	"github.com/nexuscore/provenance/internal/idutil"
	"github.com/nexuscore/provenance/internal/session"
)

// demoCredentials stands in for the (external) relational credential
// store: username -> (password hash, role). Real authentication is
// out of scope; this exists only so "login" has something to check
// against and a session/permission set to hand back.
var demoCredentials = map[string]struct {
	passwordHash string
	role         authz.Role
}{
	"admin":    {passwordHash: idutil.HashPassword("admin123"), role: authz.RoleManager},
	"supplier": {passwordHash: idutil.HashPassword("pass123"), role: authz.RoleSupplier},
}

func newLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Authenticate against the demo credential store and open a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			cred, ok := demoCredentials[username]
			if !ok || cred.passwordHash != idutil.HashPassword(password) {
				return fmt.Errorf("authentication failed for %q", username)
			}

			store := session.New()
			sess := store.Login(username)

			cmd.Printf("session:     %s\n", sess.ID)
			cmd.Printf("role:        %s\n", cred.role)
			cmd.Printf("permissions: %v\n", authz.PermissionsFor(cred.role))
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}
