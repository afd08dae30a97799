package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
)

// RunListUsers prints all user accounts in the identity store in either text
// or JSON format.
func RunListUsers(
	ctx context.Context,
	identity identityUseCase.IdentityUseCase,
	format string,
	io IOTuple,
) error {
	users, err := identity.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if format == "json" {
		type userEntry struct {
			ID         string   `json:"id"`
			UserName   string   `json:"user_name"`
			Department string   `json:"department"`
			Roles      []string `json:"roles"`
			IsActive   bool     `json:"is_active"`
		}

		entries := make([]userEntry, 0, len(users))
		for _, user := range users {
			entries = append(entries, userEntry{
				ID:         user.ID.String(),
				UserName:   user.UserName,
				Department: user.Department,
				Roles:      user.Roles,
				IsActive:   user.IsActive,
			})
		}

		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}

	if len(users) == 0 {
		fmt.Fprintln(io.Writer, "No users found.")
		return nil
	}

	for _, user := range users {
		fmt.Fprintf(io.Writer, "%s (%s) roles=[%s] active=%t\n",
			user.UserName,
			user.Department,
			strings.Join(user.Roles, ", "),
			user.IsActive,
		)
	}

	return nil
}
