package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	identityDomain "github.com/allisson/docguard/internal/identity/domain"
	identityUseCase "github.com/allisson/docguard/internal/identity/usecase"
)

// RunCreateUser creates a new user account in the identity store.
// Roles are passed as a comma-separated list (e.g. "Staff" or
// "Staff,Manager"). Outputs the created account in either text or JSON
// format.
func RunCreateUser(
	ctx context.Context,
	identity identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	userName string,
	password string,
	givenName string,
	familyName string,
	email string,
	department string,
	rolesStr string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("user_name", userName))

	input := &identityDomain.CreateUserInput{
		UserName:   userName,
		Password:   password,
		GivenName:  givenName,
		FamilyName: familyName,
		Email:      email,
		Department: department,
		Roles:      parseRoles(rolesStr),
	}

	user, err := identity.CreateUser(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"id":         user.ID.String(),
			"user_name":  user.UserName,
			"department": user.Department,
			"roles":      user.Roles,
			"is_active":  user.IsActive,
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		fmt.Fprintf(io.Writer, "User created:\n")
		fmt.Fprintf(io.Writer, "  ID:         %s\n", user.ID.String())
		fmt.Fprintf(io.Writer, "  Name:       %s\n", user.UserName)
		fmt.Fprintf(io.Writer, "  Department: %s\n", user.Department)
		fmt.Fprintf(io.Writer, "  Roles:      %s\n", strings.Join(user.Roles, ", "))
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("user_name", user.UserName))

	return nil
}

// parseRoles splits a comma-separated role list and trims whitespace.
func parseRoles(rolesStr string) []string {
	if rolesStr == "" {
		return nil
	}

	parts := strings.Split(rolesStr, ",")
	roles := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			roles = append(roles, trimmed)
		}
	}

	return roles
}
