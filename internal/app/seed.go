package app

import (
	"context"
	"fmt"
	"log/slog"

	authDomain "github.com/allisson/docguard/internal/auth/domain"
	documentsDomain "github.com/allisson/docguard/internal/documents/domain"
	identityDomain "github.com/allisson/docguard/internal/identity/domain"
)

// SeedDemoData loads the demo users and documents into the in-memory stores.
// Idempotent per process since the stores start empty; the server command
// calls it once at startup when SEED_DEMO_DATA is enabled.
//
// Demo dataset:
//   - ssmith: Staff in Sales
//   - jdoe: Staff in IT
//   - cwilliams: Manager in IT
//
// Documents cover the visibility tiers: department-scoped, the "All"
// sentinel and a manager-only document.
func (c *Container) SeedDemoData(ctx context.Context) error {
	if !c.config.SeedDemoData {
		return nil
	}

	logger := c.Logger()

	identity, err := c.IdentityUseCase()
	if err != nil {
		return fmt.Errorf("failed to get identity use case for seeding: %w", err)
	}

	users := []*identityDomain.CreateUserInput{
		{
			UserName:   "ssmith",
			Password:   c.config.SeedUserPassword,
			GivenName:  "Sarah",
			FamilyName: "Smith",
			Email:      "ssmith@example.com",
			Department: "Sales",
			Roles:      []string{authDomain.RoleStaff},
		},
		{
			UserName:   "jdoe",
			Password:   c.config.SeedUserPassword,
			GivenName:  "John",
			FamilyName: "Doe",
			Email:      "jdoe@example.com",
			Department: "IT",
			Roles:      []string{authDomain.RoleStaff},
		},
		{
			UserName:   "cwilliams",
			Password:   c.config.SeedUserPassword,
			GivenName:  "Carol",
			FamilyName: "Williams",
			Email:      "cwilliams@example.com",
			Department: "IT",
			Roles:      []string{authDomain.RoleManager},
		},
	}

	for _, input := range users {
		if _, err := identity.CreateUser(ctx, input); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", input.UserName, err)
		}
	}

	repo := c.DocumentRepository()

	documents := []*documentsDomain.Document{
		{Content: "Sales pipeline review", Department: "Sales", Owner: "ssmith"},
		{Content: "Company holiday calendar", Department: authDomain.DepartmentAll, Owner: "jdoe"},
		{Content: "Network maintenance schedule", Department: "IT", Owner: "jdoe"},
		{Content: "Incident postmortem, restricted", Department: "IT", Owner: "cwilliams", ManagerOnly: true},
	}

	for _, document := range documents {
		if err := repo.Create(ctx, document); err != nil {
			return fmt.Errorf("failed to seed document %q: %w", document.Content, err)
		}
	}

	logger.Info("demo data seeded",
		slog.Int("users", len(users)),
		slog.Int("documents", len(documents)))

	return nil
}
