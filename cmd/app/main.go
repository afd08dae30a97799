// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/docguard/cmd/app/commands"
	"github.com/allisson/docguard/internal/app"
	"github.com/allisson/docguard/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "docguard",
		Usage:   "Claims-based authorization service for department-scoped documents",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "create-user",
				Usage: "Create a new user account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user-name",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Account name (lowercase letters, digits, dots and dashes)",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Account password",
					},
					&cli.StringFlag{
						Name:  "given-name",
						Usage: "Given name",
					},
					&cli.StringFlag{
						Name:  "family-name",
						Usage: "Family name",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Email address",
					},
					&cli.StringFlag{
						Name:     "department",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Department name (e.g. Sales, IT)",
					},
					&cli.StringFlag{
						Name:    "roles",
						Aliases: []string{"r"},
						Value:   "Staff",
						Usage:   "Comma-separated role list (Staff, Manager)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container, logger, err := newContainer(ctx)
					if err != nil {
						return err
					}

					identity, err := container.IdentityUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize identity use case: %w", err)
					}

					return commands.RunCreateUser(
						ctx,
						identity,
						logger,
						cmd.String("user-name"),
						cmd.String("password"),
						cmd.String("given-name"),
						cmd.String("family-name"),
						cmd.String("email"),
						cmd.String("department"),
						cmd.String("roles"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "list-users",
				Usage: "List user accounts",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container, _, err := newContainer(ctx)
					if err != nil {
						return err
					}

					identity, err := container.IdentityUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize identity use case: %w", err)
					}

					return commands.RunListUsers(ctx, identity, cmd.String("format"), commands.DefaultIO())
				},
			},
			{
				Name:  "issue-token",
				Usage: "Authenticate a user and print a bearer token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user-name",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Account name",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Account password",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container, logger, err := newContainer(ctx)
					if err != nil {
						return err
					}

					tokenUseCase, err := container.TokenUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize token use case: %w", err)
					}

					return commands.RunIssueToken(
						ctx,
						tokenUseCase,
						logger,
						cmd.String("user-name"),
						cmd.String("password"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// newContainer loads configuration, builds the DI container and seeds the
// demo data when enabled. The stores are in-memory, so CLI commands operate
// on a fresh dataset per invocation.
func newContainer(ctx context.Context) (*app.Container, *slog.Logger, error) {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	logger := container.Logger()

	if err := container.SeedDemoData(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
	}

	return container, logger, nil
}
