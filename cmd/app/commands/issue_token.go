package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	authUseCase "github.com/allisson/docguard/internal/auth/usecase"
)

// RunIssueToken authenticates a user and prints a signed bearer token.
// Useful for local testing against the API without going through the login
// endpoint.
func RunIssueToken(
	ctx context.Context,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
	userName string,
	password string,
	format string,
	io IOTuple,
) error {
	output, err := tokenUseCase.Login(ctx, userName, password)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"token":      output.Token,
			"expires_at": output.ExpiresAt.Format(time.RFC3339),
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		fmt.Fprintf(io.Writer, "Token:      %s\n", output.Token)
		fmt.Fprintf(io.Writer, "Expires at: %s\n", output.ExpiresAt.Format(time.RFC3339))
	}

	logger.Info("token issued", slog.String("user_name", userName))

	return nil
}
