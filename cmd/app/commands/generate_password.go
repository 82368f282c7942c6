package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/cenesthesia/sentinelauth/internal/usecase"
	"github.com/cenesthesia/sentinelauth/password"
)

// RunGeneratePassword provisions a credential with a generated identifier and
// a policy-satisfying random password, and prints both. The password buffer
// is wiped after it is written out.
func RunGeneratePassword(
	ctx context.Context,
	uc usecase.UseCase,
	logger *slog.Logger,
	w io.Writer,
	length int,
	format string,
) error {
	if err := parseOutputFormat(format); err != nil {
		return err
	}

	logger.Info("generating credential", slog.Int("length", length))

	cred, err := uc.GenerateCredential(ctx, length)
	if err != nil {
		return fmt.Errorf("failed to generate credential: %w", err)
	}
	defer cred.ClearPassword()

	if format == "json" {
		return json.NewEncoder(w).Encode(map[string]string{
			"user_identifier": cred.UserIdentifier(),
			"password":        string(cred.Password()),
		})
	}

	fmt.Fprintf(w, "User identifier: %s\n", cred.UserIdentifier())
	fmt.Fprintf(w, "Password:        %s\n", cred.Password())

	return nil
}

// RunGenerateSalt generates a fresh random salt and prints it base64-encoded.
// Salts are not secret, so there is nothing to wipe here.
func RunGenerateSalt(logger *slog.Logger, w io.Writer) error {
	salt, err := password.GenerateSalt()
	if err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	logger.Info("generated salt", slog.Int("length", len(salt)))

	fmt.Fprintf(w, "%s\n", encodeBase64(salt))

	return nil
}
