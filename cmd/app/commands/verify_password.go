package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cenesthesia/sentinelauth/credential"
	"github.com/cenesthesia/sentinelauth/internal/usecase"
	"github.com/cenesthesia/sentinelauth/password"
)

// RunVerifyPassword reads a candidate password from the input and checks it
// against the stored salt and hash. A clean mismatch prints a verdict and
// returns an error so the process exits non-zero; scripts can branch on the
// exit code.
func RunVerifyPassword(
	ctx context.Context,
	uc usecase.UseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	userIdentifier, saltB64, hashB64 string,
) error {
	salt, err := decodeBase64("--salt", saltB64)
	if err != nil {
		return err
	}
	storedHash, err := decodeBase64("--hash", hashB64)
	if err != nil {
		return err
	}

	pw, err := readPassword(ioTuple, "Password: ")
	if err != nil {
		return err
	}

	cred, err := credential.New(userIdentifier, pw)
	if err != nil {
		password.Zero(pw)
		return err
	}

	logger.Info("verifying credential", slog.String("user_identifier", userIdentifier))

	ok, err := uc.VerifyCredential(ctx, cred, storedHash, salt)
	if err != nil {
		return fmt.Errorf("failed to verify credential: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer)
	if !ok {
		fmt.Fprintln(ioTuple.Writer, "Password does NOT match.")
		return fmt.Errorf("password mismatch for %s", userIdentifier)
	}

	fmt.Fprintln(ioTuple.Writer, "Password matches.")

	return nil
}
