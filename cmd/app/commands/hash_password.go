package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cenesthesia/sentinelauth/credential"
	"github.com/cenesthesia/sentinelauth/internal/usecase"
	"github.com/cenesthesia/sentinelauth/password"
)

// RunHashPassword reads a password from the input, enforces the strength
// policy, and prints the salt and derived key base64-encoded. The password
// buffer is wiped by the hashing pipeline before this function returns.
func RunHashPassword(
	ctx context.Context,
	uc usecase.UseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	userIdentifier string,
	format string,
) error {
	if err := parseOutputFormat(format); err != nil {
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

	logger.Info("hashing credential", slog.String("user_identifier", userIdentifier))

	hashed, err := uc.HashCredential(ctx, cred)
	if err != nil {
		return fmt.Errorf("failed to hash credential: %w", err)
	}

	if format == "json" {
		return json.NewEncoder(ioTuple.Writer).Encode(map[string]string{
			"user_identifier": hashed.UserIdentifier,
			"salt":            encodeBase64(hashed.Salt),
			"hash":            encodeBase64(hashed.Hash),
		})
	}

	fmt.Fprintln(ioTuple.Writer)
	fmt.Fprintf(ioTuple.Writer, "User identifier: %s\n", hashed.UserIdentifier)
	fmt.Fprintf(ioTuple.Writer, "Salt:            %s\n", encodeBase64(hashed.Salt))
	fmt.Fprintf(ioTuple.Writer, "Hash:            %s\n", encodeBase64(hashed.Hash))

	return nil
}
