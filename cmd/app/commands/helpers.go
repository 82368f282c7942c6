// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cenesthesia/sentinelauth/internal/app"
	"github.com/cenesthesia/sentinelauth/password"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// readPassword prompts on the writer and reads one line of password material
// from the reader. The returned buffer has the trailing newline stripped and
// is owned by the caller, who is responsible for wiping it.
func readPassword(ioTuple IOTuple, prompt string) ([]byte, error) {
	fmt.Fprint(ioTuple.Writer, prompt)

	line, err := bufio.NewReader(ioTuple.Reader).ReadBytes('\n')
	if err != nil && err != io.EOF {
		password.Zero(line)
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	// Strip the trailing newline in place so no copy of the password lingers.
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line[len(line)-1] = 0
		line = line[:len(line)-1]
	}

	if len(line) == 0 {
		return nil, password.ErrPasswordEmpty
	}

	return line, nil
}

// encodeBase64 encodes binary material for text output.
func encodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// decodeBase64 decodes base64 command arguments back to binary material.
func decodeBase64(name, value string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 in %s: %w", name, err)
	}
	return data, nil
}

// parseOutputFormat validates the format flag shared by credential commands.
func parseOutputFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}
