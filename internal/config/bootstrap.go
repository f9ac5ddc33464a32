package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrTemplateMissing is returned when .env.example cannot be found.
	ErrTemplateMissing = errors.New(".env.example not found")
	// ErrAborted is returned when the user declines to overwrite .env.
	ErrAborted = errors.New("setup aborted")
)

// Bootstrap copies .env.example to .env inside dir. If .env already exists
// the user is prompted on in; any answer other than a literal "y" aborts
// without touching the file. On success .env is byte-identical to the
// template.
func Bootstrap(dir string, in io.Reader, out io.Writer) error {
	template := filepath.Join(dir, ".env.example")
	target := filepath.Join(dir, ".env")

	data, err := os.ReadFile(template)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrTemplateMissing
		}
		return fmt.Errorf("reading template: %w", err)
	}

	if _, err := os.Stat(target); err == nil {
		fmt.Fprint(out, ".env already exists. Overwrite? [y/N] ")
		reader := bufio.NewReader(in)
		line, _ := reader.ReadString('\n')
		if strings.TrimSpace(line) != "y" {
			return ErrAborted
		}
	}

	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("writing .env: %w", err)
	}

	fmt.Fprintln(out, "Created .env from .env.example.")
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Open .env and fill in your API keys.")
	fmt.Fprintln(out, "  2. Run 'careerlens verify' to check the configuration.")
	fmt.Fprintln(out, "  3. Restart any running careerlens services.")
	return nil
}
