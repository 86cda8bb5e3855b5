package buffer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const filePermissions = 0o644

// ReadLines reads r into lines split on '\n'. A single trailing newline
// terminates the last line rather than starting a new one, so WriteLines
// followed by ReadLines is the identity.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// WriteLines writes every line followed by '\n'.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing lines: %w", err)
	}
	return nil
}

// LoadFile reads path into lines. A missing file yields a single empty line.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the file the user asked to edit
	if err != nil {
		if os.IsNotExist(err) {
			return []string{""}, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadLines(f)
}

// SaveFile truncates path and writes lines to it.
func SaveFile(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePermissions) //nolint:gosec // G304: path is the file the user asked to edit
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteLines(f, lines); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// FileStore saves lines to a fixed path.
type FileStore struct {
	Path string
}

func (s FileStore) LoadLines() ([]string, error) { return LoadFile(s.Path) }

func (s FileStore) SaveLines(lines []string) error { return SaveFile(s.Path, lines) }
