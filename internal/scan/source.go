package scan

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the input path that reads the configuration from standard input.
const Stdin = "-"

// ReadSource loads the configuration text from path, or from stdin when
// path is "-".
func ReadSource(path string) (string, error) {
	if path == Stdin {
		return readAll(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return readAll(f, path)
}

func readAll(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// WriteScript saves the removal script to path with a trailing newline.
func WriteScript(path, script string) error {
	if err := os.WriteFile(path, []byte(ScriptFile(script)), 0644); err != nil {
		return fmt.Errorf("write script %s: %w", path, err)
	}
	return nil
}
