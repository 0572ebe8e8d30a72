package czml

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Encode serializes the packet list as a CZML (JSON array) stream.
func Encode(w io.Writer, packets []Packet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(packets); err != nil {
		return fmt.Errorf("encode czml: %w", err)
	}
	return nil
}

// WriteFile serializes the packet list to path, creating parent
// directories as needed.
func WriteFile(path string, packets []Packet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create czml file: %w", err)
	}
	if err := Encode(f, packets); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close czml file: %w", err)
	}
	return nil
}
