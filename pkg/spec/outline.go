package spec

import (
	"encoding/json"
	"io"
	"os"

	"github.com/deckforge/deckforge/pkg/errors"
)

// MarshalOutline serializes an outline to indented JSON. The encoding is
// stable so outline hashes are usable as cache keys.
func MarshalOutline(o Outline) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// UnmarshalOutline parses an outline from JSON and normalizes it.
func UnmarshalOutline(data []byte) (Outline, error) {
	var o Outline
	if err := json.Unmarshal(data, &o); err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeInvalidOutline, err, "parse outline JSON")
	}
	o = o.Normalized()
	if len(o.Slides) == 0 {
		return Outline{}, errors.New(errors.ErrCodeInvalidOutline, "outline has no slides")
	}
	return o, nil
}

// ReadOutline reads an outline from r.
func ReadOutline(r io.Reader) (Outline, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeInvalidOutline, err, "read outline")
	}
	return UnmarshalOutline(data)
}

// LoadOutline reads an outline from a JSON file.
func LoadOutline(path string) (Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return Outline{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open outline %s", path)
	}
	defer f.Close()
	return ReadOutline(f)
}

// SaveOutline writes an outline to a JSON file.
func SaveOutline(path string, o Outline) error {
	data, err := MarshalOutline(o)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write outline %s", path)
	}
	return nil
}
