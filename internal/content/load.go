package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a page from YAML. Unknown keys are rejected so typos in a
// content file surface instead of silently dropping a field.
func Decode(r io.Reader) (*Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Page
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding content: empty document")
		}
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	return &p, nil
}

// LoadFile reads a YAML content file. The page is not validated.
func LoadFile(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Encode writes p as YAML. It is used to scaffold a content file from the
// built-in page.
func Encode(w io.Writer, p *Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}
	return enc.Close()
}
