package resolver

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ErrDocumentNotFound reports a missing configuration document. Callers
// match it with errors.Is to print a fix-it message.
var ErrDocumentNotFound = errors.New("configuration document not found")

// LoadDocument reads and parses the configuration document at path. The
// document is read exactly once, before any resolution starts.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read configuration document %s: %w", path, err)
	}
	return ParseDocument(data)
}

// ParseDocument parses configuration document bytes. An empty document is
// valid and resolves everything from defaults.
func ParseDocument(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, nil
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse configuration document: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}
