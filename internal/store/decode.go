package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func decodeJSON(b []byte, doc *document) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return errors.New("empty document")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("json decode: trailing data after document")
	}
	return nil
}

func decodeYAML(b []byte, doc *document) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return errors.New("empty document")
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("yaml decode: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("yaml decode: more than one document")
	}
	return nil
}
