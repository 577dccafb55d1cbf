package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a questionnaire file.
func Load(path string) (Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Questionnaire{}, fmt.Errorf("read questionnaire: %w", err)
	}
	return Parse(data, isJSONPath(path))
}

// Parse parses and validates questionnaire data. YAML is assumed unless
// asJSON is set.
func Parse(data []byte, asJSON bool) (Questionnaire, error) {
	var (
		doc Questionnaire
		err error
	)
	if asJSON {
		doc, err = parseJSON(data)
	} else {
		doc, err = parseYAML(data)
	}
	if err != nil {
		return Questionnaire{}, err
	}
	if err := validateDocument(data, asJSON); err != nil {
		return Questionnaire{}, err
	}
	normalized, err := Normalize(doc)
	if err != nil {
		return Questionnaire{}, err
	}
	return normalized, nil
}

func isJSONPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}

func parseJSON(data []byte) (Questionnaire, error) {
	var doc Questionnaire
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return Questionnaire{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Questionnaire{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Questionnaire{}, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

func parseYAML(data []byte) (Questionnaire, error) {
	var doc Questionnaire
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return Questionnaire{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Questionnaire{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Questionnaire{}, fmt.Errorf("parse yaml: %w", err)
	}
	return doc, nil
}
