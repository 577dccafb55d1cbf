package question

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed questions.schema.json
var schemaSource string

const schemaURL = "questions.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
})

// Schema returns the JSON Schema questionnaires are validated against.
func Schema() string {
	return schemaSource
}

// validateDocument checks raw questionnaire data against the embedded schema.
// Schema violations are reported as a *ValidationError.
func validateDocument(data []byte, asJSON bool) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	doc, err := genericDocument(data, asJSON)
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		var schemaErr *jsonschema.ValidationError
		if !errors.As(err, &schemaErr) {
			return fmt.Errorf("validate schema: %w", err)
		}
		collector := &issueCollector{}
		for _, detail := range schemaErr.BasicOutput().Errors {
			if detail.Error == "" || strings.HasPrefix(detail.Error, "doesn't validate with") {
				continue
			}
			collector.add(instanceField(detail.InstanceLocation), detail.Error)
		}
		if len(collector.issues) == 0 {
			collector.add("$", schemaErr.Error())
		}
		return collector.result()
	}
	return nil
}

// genericDocument converts data into plain JSON values for validation.
func genericDocument(data []byte, asJSON bool) (any, error) {
	raw := data
	if !asJSON {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		encoded, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		raw = encoded
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc, nil
}

// instanceField turns a JSON pointer such as /questions/0/type into
// questions[0].type.
func instanceField(pointer string) string {
	parts := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	var builder strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if isIndex(part) {
			builder.WriteString("[" + part + "]")
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte('.')
		}
		builder.WriteString(part)
	}
	if builder.Len() == 0 {
		return "$"
	}
	return builder.String()
}

func isIndex(part string) bool {
	for _, r := range part {
		if r < '0' || r > '9' {
			return false
		}
	}
	return part != ""
}
