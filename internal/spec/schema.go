package spec

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const profileSchemaURL = "profile.schema.json"

//go:embed profile.schema.json
var profileSchema string

var compileProfileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(profileSchemaURL, strings.NewReader(profileSchema)); err != nil {
		return nil, fmt.Errorf("add profile schema: %w", err)
	}
	schema, err := compiler.Compile(profileSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}
	return schema, nil
})

// SchemaViolation is one failed schema constraint, located by field.
type SchemaViolation struct {
	Field   string
	Message string
}

// ValidateSchema checks raw profile YAML against the embedded JSON schema.
// It returns the violations found; the error is reserved for YAML that
// cannot be decoded or a schema that cannot be compiled.
func ValidateSchema(data []byte) ([]SchemaViolation, error) {
	schema, err := compileProfileSchema()
	if err != nil {
		return nil, err
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert config to JSON: %w", err)
	}
	var instance any
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	if err := decoder.Decode(&instance); err != nil {
		return nil, fmt.Errorf("convert config to JSON: %w", err)
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil, nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("validate config schema: %w", err)
	}
	violations := collectViolations(validationErr, nil)
	sort.SliceStable(violations, func(i, j int) bool { return violations[i].Field < violations[j].Field })
	return violations, nil
}

// collectViolations flattens the leaf causes of a schema error.
func collectViolations(err *jsonschema.ValidationError, out []SchemaViolation) []SchemaViolation {
	if len(err.Causes) == 0 {
		return append(out, SchemaViolation{Field: pointerToField(err.InstanceLocation), Message: err.Message})
	}
	for _, cause := range err.Causes {
		out = collectViolations(cause, out)
	}
	return out
}

// pointerToField turns a JSON pointer such as /key_path/0 into key_path[0].
func pointerToField(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return "(root)"
	}
	var builder strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(part); err == nil && i > 0 {
			builder.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			builder.WriteString(".")
		}
		builder.WriteString(part)
	}
	return builder.String()
}
