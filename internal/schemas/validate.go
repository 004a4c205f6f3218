// Package schemas provides JSON Schema validation for caller-supplied
// document field data. Validation is advisory: the engine's checks are
// tolerant of malformed fields, so schema failures become warnings, not
// rejections.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/mlaurier/doccheck/internal/types"
)

// schemaFiles maps document types to their schema file names under the
// repository's schemas/ directory.
var schemaFiles = map[types.DocumentType]string{
	types.DocumentWill:            "will.json",
	types.DocumentPOAProperty:     "poa_property.json",
	types.DocumentPOAPersonalCare: "poa_personal_care.json",
}

// FieldError is a single validation error at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates field errors from one validation pass.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("field data validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a problem with the schema itself rather than the
// document being validated.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ResolveSchemaDir locates the schemas/ directory by trying the working
// directory and likely repo-root locations. Useful because CLI commands and
// tests run from different directories. Returns "" if not found.
func ResolveSchemaDir() string {
	candidates := []string{
		"schemas",
		filepath.Join("..", "schemas"),
		filepath.Join("..", "..", "schemas"),
	}
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		// Require a known schema file so a directory that merely shares the
		// name does not match.
		if _, err := os.Stat(filepath.Join(abs, schemaFiles[types.DocumentWill])); err == nil {
			return abs
		}
	}
	return ""
}

// ValidateFields validates raw field JSON for a document type against its
// schema under schemaDir. Returns nil when valid, a *ValidationError when
// the document fails, or a *SchemaLoadError when the schema is unusable.
func ValidateFields(schemaDir string, dt types.DocumentType, fieldsJSON []byte) error {
	name, ok := schemaFiles[dt]
	if !ok {
		return &SchemaLoadError{Path: string(dt), Message: "no schema registered for document type"}
	}
	schemaPath := filepath.Join(schemaDir, name)
	if _, err := os.Stat(schemaPath); err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "schema file not found", Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(fieldsJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

// Warnings flattens a validation error into advisory strings. Returns nil
// for nil input or non-validation errors.
func Warnings(err error) []string {
	ve, ok := err.(*ValidationError)
	if !ok || ve == nil {
		return nil
	}
	warnings := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		warnings = append(warnings, fmt.Sprintf("field %s: %s", fe.Field, fe.Message))
	}
	return warnings
}
