// Package schemas validates company documents against the JSON Schemas
// shipped under schemas/ before they are written to the database.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// CompanySchemaPath is the repo-relative path of the company document schema.
const CompanySchemaPath = "schemas/company.schema.json"

// ResolveSchemaPath finds a schema file by probing the path relative to the
// working directory and then one and two levels up, since the CLI and its
// tests run from different directories. Returns empty when nothing exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError reports the fields of a document that failed validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at one field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself.
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

// Validator validates JSON documents against one loaded schema.
type Validator struct {
	schema *gojsonschema.Schema
	path   string
}

// NewValidator compiles the schema at the given path.
func NewValidator(schemaPath string) (*Validator, error) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file not found: %s", absPath)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + absPath))
	if err != nil {
		return nil, &SchemaLoadError{Path: absPath, Message: "schema failed to compile", Cause: err}
	}
	return &Validator{schema: schema, path: absPath}, nil
}

// NewCompanyValidator compiles the company document schema, resolving its
// location relative to the working directory.
func NewCompanyValidator() (*Validator, error) {
	path := ResolveSchemaPath(CompanySchemaPath)
	if path == "" {
		return nil, fmt.Errorf("schema file not found: %s", CompanySchemaPath)
	}
	return NewValidator(path)
}

// ValidateBytes validates raw JSON content against the schema.
func (v *Validator) ValidateBytes(document []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{Path: v.path, Message: "document failed to load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
