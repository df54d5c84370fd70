// Package schemas checks engine output documents against the embedded JSON
// Schemas. Compiled schemas are cached and safe for concurrent use.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/wellness-engine/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Kind names a document type with an embedded schema.
type Kind string

const (
	KindPrediction Kind = "prediction"
	KindNutrition  Kind = "nutrition"
)

var schemaFiles = map[Kind]string{
	KindPrediction: schemafiles.Prediction,
	KindNutrition:  schemafiles.Nutrition,
}

// Kinds returns the supported document kinds.
func Kinds() []Kind {
	return []Kind{KindPrediction, KindNutrition}
}

// ParseKind maps a name such as "nutrition" to its Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := schemaFiles[k]; !ok {
		return "", fmt.Errorf("unknown document kind %q (want prediction or nutrition)", name)
	}
	return k, nil
}

// Violation is one schema violation at a document path.
type Violation struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Kind       Kind
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("%s document has %d schema violation(s): %s",
		e.Kind, len(e.Violations), strings.Join(parts, "; "))
}

// SchemaLoadError reports an embedded schema that is missing or does not compile.
type SchemaLoadError struct {
	Kind  Kind
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load %s schema: %v", e.Kind, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compiledMu sync.Mutex
	compiled   = map[Kind]*gojsonschema.Schema{}
)

func schemaFor(kind Kind) (*gojsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if s, ok := compiled[kind]; ok {
		return s, nil
	}
	file, ok := schemaFiles[kind]
	if !ok {
		return nil, &SchemaLoadError{Kind: kind, Cause: fmt.Errorf("no schema registered")}
	}
	data, err := schemafiles.FS.ReadFile(file)
	if err != nil {
		return nil, &SchemaLoadError{Kind: kind, Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, &SchemaLoadError{Kind: kind, Cause: err}
	}
	compiled[kind] = s
	return s, nil
}

// Validate marshals doc to JSON and checks it against the schema for kind.
func Validate(kind Kind, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", kind, err)
	}
	return ValidateBytes(kind, data)
}

// ValidateBytes checks a raw JSON document.
func ValidateBytes(kind Kind, data []byte) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to read %s document: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Kind: kind}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Violations = append(verr.Violations, Violation{Field: field, Message: desc.Description()})
	}
	return verr
}

// ValidateFile checks the JSON file at path.
func ValidateFile(kind Kind, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ValidateBytes(kind, data)
}

// ValidatePrediction checks a health prediction.
func ValidatePrediction(doc any) error {
	return Validate(KindPrediction, doc)
}

// ValidateNutrition checks a nutrition recommendations bundle.
func ValidateNutrition(doc any) error {
	return Validate(KindNutrition, doc)
}
