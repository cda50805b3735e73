package scaffold

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-openapi/inflect"
)

var (
	fieldEntryRe  = regexp.MustCompile(`^[^:]+:[^:]+(:[^:]+)?$`)
	featureNameRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	projectNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// ParseFields parses the --fields DSL into an ordered slice of FieldDescriptor.
// Format: "name:string:minlength=3,price:number:min=0,active:boolean"
//
// Entries are not trimmed. One malformed entry fails the whole parse.
func ParseFields(spec string) ([]FieldDescriptor, error) {
	if spec == "" {
		return nil, nil
	}

	entries := strings.Split(spec, ",")
	fields := make([]FieldDescriptor, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		field, err := parseField(entry)
		if err != nil {
			return nil, err
		}
		if seen[field.Name] {
			return nil, fmt.Errorf("%w %q in %q", ErrDuplicateField, field.Name, spec)
		}
		seen[field.Name] = true
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses a single "name:type" or "name:type:rule" entry.
func parseField(entry string) (FieldDescriptor, error) {
	if !fieldEntryRe.MatchString(entry) {
		return FieldDescriptor{}, fmt.Errorf("%w %q: expected 'name:type' or 'name:type:rule'", ErrInvalidFieldSpec, entry)
	}

	parts := strings.Split(entry, ":")
	field := FieldDescriptor{Name: parts[0], Type: parts[1]}
	if len(parts) == 3 {
		field.Rule = parts[2]
	}
	return field, nil
}

// FormatFields serializes fields back into the --fields DSL.
func FormatFields(fields []FieldDescriptor) string {
	entries := make([]string, len(fields))
	for i, f := range fields {
		entries[i] = f.String()
	}
	return strings.Join(entries, ",")
}

// BuildFeatureSpec validates a feature name and parses its field spec.
func BuildFeatureSpec(name, fieldsSpec string) (FeatureSpec, error) {
	if err := ValidateFeatureName(name); err != nil {
		return FeatureSpec{}, err
	}

	fields, err := ParseFields(fieldsSpec)
	if err != nil {
		return FeatureSpec{}, fmt.Errorf("feature %s: %w", name, err)
	}

	return FeatureSpec{Name: name, Fields: fields}, nil
}

// ValidateFeatureName checks that name is usable both as a directory and as an identifier stem.
func ValidateFeatureName(name string) error {
	if !featureNameRe.MatchString(name) {
		return fmt.Errorf("%w: feature %q must start with a lower-case letter and contain only letters and digits", ErrInvalidName, name)
	}
	return nil
}

// ValidateProjectName checks that name is a single safe path segment.
func ValidateProjectName(name string) error {
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("%w: project %q may only contain letters, digits, '.', '_' and '-'", ErrInvalidName, name)
	}
	return nil
}

// Capitalize returns the class-name stem for a feature: "product" -> "Product".
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return inflect.Capitalize(s)
}
