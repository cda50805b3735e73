package scaffold

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CompiledRule is the zod fragment and sample override produced for one field.
type CompiledRule struct {
	Schema    string // full zod expression for the field
	Sample    string // JSON literal override; valid only when HasSample
	HasSample bool
	Applied   bool // false when a non-empty rule was ignored
}

var (
	numberRe     = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// generatedIDField is the key every entity, model and schema already declares.
const generatedIDField = "id"

type ruleKind struct {
	prefix  string
	applies TypeKind
	exact   bool
}

// Order matters: first match wins.
var ruleKinds = []ruleKind{
	{prefix: "email", applies: KindString, exact: true},
	{prefix: "minlength=", applies: KindString},
	{prefix: "maxlength=", applies: KindString},
	{prefix: "min=", applies: KindNumber},
	{prefix: "max=", applies: KindNumber},
	{prefix: "enum=", applies: KindString},
}

// CompileRule turns a field's type and optional rule into a zod expression and sample override.
// Unknown or inapplicable rules leave the bare type validator.
func CompileRule(fieldType, rule string) CompiledRule {
	m := MapType(fieldType)
	out := CompiledRule{Schema: m.ZodType, Applied: rule == ""}
	if rule == "" {
		return out
	}

	for _, k := range ruleKinds {
		matched := rule == k.prefix
		if !k.exact {
			matched = strings.HasPrefix(rule, k.prefix)
		}
		if !matched {
			continue
		}
		if m.Kind != k.applies {
			return out
		}
		arg := strings.TrimPrefix(rule, k.prefix)

		switch k.prefix {
		case "email":
			out.Schema = m.ZodType + ".email()"
			out.Sample, out.HasSample = strconv.Quote("test@example.com"), true
		case "minlength=", "min=":
			if !isNumber(arg) {
				return out
			}
			out.Schema = fmt.Sprintf("%s.min(%s)", m.ZodType, arg)
		case "maxlength=", "max=":
			if !isNumber(arg) {
				return out
			}
			out.Schema = fmt.Sprintf("%s.max(%s)", m.ZodType, arg)
		case "enum=":
			values := enumValues(arg)
			if len(values) == 0 {
				return out
			}
			quoted := make([]string, len(values))
			for i, v := range values {
				quoted[i] = strconv.Quote(v)
			}
			out.Schema = "z.enum([" + strings.Join(quoted, ",") + "])"
			out.Sample, out.HasSample = quoted[0], true
		}
		out.Applied = true
		return out
	}

	return out
}

// SampleValue returns the JSON literal used for field in generated tests and docs.
func SampleValue(field FieldDescriptor) string {
	if c := CompileRule(field.Type, field.Rule); c.HasSample {
		return c.Sample
	}
	return MapType(field.Type).Sample(field.Name)
}

// SampleJSON renders the single-line sample request body for fields.
func SampleJSON(fields []FieldDescriptor) string {
	pairs := make([]string, len(fields))
	for i, f := range fields {
		pairs[i] = strconv.Quote(f.Name) + ": " + SampleValue(f)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// SchemaFor renders the zod object schema for fields.
func SchemaFor(fields []FieldDescriptor) string {
	var b strings.Builder
	b.WriteString("z.object({")
	for _, f := range fields {
		fmt.Fprintf(&b, "\n  %s: %s,", f.Name, CompileRule(f.Type, f.Rule).Schema)
	}
	b.WriteString("\n})")
	return b.String()
}

// FieldWarnings reports the lenient fallbacks taken for a feature's fields.
func FieldWarnings(feature string, fields []FieldDescriptor) []string {
	var warnings []string
	for _, f := range fields {
		if !identifierRe.MatchString(f.Name) {
			warnings = append(warnings, fmt.Sprintf("%s.%s: field name is not a valid TypeScript identifier", feature, f.Name))
		}
		if f.Name == generatedIDField {
			warnings = append(warnings, fmt.Sprintf("%s.%s: field name collides with the generated id", feature, f.Name))
		}
		if !Known(f.Type) {
			warnings = append(warnings, fmt.Sprintf("%s.%s: unknown type %q, using any", feature, f.Name, f.Type))
		}
		if !CompileRule(f.Type, f.Rule).Applied {
			warnings = append(warnings, fmt.Sprintf("%s.%s: rule %q ignored for type %s", feature, f.Name, f.Rule, f.Type))
		}
	}
	return warnings
}

func enumValues(arg string) []string {
	var values []string
	for _, v := range strings.Split(arg, "|") {
		if v != "" {
			values = append(values, v)
		}
	}
	return values
}

func isNumber(s string) bool {
	return numberRe.MatchString(s)
}
