package scaffold

import "strconv"

// TypeKind is the closed set of field types the generator understands.
type TypeKind int

const (
	KindOther TypeKind = iota
	KindString
	KindNumber
	KindBoolean
)

// TypeMapping is what a field type token turns into across the generated project.
type TypeMapping struct {
	Kind         TypeKind
	TSType       string // TypeScript type
	MongooseType string // Mongoose schema type
	ZodType      string // zod base validator
}

// MapType maps a field type token. Unknown tokens fall back to the permissive mapping.
func MapType(token string) TypeMapping {
	switch token {
	case "string":
		return TypeMapping{Kind: KindString, TSType: "string", MongooseType: "String", ZodType: "z.string()"}
	case "number":
		return TypeMapping{Kind: KindNumber, TSType: "number", MongooseType: "Number", ZodType: "z.number()"}
	case "boolean":
		return TypeMapping{Kind: KindBoolean, TSType: "boolean", MongooseType: "Boolean", ZodType: "z.boolean()"}
	default:
		return TypeMapping{Kind: KindOther, TSType: "any", MongooseType: "Schema.Types.Mixed", ZodType: "z.any()"}
	}
}

// Known reports whether token maps to a concrete type rather than the fallback.
func Known(token string) bool {
	return MapType(token).Kind != KindOther
}

// Sample returns a representative JSON literal for a field of this type.
func (m TypeMapping) Sample(fieldName string) string {
	switch m.Kind {
	case KindString:
		return strconv.Quote("sample_" + fieldName)
	case KindNumber:
		return "123"
	case KindBoolean:
		return "true"
	default:
		return "null"
	}
}
