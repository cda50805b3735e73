package scaffold

import (
	"errors"
	"testing"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"single string", "name:string", 1, false},
		{"multiple fields", "name:string,price:number,active:boolean", 3, false},
		{"with rules", "name:string:minlength=3,email:string:email", 2, false},
		{"unknown type is accepted", "meta:object", 1, false},
		{"no colon", "name", 0, true},
		{"too many colons", "a:b:c:d", 0, true},
		{"empty type", "name:", 0, true},
		{"empty name", ":string", 0, true},
		{"empty rule", "name:string:", 0, true},
		{"trailing comma", "name:string,", 0, true},
		{"one bad entry fails all", "name:string,broken,price:number", 0, true},
		{"duplicate field", "name:string,name:number", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseFields(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFields() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if len(fields) != tt.want {
				t.Errorf("ParseFields() got %d fields, want %d", len(fields), tt.want)
			}
		})
	}
}

func TestParseFieldsErrorKinds(t *testing.T) {
	_, err := ParseFields("name")
	if !errors.Is(err, ErrInvalidFieldSpec) {
		t.Errorf("ParseFields(%q) error = %v, want ErrInvalidFieldSpec", "name", err)
	}

	_, err = ParseFields("a:b:c:d")
	if !errors.Is(err, ErrInvalidFieldSpec) {
		t.Errorf("ParseFields(%q) error = %v, want ErrInvalidFieldSpec", "a:b:c:d", err)
	}

	_, err = ParseFields("x:string,x:string")
	if !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate field error = %v, want ErrDuplicateField", err)
	}
}

func TestParseFieldsKeepsWhitespace(t *testing.T) {
	fields, err := ParseFields("name:string, price:number")
	if err != nil {
		t.Fatalf("ParseFields() error = %v", err)
	}

	if fields[1].Name != " price" {
		t.Errorf("fields[1].Name = %q, want %q", fields[1].Name, " price")
	}
	if Known(" string") {
		t.Error("padded type token should not map to a known type")
	}

	padded, err := ParseFields("name: string")
	if err != nil {
		t.Fatalf("ParseFields() error = %v", err)
	}
	if padded[0].Type != " string" {
		t.Errorf("Type = %q, want %q", padded[0].Type, " string")
	}
}

func TestParseFieldParts(t *testing.T) {
	fields, err := ParseFields("title:string,price:number:min=0,status:string:enum=open|closed")
	if err != nil {
		t.Fatalf("ParseFields() error = %v", err)
	}

	expected := []FieldDescriptor{
		{Name: "title", Type: "string"},
		{Name: "price", Type: "number", Rule: "min=0"},
		{Name: "status", Type: "string", Rule: "enum=open|closed"},
	}

	for i, exp := range expected {
		if fields[i] != exp {
			t.Errorf("fields[%d] = %+v, want %+v", i, fields[i], exp)
		}
	}
}

func TestFieldSpecRoundTrip(t *testing.T) {
	specs := []string{
		"name:string",
		"name:string:minlength=3,email:string:email",
		"amount:number:min=0,method:string:enum=credit|debit,paid:boolean",
		"z:number,a:string,m:boolean:whatever",
		"meta:object:max=4",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			fields, err := ParseFields(spec)
			if err != nil {
				t.Fatalf("ParseFields(%q) error = %v", spec, err)
			}
			if got := FormatFields(fields); got != spec {
				t.Errorf("FormatFields(ParseFields(%q)) = %q", spec, got)
			}
		})
	}
}

func TestValidateFeatureName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"products", false},
		{"orderItem", false},
		{"v2", false},
		{"a", false},
		{"", true},
		{"Products", true},
		{"order-items", true},
		{"order_items", true},
		{"../escape", true},
		{"2fast", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateFeatureName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFeatureName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("ValidateFeatureName(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	for _, ok := range []string{"FoodStore", "my-express-api", "api.v2", "x"} {
		if err := ValidateProjectName(ok); err != nil {
			t.Errorf("ValidateProjectName(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "a/b", "..", ".hidden", "has space"} {
		if err := ValidateProjectName(bad); err == nil {
			t.Errorf("ValidateProjectName(%q) expected error", bad)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"product", "Product"},
		{"orderItem", "OrderItem"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildFeatureSpec(t *testing.T) {
	spec, err := BuildFeatureSpec("payment", "amount:number:min=0,method:string:enum=credit|debit")
	if err != nil {
		t.Fatalf("BuildFeatureSpec() error = %v", err)
	}
	if spec.Name != "payment" || len(spec.Fields) != 2 {
		t.Errorf("BuildFeatureSpec() = %+v", spec)
	}

	if _, err := BuildFeatureSpec("Payment", ""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("BuildFeatureSpec(bad name) error = %v, want ErrInvalidName", err)
	}
	if _, err := BuildFeatureSpec("payment", "amount"); !errors.Is(err, ErrInvalidFieldSpec) {
		t.Errorf("BuildFeatureSpec(bad fields) error = %v, want ErrInvalidFieldSpec", err)
	}
}

func TestEffectiveFields(t *testing.T) {
	f := FeatureSpec{Name: "users"}
	got := f.EffectiveFields()
	if FormatFields(got) != DefaultFieldSpec {
		t.Errorf("EffectiveFields() = %q, want %q", FormatFields(got), DefaultFieldSpec)
	}

	f.Fields = []FieldDescriptor{{Name: "title", Type: "string"}}
	if len(f.EffectiveFields()) != 1 {
		t.Errorf("EffectiveFields() should keep explicit fields")
	}
}
