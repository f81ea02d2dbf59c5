/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package record

import (
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/schema"
)

func TestValueRepr(t *testing.T) {
	twenty := make([]any, 20)
	for i := range twenty {
		twenty[i] = int64(i + 1)
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "none"},
		{"int", int64(42), "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"string quoted", "abc", `"abc"`},
		{"short list", []any{int64(1), int64(2)}, "[1, 2]"},
		{"typed slice", []int{1, 2}, "[1, 2]"},
		{"nested list", []any{[]any{int64(1)}, "x"}, `[[1], "x"]`},
		{"map sorted keys", map[string]any{"b": int64(2), "a": int64(1)}, `{"a": 1, "b": 2}`},
		{"twenty ints truncated", twenty, "[1, 2, 3, 4, 5, 6, 7, 8, 9...]"},
		{"exactly thirty kept", strings.Repeat("a", 28), `"` + strings.Repeat("a", 28) + `"`},
		{"thirty one truncated", strings.Repeat("a", 29), `"` + strings.Repeat("a", 25) + `..."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueRepr(tt.value); got != tt.want {
				t.Errorf("ValueRepr(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValueRepr_TruncationShape(t *testing.T) {
	long := ValueRepr(strings.Repeat("x", 100))
	if len([]rune(long)) != 30 {
		t.Errorf("truncated repr has %d runes, want 30", len([]rune(long)))
	}
	if !strings.Contains(long, "...") {
		t.Errorf("truncated repr %q lacks ellipsis", long)
	}
	if !strings.HasSuffix(long, `"`) {
		t.Errorf("truncated repr %q lost the final character", long)
	}
}

func TestFieldError_Messages(t *testing.T) {
	phone := schema.MustRecordType("MsgPhone", schema.NewField("number", schema.String()))

	nested := NewReport()
	nested.Add("number", &BasicError{Expected: schema.String(), Value: int64(5)})

	tests := []struct {
		name    string
		finding FieldError
		kind    string
		want    string
	}{
		{
			name:    "basic",
			finding: &BasicError{Expected: schema.Int(), Value: "abc"},
			kind:    BasicErrorKind,
			want:    `value "abc" (string) does not match int64`,
		},
		{
			name: "basic with cause",
			finding: &BasicError{
				Expected: schema.PrimitiveType{},
				Value:    int64(5),
				Cause:    &errors.UnsupportedTypeError{Reason: "primitive has no runtime type"},
			},
			kind: BasicErrorKind,
			want: "value 5 (int64) does not match invalid: primitive has no runtime type",
		},
		{
			name:    "union summary",
			finding: &BasicError{Expected: schema.Union(schema.String(), schema.Int()), Value: true},
			kind:    BasicErrorKind,
			want:    "value true (bool) does not match string | int64",
		},
		{
			name:    "nil value",
			finding: &BasicError{Expected: schema.Int(), Value: nil},
			kind:    BasicErrorKind,
			want:    "value none (nil) does not match int64",
		},
		{
			name:    "record nested",
			finding: &RecordError{Record: phone, Value: map[string]any{"number": int64(5)}, Nested: nested},
			kind:    RecordErrorKind,
			want:    `value {"number": 5} (map[string]any) is not a valid MsgPhone`,
		},
		{
			name: "record construction cause",
			finding: &RecordError{
				Record: phone,
				Value:  map[string]any{"phnoe": "x"},
				Cause: &errors.ConstructionError{
					Record: "MsgPhone", Field: "phnoe", Reason: "unknown field",
				},
			},
			kind: RecordErrorKind,
			want: `value {"phnoe": "x"} (map[string]any) does not construct MsgPhone: field "phnoe": unknown field`,
		},
		{
			name:    "list item",
			finding: &ListItemError{Index: 2, Elem: schema.Int(), Value: "x"},
			kind:    ListItemErrorKind,
			want:    `element "x" (string) at index 2 does not match int64`,
		},
		{
			name:    "literal",
			finding: &LiteralError{Allowed: schema.Literal("JSON", "YAML"), Value: "CSV"},
			kind:    LiteralErrorKind,
			want:    `value "CSV" (string) is not one of literal("JSON", "YAML")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.finding.Kind(); got != tt.kind {
				t.Errorf("Kind() = %q, want %q", got, tt.kind)
			}
			if got := tt.finding.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFieldError_Redacted(t *testing.T) {
	findings := []FieldError{
		&BasicError{Expected: schema.Int(), Value: "secret"},
		&LiteralError{Allowed: schema.Literal("secret"), Value: "other-secret"},
		&ListItemError{Index: 0, Elem: schema.String(), Value: "secret"},
	}

	for _, finding := range findings {
		got := finding.Redacted()
		if strings.Contains(got, "secret") {
			t.Errorf("%T Redacted() = %q leaks the value", finding, got)
		}
		if !strings.Contains(got, "[MASKED]") {
			t.Errorf("%T Redacted() = %q has no mask", finding, got)
		}
	}
}

func TestReport_Add(t *testing.T) {
	rep := NewReport()
	if !rep.IsZero() {
		t.Error("new report is not zero")
	}

	// Adding nothing must not create an entry.
	rep.Add("age")
	if rep.Len() != 0 {
		t.Errorf("Len() = %d after empty Add, want 0", rep.Len())
	}
	if err := rep.Validate(); err != nil {
		t.Errorf("Validate() error = %v after empty Add", err)
	}

	rep.Add("age", &BasicError{Expected: schema.Int(), Value: "x"})
	rep.Add("name",
		&BasicError{Expected: schema.String(), Value: int64(1)},
		&BasicError{Expected: schema.Union(schema.String()), Value: int64(1)},
	)

	if rep.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rep.Len())
	}
	if got := rep.Fields(); len(got) != 2 || got[0] != "age" || got[1] != "name" {
		t.Errorf("Fields() = %v, want [age name] sorted", got)
	}
	if got := rep.ByField("name"); len(got) != 2 {
		t.Errorf("ByField(name) = %d findings, want 2", len(got))
	}
	if got := rep.ByField("absent"); got != nil {
		t.Errorf("ByField(absent) = %v, want nil", got)
	}

	// ByField returns a copy.
	findings := rep.ByField("age")
	findings[0] = &LiteralError{Allowed: schema.Literal(1), Value: 2}
	if _, ok := rep.ByField("age")[0].(*BasicError); !ok {
		t.Error("ByField aliased the report's storage")
	}
}

func TestReport_Err(t *testing.T) {
	var nilRep *Report
	if err := nilRep.Err(); err != nil {
		t.Errorf("nil report Err() = %v, want nil", err)
	}
	if err := NewReport().Err(); err != nil {
		t.Errorf("empty report Err() = %v, want nil", err)
	}

	rep := NewReport()
	rep.Add("age", &BasicError{Expected: schema.Int(), Value: "x"})
	rep.Add("name",
		&BasicError{Expected: schema.String(), Value: int64(1)},
		&BasicError{Expected: schema.Union(schema.String()), Value: int64(1)},
	)

	err := rep.Err()
	if err == nil {
		t.Fatal("Err() = nil for a report with findings")
	}
	if got := multierr.Errors(err); len(got) != 3 {
		t.Errorf("Err() carries %d errors, want 3", len(got))
	}
	if !strings.Contains(err.Error(), `age: value "x" (string) does not match int64`) {
		t.Errorf("Err() = %q misses the age finding", err.Error())
	}
}

func TestReport_Equal(t *testing.T) {
	build := func() *Report {
		rep := NewReport()
		rep.Add("age", &BasicError{Expected: schema.Int(), Value: "x"})
		return rep
	}

	tests := []struct {
		name string
		a    *Report
		b    *Report
		want bool
	}{
		{"both empty", NewReport(), NewReport(), true},
		{"nil and empty", nil, NewReport(), true},
		{"same findings", build(), build(), true},
		{"empty vs findings", NewReport(), build(), false},
		{
			name: "different values",
			a:    build(),
			b: func() *Report {
				rep := NewReport()
				rep.Add("age", &BasicError{Expected: schema.Int(), Value: "y"})
				return rep
			}(),
			want: false,
		},
		{
			name: "different fields",
			a:    build(),
			b: func() *Report {
				rep := NewReport()
				rep.Add("name", &BasicError{Expected: schema.Int(), Value: "x"})
				return rep
			}(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReport_String(t *testing.T) {
	rep := NewReport()
	rep.Add("age", &BasicError{Expected: schema.Int(), Value: "x"})

	want := `Report(age=[value "x" (string) does not match int64])`
	if got := rep.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := NewReport().String(); got != "Report()" {
		t.Errorf("empty String() = %q, want Report()", got)
	}

	if got := rep.Redacted(); strings.Contains(got, `"x"`) {
		t.Errorf("Redacted() = %q leaks the value", got)
	}
}

func TestReport_Validate(t *testing.T) {
	rep := NewReport()
	rep.Add("age", &BasicError{Expected: schema.Int(), Value: "x"})
	if err := rep.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	// A hand-built empty entry violates the structural invariant.
	broken := &Report{fields: map[string][]FieldError{"age": {}}}
	if err := broken.Validate(); err == nil {
		t.Error("Validate() = nil for a report with an empty entry")
	}
}

func TestReport_MarshalJSON(t *testing.T) {
	phone := schema.MustRecordType("DocPhone", schema.NewField("number", schema.String()))

	nested := NewReport()
	nested.Add("number", &BasicError{Expected: schema.String(), Value: int64(5)})

	rep := NewReport()
	rep.Add("items",
		&BasicError{Expected: schema.Int(), Value: "x"},
		&ListItemError{Index: 0, Elem: schema.Int(), Value: "x"},
	)
	rep.Add("phone", &RecordError{Record: phone, Value: map[string]any{"number": int64(5)}, Nested: nested})
	rep.Add("mode", &LiteralError{Allowed: schema.Literal("a", "b"), Value: "c"})

	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var doc map[string][]struct {
		Kind      string          `json:"kind"`
		Message   string          `json:"message"`
		Expected  string          `json:"expected"`
		Value     string          `json:"value"`
		ValueType string          `json:"value_type"`
		Record    string          `json:"record"`
		Index     *int            `json:"index"`
		Nested    json.RawMessage `json:"nested"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	items := doc["items"]
	if len(items) != 2 {
		t.Fatalf("items carries %d findings, want 2", len(items))
	}
	if items[0].Kind != "basic" || items[1].Kind != "list_item" {
		t.Errorf("items kinds = %q, %q, want basic, list_item", items[0].Kind, items[1].Kind)
	}
	if items[0].ValueType != "string" {
		t.Errorf("basic finding value_type = %q, want string", items[0].ValueType)
	}
	if items[1].Index == nil || *items[1].Index != 0 {
		t.Error("list_item finding lost its zero index")
	}

	phoneFindings := doc["phone"]
	if len(phoneFindings) != 1 || phoneFindings[0].Kind != "record" {
		t.Fatalf("phone findings = %+v, want one record finding", phoneFindings)
	}
	if phoneFindings[0].Record != "DocPhone" {
		t.Errorf("record finding names %q, want DocPhone", phoneFindings[0].Record)
	}
	if len(phoneFindings[0].Nested) == 0 {
		t.Error("record finding lost its nested report")
	}

	if doc["mode"][0].Kind != "literal" {
		t.Errorf("mode kind = %q, want literal", doc["mode"][0].Kind)
	}
}
