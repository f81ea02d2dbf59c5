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

package schema

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"KindInvalid", KindInvalid, "invalid"},
		{"KindPrimitive", KindPrimitive, "primitive"},
		{"KindRecord", KindRecord, "record"},
		{"KindUnion", KindUnion, "union"},
		{"KindOptional", KindOptional, "optional"},
		{"KindList", KindList, "list"},
		{"KindLiteral", KindLiteral, "literal"},
		{"KindAny", KindAny, "any"},
		{"Unknown", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		// Valid inputs
		{"primitive lowercase", "primitive", KindPrimitive, false},
		{"primitive title", "Primitive", KindPrimitive, false},
		{"primitive uppercase", "PRIMITIVE", KindPrimitive, false},
		{"record lowercase", "record", KindRecord, false},
		{"record title", "Record", KindRecord, false},
		{"union lowercase", "union", KindUnion, false},
		{"union uppercase", "UNION", KindUnion, false},
		{"optional lowercase", "optional", KindOptional, false},
		{"list lowercase", "list", KindList, false},
		{"literal lowercase", "literal", KindLiteral, false},
		{"any lowercase", "any", KindAny, false},
		{"any title", "Any", KindAny, false},

		// Invalid inputs
		{"empty", "", KindInvalid, true},
		{"invalid is not parseable", "invalid", KindInvalid, true},
		{"unknown word", "tuple", KindInvalid, true},
		{"number", "1", KindInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseKind() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_Valid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"KindInvalid is not valid", KindInvalid, false},
		{"KindPrimitive", KindPrimitive, true},
		{"KindRecord", KindRecord, true},
		{"KindUnion", KindUnion, true},
		{"KindOptional", KindOptional, true},
		{"KindList", KindList, true},
		{"KindLiteral", KindLiteral, true},
		{"KindAny", KindAny, true},
		{"Invalid negative", Kind(-1), false},
		{"Invalid positive", Kind(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Valid(); got != tt.want {
				t.Errorf("Kind.Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_TypeName(t *testing.T) {
	var k Kind
	if got := k.TypeName(); got != "Kind" {
		t.Errorf("TypeName() = %v, want Kind", got)
	}
}

func TestKind_Redacted(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"KindPrimitive", KindPrimitive, "primitive"},
		{"KindUnion", KindUnion, "union"},
		{"KindAny", KindAny, "any"},
		{"Unknown", Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Redacted(); got != tt.want {
				t.Errorf("Redacted() = %v, want %v", got, tt.want)
			}
			// Redacted should match String for Kind
			if got := tt.kind.Redacted(); got != tt.kind.String() {
				t.Errorf("Redacted() = %v, String() = %v (should match)", got, tt.kind.String())
			}
		})
	}
}

func TestKind_IsZero(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"KindInvalid (zero value)", KindInvalid, true},
		{"KindPrimitive", KindPrimitive, false},
		{"KindRecord", KindRecord, false},
		{"KindAny", KindAny, false},
		{"Out of range", Kind(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_Equal(t *testing.T) {
	tests := []struct {
		name string
		k1   Kind
		k2   any
		want bool
	}{
		{"equal KindPrimitive", KindPrimitive, KindPrimitive, true},
		{"equal KindUnion", KindUnion, KindUnion, true},
		{"equal KindAny", KindAny, KindAny, true},
		{"different values", KindPrimitive, KindUnion, false},
		{"pointer equal", KindList, func() *Kind { k := KindList; return &k }(), true},
		{"pointer different", KindList, func() *Kind { k := KindLiteral; return &k }(), false},
		{"nil pointer", KindList, (*Kind)(nil), false},
		{"different type", KindUnion, "union", false},
		{"different type int", KindUnion, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k1.Equal(tt.k2); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_Validate(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		wantErr bool
	}{
		{"KindInvalid fails", KindInvalid, true},
		{"KindPrimitive valid", KindPrimitive, false},
		{"KindRecord valid", KindRecord, false},
		{"KindUnion valid", KindUnion, false},
		{"KindOptional valid", KindOptional, false},
		{"KindList valid", KindList, false},
		{"KindLiteral valid", KindLiteral, false},
		{"KindAny valid", KindAny, false},
		{"Invalid negative", Kind(-1), true},
		{"Invalid positive", Kind(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kind.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKind_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		want    string
		wantErr bool
	}{
		{"KindPrimitive", KindPrimitive, `"primitive"`, false},
		{"KindRecord", KindRecord, `"record"`, false},
		{"KindUnion", KindUnion, `"union"`, false},
		{"KindOptional", KindOptional, `"optional"`, false},
		{"KindList", KindList, `"list"`, false},
		{"KindLiteral", KindLiteral, `"literal"`, false},
		{"KindAny", KindAny, `"any"`, false},
		{"KindInvalid", KindInvalid, "", true},
		{"Out of range", Kind(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.kind)
			if (err != nil) != tt.wantErr {
				t.Errorf("Kind.MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Kind.MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestKind_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		// String format
		{"primitive string", `"primitive"`, KindPrimitive, false},
		{"record string", `"record"`, KindRecord, false},
		{"union string", `"union"`, KindUnion, false},
		{"optional string", `"optional"`, KindOptional, false},
		{"list string", `"list"`, KindList, false},
		{"literal string", `"literal"`, KindLiteral, false},
		{"any string", `"any"`, KindAny, false},

		// Numeric format
		{"primitive numeric", `1`, KindPrimitive, false},
		{"record numeric", `2`, KindRecord, false},
		{"any numeric", `7`, KindAny, false},

		// Invalid inputs
		{"empty string", `""`, KindInvalid, true},
		{"invalid string", `"invalid"`, KindInvalid, true},
		{"unknown string", `"tuple"`, KindInvalid, true},
		{"zero numeric", `0`, KindInvalid, true},
		{"invalid number", `99`, KindInvalid, true},
		{"empty data", ``, KindInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Kind
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Kind.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Kind.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_MarshalText(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		want    string
		wantErr bool
	}{
		{"KindPrimitive", KindPrimitive, "primitive", false},
		{"KindUnion", KindUnion, "union", false},
		{"KindAny", KindAny, "any", false},
		{"KindInvalid", KindInvalid, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.kind.MarshalText()
			if (err != nil) != tt.wantErr {
				t.Errorf("Kind.MarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Kind.MarshalText() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{"primitive", "primitive", KindPrimitive, false},
		{"record", "record", KindRecord, false},
		{"union", "union", KindUnion, false},
		{"any", "any", KindAny, false},
		{"invalid", "invalid", KindInvalid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Kind
			err := got.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Kind.UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Kind.UnmarshalText() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind_YAML(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"KindPrimitive", KindPrimitive, "primitive\n"},
		{"KindRecord", KindRecord, "record\n"},
		{"KindUnion", KindUnion, "union\n"},
		{"KindOptional", KindOptional, "optional\n"},
		{"KindList", KindList, "list\n"},
		{"KindLiteral", KindLiteral, "literal\n"},
		{"KindAny", KindAny, "any\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Marshal
			got, err := yaml.Marshal(tt.kind)
			if err != nil {
				t.Errorf("yaml.Marshal() error = %v", err)
				return
			}
			if string(got) != tt.want {
				t.Errorf("yaml.Marshal() = %v, want %v", string(got), tt.want)
			}

			// Unmarshal
			var kind Kind
			if err := yaml.Unmarshal(got, &kind); err != nil {
				t.Errorf("yaml.Unmarshal() error = %v", err)
				return
			}
			if kind != tt.kind {
				t.Errorf("yaml.Unmarshal() = %v, want %v", kind, tt.kind)
			}
		})
	}
}

func TestKind_RoundTrip(t *testing.T) {
	tests := []Kind{
		KindPrimitive, KindRecord, KindUnion, KindOptional,
		KindList, KindLiteral, KindAny,
	}

	for _, original := range tests {
		t.Run(original.String(), func(t *testing.T) {
			// JSON round-trip
			jsonData, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("JSON Marshal error: %v", err)
			}
			var jsonResult Kind
			if err := json.Unmarshal(jsonData, &jsonResult); err != nil {
				t.Fatalf("JSON Unmarshal error: %v", err)
			}
			if jsonResult != original {
				t.Errorf("JSON round-trip: got %v, want %v", jsonResult, original)
			}

			// YAML round-trip
			yamlData, err := yaml.Marshal(original)
			if err != nil {
				t.Fatalf("YAML Marshal error: %v", err)
			}
			var yamlResult Kind
			if err := yaml.Unmarshal(yamlData, &yamlResult); err != nil {
				t.Fatalf("YAML Unmarshal error: %v", err)
			}
			if yamlResult != original {
				t.Errorf("YAML round-trip: got %v, want %v", yamlResult, original)
			}
		})
	}
}

func TestKind_MarshalYAML_Invalid(t *testing.T) {
	// KindInvalid should fail to marshal as YAML
	_, err := yaml.Marshal(KindInvalid)
	if err == nil {
		t.Error("Expected error marshaling KindInvalid as YAML, got nil")
	}
}
