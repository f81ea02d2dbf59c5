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

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind identifies which variant of the Type sum a type expression is.
//
// Every type expression has exactly one Kind, and the matcher engine selects
// its strategy with a single exhaustive switch over this set. There is no
// string inspection anywhere in classification: an expression IS its variant,
// and Kind is the tag that names it.
//
// The zero value is KindInvalid, and it is NOT valid: a type expression
// with no kind is a schema defect, and letting it marshal or compare as a
// real kind would hide exactly the class of bug this engine exists to
// surface. Validate, MarshalJSON and MarshalYAML all reject it.
//
// JSON and YAML serialization uses the lowercase string names ("primitive",
// "union", etc.) rather than numeric values for human readability and forward
// compatibility.
type Kind int

const (
	// KindInvalid is the zero value and represents the absence of a
	// classification. It is not a valid Kind: it cannot be marshaled and
	// fails Validate. Classify returns it alongside an
	// *errors.UnsupportedTypeError when an expression cannot be
	// interpreted.
	KindInvalid Kind = iota

	// KindPrimitive classifies a PrimitiveType: a direct runtime type
	// check against one concrete Go type, or the null primitive.
	KindPrimitive

	// KindRecord classifies a *RecordType used as a type expression. A
	// field declared with a record type accepts an instance of exactly
	// that record type or a mapping that constructs one.
	KindRecord

	// KindUnion classifies a UnionType: an ordered sequence of
	// alternatives tried first to last, first match wins.
	KindUnion

	// KindOptional classifies an OptionalType: sugar for a union of the
	// inner expression and the null primitive, reported distinctly for
	// readability.
	KindOptional

	// KindList classifies a ListType: a homogeneous list whose elements
	// all match one element expression.
	KindList

	// KindLiteral classifies a LiteralType: membership in an enumerated
	// set of allowed values.
	KindLiteral

	// KindAny classifies AnyType, which matches every value.
	KindAny
)

// String constants for Kind values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of Kind and MAY be
// persisted in JSON/YAML documents and schema exports. Changing them is a
// breaking change for any consumer that relies on the textual form.
const (
	KindInvalidStr   = "invalid"
	KindPrimitiveStr = "primitive"
	KindRecordStr    = "record"
	KindUnionStr     = "union"
	KindOptionalStr  = "optional"
	KindListStr      = "list"
	KindLiteralStr   = "literal"
	KindAnyStr       = "any"
)

// ParseKind converts a textual representation into a Kind value.
//
// The function accepts the canonical lowercase names plus their Title and
// UPPER variants:
//
//	"primitive", "Primitive", "PRIMITIVE" -> KindPrimitive
//	"record",    "Record",    "RECORD"    -> KindRecord
//	"union",     "Union",     "UNION"     -> KindUnion
//	"optional",  "Optional",  "OPTIONAL"  -> KindOptional
//	"list",      "List",      "LIST"      -> KindList
//	"literal",   "Literal",   "LITERAL"   -> KindLiteral
//	"any",       "Any",       "ANY"       -> KindAny
//
// "invalid" is deliberately not in the vocabulary: KindInvalid marks the
// absence of a classification and has no legitimate textual source. Any
// unrecognized input returns KindInvalid and a *ParseError carrying the
// original string.
func ParseKind(s string) (Kind, error) {
	switch s {
	case KindPrimitiveStr, "Primitive", "PRIMITIVE":
		return KindPrimitive, nil
	case KindRecordStr, "Record", "RECORD":
		return KindRecord, nil
	case KindUnionStr, "Union", "UNION":
		return KindUnion, nil
	case KindOptionalStr, "Optional", "OPTIONAL":
		return KindOptional, nil
	case KindListStr, "List", "LIST":
		return KindList, nil
	case KindLiteralStr, "Literal", "LITERAL":
		return KindLiteral, nil
	case KindAnyStr, "Any", "ANY":
		return KindAny, nil
	default:
		return KindInvalid, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the canonical string representation of the Kind value.
//
// The returned value is always lowercase and suitable for use in error
// reports, logs, and schema exports. KindInvalid renders as "invalid";
// values outside the defined constants render as "unknown". Callers that
// need to ensure only valid values are emitted SHOULD call Valid before
// invoking String.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return KindInvalidStr
	case KindPrimitive:
		return KindPrimitiveStr
	case KindRecord:
		return KindRecordStr
	case KindUnion:
		return KindUnionStr
	case KindOptional:
		return KindOptionalStr
	case KindList:
		return KindListStr
	case KindLiteral:
		return KindLiteralStr
	case KindAny:
		return KindAnyStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Kind value is one of the defined classifying
// constants. KindInvalid is not valid: it is the tag for "could not be
// classified", and code that relies on a Kind being meaningful SHOULD call
// Valid (or Validate) before branching on it.
func (k Kind) Valid() bool {
	return k >= KindPrimitive && k <= KindAny
}

// TypeName returns "Kind", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string representation as String().
//
// Kind values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string form.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind has its zero value, KindInvalid.
//
// Unlike the typical enum convention, the zero value here is NOT a valid
// Kind, so IsZero returning true indicates an unclassified or defective
// expression.
func (k Kind) IsZero() bool {
	return k == KindInvalid
}

// Equal reports whether this Kind is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Kind or *Kind. Two Kind values are equal if they represent the
// same enum constant.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate checks whether the Kind value is one of the defined classifying
// constants.
//
// This method returns nil for KindPrimitive through KindAny, and a
// *ValidationError for KindInvalid or any value outside the known range.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "Kind",
			Field:  "",
			Reason: "invalid Kind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Kind.
//
// A valid Kind is serialized as its lowercase string representation
// (for example, "union" or "literal"). If the value is not valid,
// MarshalJSON returns a *MarshalError and does not produce any JSON output.
// This ensures that unclassified expressions never silently appear in
// serialized reports or schema exports.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Kind.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "primitive", "record", "union", "optional", "list",
//     "literal", "any" (case variants accepted via ParseKind).
//
//   - Number: 1 (KindPrimitive) through 7 (KindAny). Zero is rejected:
//     KindInvalid cannot be read from a document.
//
// String input is the preferred, stable representation. If the input cannot
// be parsed as either form, or resolves to an invalid Kind, UnmarshalJSON
// returns an *UnmarshalError or *ParseError describing the failure.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	*k = Kind(i)
	if !k.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Kind.
//
// A valid Kind is serialized as its canonical string representation
// (for example, "union"). If the value is not valid, MarshalYAML returns a
// *MarshalError.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Kind.
//
// The method accepts string representations of Kind values (for example,
// "union", "list") and resolves them via ParseKind. On failure, it returns
// the underlying *ParseError.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Kind.
//
// Textual form is the same lowercase string representation as used by
// String(). If the Kind value is invalid, MarshalText returns a
// *MarshalError.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
//
// The method accepts the same textual vocabulary as ParseKind, using it as
// the single source of truth for mapping strings to Kind values. On failure,
// UnmarshalText returns the underlying *ParseError.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Compile-time checks that Kind implements the model contracts.
var (
	_ model.Model        = (*Kind)(nil)
	_ model.Serializable = (*Kind)(nil)
)
