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
	"reflect"
	"strings"

	"dirpx.dev/dxvalid/dxcore/errors"
)

// LiteralType is the type expression that accepts only the enumerated
// values it was built with.
//
// Membership is checked by deep equality against the canonicalized allowed
// values, in order, and it is type-exact: literal(1) accepts int64(1) but
// not true, not float64(1), and not "1". The allowed values are
// canonicalized once at construction, so Literal(1, 2) and data arriving
// through the codecs meet on the same int64 representation.
type LiteralType struct {
	values []any
}

// Literal returns the type expression accepting exactly the given values.
// Values are canonicalized and the slice is copied.
func Literal(values ...any) LiteralType {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = Normalize(v)
	}
	return LiteralType{values: vals}
}

// Values returns a copy of the canonicalized allowed values.
func (t LiteralType) Values() []any {
	out := make([]any, len(t.values))
	copy(out, t.values)
	return out
}

// Contains reports whether v, after canonicalization, is deeply equal to
// one of the allowed values.
func (t LiteralType) Contains(v any) bool {
	v = Normalize(v)
	for _, allowed := range t.values {
		if reflect.DeepEqual(v, allowed) {
			return true
		}
	}
	return false
}

// Kind returns KindLiteral.
func (t LiteralType) Kind() Kind {
	return KindLiteral
}

// ExternalForm renders the allowed values, for example
// literal("JSON", "YAML") or literal(1, 2, 3).
func (t LiteralType) ExternalForm() string {
	reprs := make([]string, len(t.values))
	for i, v := range t.values {
		reprs[i] = literalRepr(v)
	}
	return "literal(" + strings.Join(reprs, ", ") + ")"
}

// String returns the same rendering as ExternalForm.
func (t LiteralType) String() string {
	return t.ExternalForm()
}

// Redacted masks the allowed values, which may be sensitive, and renders
// as literal([MASKED]).
func (t LiteralType) Redacted() string {
	return "literal([MASKED])"
}

// TypeName returns "LiteralType".
func (t LiteralType) TypeName() string {
	return "LiteralType"
}

// IsZero reports whether the literal has no allowed values.
func (t LiteralType) IsZero() bool {
	return len(t.values) == 0
}

// Equal reports whether other is a literal with deeply equal allowed values
// in the same order.
func (t LiteralType) Equal(other Type) bool {
	o, ok := other.(LiteralType)
	if !ok {
		return false
	}
	return reflect.DeepEqual(t.values, o.values)
}

// Validate checks that the literal has at least one allowed value.
func (t LiteralType) Validate() error {
	if len(t.values) == 0 {
		return &errors.ValidationError{
			Type:   "LiteralType",
			Reason: "a literal needs at least one allowed value",
		}
	}
	return nil
}

func (t LiteralType) isType() {}

var _ Type = LiteralType{}
