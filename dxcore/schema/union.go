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
	"fmt"
	"strings"

	"dirpx.dev/dxvalid/dxcore/errors"
)

// UnionType is the type expression that accepts a value when any of its
// alternatives accepts it.
//
// Alternatives are ordered and order is semantic: the matcher tries them
// first to last and the first alternative to accept the value wins,
// including any record substitution that alternative performed. Declare the
// preferred interpretation first when alternatives overlap, for example
// Union(phoneRecord, emailRecord) for a contact field that should prefer
// phones.
type UnionType struct {
	alts []Type
}

// Union returns the type expression accepting values that match any of the
// given alternatives, tried in the given order. The slice is copied.
func Union(alternatives ...Type) UnionType {
	alts := make([]Type, len(alternatives))
	copy(alts, alternatives)
	return UnionType{alts: alts}
}

// Alternatives returns a copy of the ordered alternatives.
func (t UnionType) Alternatives() []Type {
	out := make([]Type, len(t.alts))
	copy(out, t.alts)
	return out
}

// Len returns the number of alternatives.
func (t UnionType) Len() int {
	return len(t.alts)
}

// Kind returns KindUnion.
func (t UnionType) Kind() Kind {
	return KindUnion
}

// ExternalForm renders the alternatives joined by " | ", with nested unions
// parenthesized, for example "string | int64 | Phone".
func (t UnionType) ExternalForm() string {
	forms := make([]string, len(t.alts))
	for i, alt := range t.alts {
		forms[i] = parenthesized(alt)
	}
	return strings.Join(forms, " | ")
}

// String returns the same rendering as ExternalForm.
func (t UnionType) String() string {
	return t.ExternalForm()
}

// Redacted renders like String with every alternative redacted, so literal
// values nested in the union stay masked.
func (t UnionType) Redacted() string {
	forms := make([]string, len(t.alts))
	for i, alt := range t.alts {
		forms[i] = redactedChild(alt)
	}
	return strings.Join(forms, " | ")
}

// TypeName returns "UnionType".
func (t UnionType) TypeName() string {
	return "UnionType"
}

// IsZero reports whether the union has no alternatives.
func (t UnionType) IsZero() bool {
	return len(t.alts) == 0
}

// Equal reports whether other is a union with equal alternatives in the
// same order.
func (t UnionType) Equal(other Type) bool {
	o, ok := other.(UnionType)
	if !ok || len(t.alts) != len(o.alts) {
		return false
	}
	for i, alt := range t.alts {
		if alt == nil || o.alts[i] == nil {
			if alt != o.alts[i] {
				return false
			}
			continue
		}
		if !alt.Equal(o.alts[i]) {
			return false
		}
	}
	return true
}

// Validate checks that the union has at least one alternative and that each
// alternative is itself a well-formed expression. Record alternatives are
// checked as references only; a record declaration validates itself when it
// is defined.
func (t UnionType) Validate() error {
	if len(t.alts) == 0 {
		return &errors.ValidationError{
			Type:   "UnionType",
			Reason: "a union needs at least one alternative",
		}
	}
	for i, alt := range t.alts {
		if alt == nil {
			return &errors.ValidationError{
				Type:   "UnionType",
				Field:  fmt.Sprintf("alternatives[%d]", i),
				Reason: "nil type expression",
			}
		}
		if err := validateChild(alt); err != nil {
			return fmt.Errorf("alternatives[%d]: %w", i, err)
		}
	}
	return nil
}

func (t UnionType) isType() {}

var _ Type = UnionType{}
