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

	"dirpx.dev/dxvalid/dxcore/errors"
)

// ListType is the type expression that accepts homogeneous lists: any Go
// slice whose elements all match one element expression.
//
// Matching is shallow on the container and deep on the elements. Any slice
// kind qualifies as the container ([]any, []string, []int, ...); strings
// and arrays do not. Element checks stop at the first failing element, and
// a successful match substitutes a canonical []any holding the matched
// (and possibly record-substituted) elements.
type ListType struct {
	elem Type
}

// ListOf returns the type expression accepting slices whose elements all
// match elem.
func ListOf(elem Type) ListType {
	return ListType{elem: elem}
}

// Elem returns the element expression.
func (t ListType) Elem() Type {
	return t.elem
}

// Kind returns KindList.
func (t ListType) Kind() Kind {
	return KindList
}

// ExternalForm renders as "[]" followed by the element form, parenthesizing
// union elements: "[]int64", "[](string | Phone)".
func (t ListType) ExternalForm() string {
	return "[]" + parenthesized(t.elem)
}

// String returns the same rendering as ExternalForm.
func (t ListType) String() string {
	return t.ExternalForm()
}

// Redacted renders like String with the element expression redacted.
func (t ListType) Redacted() string {
	return "[]" + redactedChild(t.elem)
}

// TypeName returns "ListType".
func (t ListType) TypeName() string {
	return "ListType"
}

// IsZero reports whether the list has no element expression.
func (t ListType) IsZero() bool {
	return t.elem == nil
}

// Equal reports whether other is a list with an equal element expression.
func (t ListType) Equal(other Type) bool {
	o, ok := other.(ListType)
	if !ok {
		return false
	}
	if t.elem == nil || o.elem == nil {
		return t.elem == o.elem
	}
	return t.elem.Equal(o.elem)
}

// Validate checks that the list has a well-formed element expression.
func (t ListType) Validate() error {
	if t.elem == nil {
		return &errors.ValidationError{
			Type:   "ListType",
			Reason: "nil element type expression",
		}
	}
	if err := validateChild(t.elem); err != nil {
		return fmt.Errorf("elem: %w", err)
	}
	return nil
}

func (t ListType) isType() {}

var _ Type = ListType{}
