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

// OptionalType is the type expression that accepts the inner expression's
// values and additionally nil.
//
// It is shorthand for Union(inner, Null()) and matches exactly like that
// union, with the inner expression tried first. It stays a distinct variant
// so renderings and reports can say "Phone?" instead of spelling out the
// union, which reads considerably better in error reports for records with
// many optional fields.
type OptionalType struct {
	inner Type
}

// Optional returns the type expression accepting inner's values or nil.
func Optional(inner Type) OptionalType {
	return OptionalType{inner: inner}
}

// Inner returns the wrapped expression.
func (t OptionalType) Inner() Type {
	return t.inner
}

// Kind returns KindOptional.
func (t OptionalType) Kind() Kind {
	return KindOptional
}

// ExternalForm renders the inner form with a "?" suffix, parenthesizing
// union inners: "int64?", "(string | int64)?".
func (t OptionalType) ExternalForm() string {
	return parenthesized(t.inner) + "?"
}

// String returns the same rendering as ExternalForm.
func (t OptionalType) String() string {
	return t.ExternalForm()
}

// Redacted renders like String with the inner expression redacted.
func (t OptionalType) Redacted() string {
	return redactedChild(t.inner) + "?"
}

// TypeName returns "OptionalType".
func (t OptionalType) TypeName() string {
	return "OptionalType"
}

// IsZero reports whether the optional wraps no expression.
func (t OptionalType) IsZero() bool {
	return t.inner == nil
}

// Equal reports whether other is an optional wrapping an equal expression.
func (t OptionalType) Equal(other Type) bool {
	o, ok := other.(OptionalType)
	if !ok {
		return false
	}
	if t.inner == nil || o.inner == nil {
		return t.inner == o.inner
	}
	return t.inner.Equal(o.inner)
}

// Validate checks that the optional wraps a well-formed expression.
func (t OptionalType) Validate() error {
	if t.inner == nil {
		return &errors.ValidationError{
			Type:   "OptionalType",
			Reason: "nil inner type expression",
		}
	}
	if err := validateChild(t.inner); err != nil {
		return fmt.Errorf("inner: %w", err)
	}
	return nil
}

func (t OptionalType) isType() {}

var _ Type = OptionalType{}
