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

	"dirpx.dev/dxvalid/dxcore/errors"
)

// PrimitiveType is the type expression that accepts values of exactly one
// concrete Go type, or only the null value.
//
// A primitive built with Primitive or TypeOf carries a reflect.Type and
// matches a value when the value's dynamic type is identical to it (or
// implements it, for interface types). The null primitive built with Null
// carries no runtime type and matches exactly the nil value.
//
// Numeric values are canonicalized before primitive checks: every signed and
// unsigned integer arrives as int64 and every float as float64. The
// canonical numeric primitives are therefore Int and Float; an expression
// built from, say, reflect.TypeOf(int32(0)) is well formed but will never
// match data that came through New, Set, or the codecs.
//
// The zero PrimitiveType carries neither a runtime type nor the null flag.
// It is not a usable expression: matching against it fails with a finding
// that carries an *errors.UnsupportedTypeError as its cause, and Validate
// rejects it.
type PrimitiveType struct {
	rt   reflect.Type
	null bool
}

// Primitive returns the type expression that accepts values whose dynamic
// type is exactly rt, or values implementing rt when rt is an interface
// type. A nil rt produces the invalid zero expression; use Null for the
// expression that accepts only nil.
func Primitive(rt reflect.Type) PrimitiveType {
	return PrimitiveType{rt: rt}
}

// TypeOf returns the primitive expression for the canonicalized dynamic type
// of sample, so TypeOf(0) and TypeOf(int32(7)) both yield the int64
// expression. TypeOf(nil) returns the null expression.
func TypeOf(sample any) PrimitiveType {
	if sample == nil {
		return Null()
	}
	return Primitive(reflect.TypeOf(Normalize(sample)))
}

// String returns the type expression accepting exactly string values.
func String() PrimitiveType {
	return Primitive(reflect.TypeOf(""))
}

// Int returns the type expression accepting canonical integers (int64).
func Int() PrimitiveType {
	return Primitive(reflect.TypeOf(int64(0)))
}

// Float returns the type expression accepting canonical floats (float64).
func Float() PrimitiveType {
	return Primitive(reflect.TypeOf(float64(0)))
}

// Bool returns the type expression accepting exactly bool values.
func Bool() PrimitiveType {
	return Primitive(reflect.TypeOf(false))
}

// Null returns the type expression accepting exactly the nil value.
func Null() PrimitiveType {
	return PrimitiveType{null: true}
}

// Runtime returns the runtime type this primitive checks against, or nil
// for the null primitive and the zero expression.
func (t PrimitiveType) Runtime() reflect.Type {
	return t.rt
}

// IsNull reports whether this is the null primitive.
func (t PrimitiveType) IsNull() bool {
	return t.null
}

// Kind returns KindPrimitive.
func (t PrimitiveType) Kind() Kind {
	return KindPrimitive
}

// ExternalForm renders the primitive as its Go type name, "none" for the
// null primitive, or "invalid" for the zero expression.
func (t PrimitiveType) ExternalForm() string {
	if t.null {
		return "none"
	}
	if t.rt == nil {
		return "invalid"
	}
	return t.rt.String()
}

// String returns the same rendering as ExternalForm.
func (t PrimitiveType) String() string {
	return t.ExternalForm()
}

// Redacted returns the same rendering as String; a primitive expression
// names a type and carries no values.
func (t PrimitiveType) Redacted() string {
	return t.String()
}

// TypeName returns "PrimitiveType".
func (t PrimitiveType) TypeName() string {
	return "PrimitiveType"
}

// IsZero reports whether this is the zero expression: no runtime type and
// not the null primitive.
func (t PrimitiveType) IsZero() bool {
	return t.rt == nil && !t.null
}

// Equal reports whether other is a primitive expression for the same
// runtime type (or both are the null primitive).
func (t PrimitiveType) Equal(other Type) bool {
	o, ok := other.(PrimitiveType)
	if !ok {
		return false
	}
	return t.null == o.null && t.rt == o.rt
}

// Validate rejects the zero expression; every primitive built through
// Primitive, TypeOf, or Null is well formed.
func (t PrimitiveType) Validate() error {
	if t.IsZero() {
		return &errors.ValidationError{
			Type:   "PrimitiveType",
			Reason: "no runtime type",
		}
	}
	return nil
}

func (t PrimitiveType) isType() {}

var _ Type = PrimitiveType{}
