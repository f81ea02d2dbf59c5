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

// Package schema defines the type expressions that describe what values a
// record field accepts.
//
// A type expression is a value of the closed Type sum: a primitive check
// against one concrete Go type (PrimitiveType), a reference to another
// record declaration (*RecordType), an ordered choice between alternatives
// (UnionType), a value-or-null shorthand (OptionalType), a homogeneous list
// (ListType), an enumerated set of allowed values (LiteralType), or the
// expression that accepts everything (AnyType). Expressions compose freely:
// a list of unions of records containing optional literals is a single Type
// value.
//
// The set is closed on purpose. Matching dispatches with one exhaustive
// switch over Kind, and a variant that the engine does not know cannot be
// smuggled in from outside the package. Anything else that reaches the
// matcher is a schema defect and surfaces as an *errors.UnsupportedTypeError
// rather than a validation finding.
//
// Expressions are plain values. Build them once with the constructors
// (String, Int, Union, ListOf, Literal, ...), share them between record
// declarations, and use them from any number of goroutines: nothing in this
// package mutates an expression after construction. The one pointer-shaped
// variant, *RecordType, is also the one with identity; see its documentation
// for the two-phase Declare/Define protocol that makes recursive and
// mutually recursive declarations possible.
package schema

import (
	"fmt"
	"strconv"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
)

// Type is a type expression: the description of what values a field accepts.
//
// The implementations are exactly PrimitiveType, *RecordType, UnionType,
// OptionalType, ListType, LiteralType, and AnyType; the unexported marker
// method keeps the set closed. Callers branch on Kind (or Classify) rather
// than asserting concrete types, and render expressions with ExternalForm,
// which produces the compact notation used throughout error reports:
//
//	int64
//	string | int64
//	Phone?
//	[]Person
//	literal("JSON", "YAML")
//	any
//
// Every implementation also satisfies model.Model, so expressions validate,
// log, and redact like the rest of dxvalid. Validate on an expression checks
// that the expression itself is well formed (a union has alternatives, a
// primitive carries a runtime type, ...); it says nothing about any value.
// Checking values against expressions is the record package's job.
type Type interface {
	model.Validatable
	model.Loggable

	// Kind reports which variant of the sum this expression is. The
	// result is always one of the valid Kind constants for expressions
	// built through this package's constructors.
	Kind() Kind

	// ExternalForm returns the compact canonical rendering of the
	// expression, suitable for error reports and schema listings.
	ExternalForm() string

	// Equal reports whether this expression and other describe the same
	// type. Equality is structural for every variant except *RecordType,
	// which compares by identity: two record types are the same only if
	// they are the same declaration.
	Equal(other Type) bool

	isType()
}

// Classify reports the Kind of a type expression.
//
// For a nil expression, a nil *RecordType, or a Type implementation that did
// not come from this package, Classify returns KindInvalid together with an
// *errors.UnsupportedTypeError. That error is a schema defect: callers MUST
// propagate it instead of recording it as a finding about the value under
// validation.
func Classify(t Type) (Kind, error) {
	switch v := t.(type) {
	case nil:
		return KindInvalid, &errors.UnsupportedTypeError{
			Reason: "no type expression",
		}
	case PrimitiveType:
		return KindPrimitive, nil
	case *RecordType:
		if v == nil {
			return KindInvalid, &errors.UnsupportedTypeError{
				Reason: "nil record type reference",
			}
		}
		return KindRecord, nil
	case UnionType:
		return KindUnion, nil
	case OptionalType:
		return KindOptional, nil
	case ListType:
		return KindList, nil
	case LiteralType:
		return KindLiteral, nil
	case AnyType:
		return KindAny, nil
	default:
		return KindInvalid, &errors.UnsupportedTypeError{
			Expr:   t.ExternalForm(),
			Reason: "unknown type expression variant",
		}
	}
}

// Arguments returns the child expressions of a composite type expression:
// the alternatives of a union, the inner expression of an optional, and the
// element expression of a list. Primitive, record, literal, and any
// expressions have no child expressions and return nil. The returned slice
// is a copy; mutating it does not affect the expression.
func Arguments(t Type) []Type {
	switch v := t.(type) {
	case UnionType:
		return v.Alternatives()
	case OptionalType:
		return []Type{v.Inner()}
	case ListType:
		return []Type{v.Elem()}
	default:
		return nil
	}
}

// parenthesized renders a child expression, wrapping union forms in
// parentheses so that composite renderings stay unambiguous.
func parenthesized(t Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == KindUnion {
		return "(" + t.ExternalForm() + ")"
	}
	return t.ExternalForm()
}

// redactedChild is parenthesized over the redacted rendering, used by the
// composite variants so that literal values nested anywhere inside an
// expression stay masked.
func redactedChild(t Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == KindUnion {
		return "(" + t.Redacted() + ")"
	}
	return t.Redacted()
}

// validateChild validates a nested expression without descending into record
// types. A record declaration validates itself when it is defined; following
// the reference here would not terminate on recursive declarations.
func validateChild(t Type) error {
	if r, ok := t.(*RecordType); ok {
		if r == nil {
			return &errors.ValidationError{
				Type:   "RecordType",
				Reason: "nil record type reference",
			}
		}
		return nil
	}
	return t.Validate()
}

// literalRepr renders a single allowed value of a literal expression.
// Strings are quoted so that literal("1") and literal(1) stay
// distinguishable; nil renders as the null spelling.
func literalRepr(v any) string {
	if v == nil {
		return "none"
	}
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(v)
}
