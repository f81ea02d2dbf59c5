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

// Package errors provides the error types shared across the dxvalid packages.
//
// dxvalid draws a hard line between two families of failure:
//
//   - Validation findings. A value that does not match its declared type
//     expression is NOT an error in the Go sense; it is recorded as data in a
//     record.Report and the program keeps going. Those findings live in the
//     record package, not here.
//
//   - Defects and misuse. A schema that cannot be interpreted, a constructor
//     call naming a field that does not exist, an enum value being marshaled
//     out of range. These ARE errors, travel the ordinary error return, and
//     are defined in this package.
//
// The types here are intentionally simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / construction code,
//   - easy to recognize via errors.As and type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (such as
//     schema.Kind) fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value. Prevents values
//     outside the known constant set from leaking into JSON or YAML output.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails: malformed
//     JSON/YAML input, a document whose top level is not an object, and so on.
//
//   - ValidationError
//     Returned by Validate() methods of declaration types (schema.Field,
//     schema.RecordType, schema.Kind) when a declaration violates its own
//     invariants.
//
//   - ConstructionError
//     Returned when a record instance cannot be constructed because the field
//     mapping itself is malformed: an unknown field name, or a missing field
//     with no declared default. Matching a nested mapping captures this error
//     as a finding instead of propagating it.
//
//   - UnsupportedTypeError
//     Returned when the engine meets a type expression it cannot interpret.
//     This is a schema defect, not a data problem: it always propagates and
//     is never downgraded to a validation finding.
//
// # Usage
//
//	import "dirpx.dev/dxvalid/dxcore/errors"
//
//	func ParseKind(s string) (Kind, error) {
//	    switch s {
//	    case "union":
//	        return KindUnion, nil
//	    default:
//	        return KindInvalid, &errors.ParseError{Type: "Kind", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Kind"), and
// Value contains the exact string that could not be interpreted. Callers MAY
// pattern-match on Type to provide type-specific guidance to users or to
// translate errors into friendlier messages.
//
// # Example
//
//	kind, err := schema.ParseKind("tuple")
//	// err formats as: "dxvalid: invalid Kind value: tuple"
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Kind").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxvalid: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxvalid: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Kind"), and
// Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, a zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example,
	// "Kind").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxvalid: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxvalid: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Kind" or a
// record type name), Data contains the original raw payload (typically a JSON
// or YAML fragment), and Reason provides a human-readable description of what
// went wrong.
//
// This struct is intended to be surfaced directly in diagnostics so that users
// can understand why their document could not be interpreted. Callers MAY wrap
// UnmarshalError with additional context when propagating it further up the
// stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "document is not a mapping") rather than repeating the type name; the
	// type name is already available in the Type field.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxvalid: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it separately
// when appropriate.
func (e *UnmarshalError) Error() string {
	return "dxvalid: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a declaration type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Field", "RecordType"), Field optionally identifies which part failed,
// Reason provides a human-readable explanation of the failure, and Value
// optionally contains the problematic value.
//
// This error is used by Validate() methods on declaration types to report
// constraint violations, and by record.Report.Err() as the per-field wrapper
// when a report is flattened into one aggregated error.
//
// # Example
//
//	func (f Field) Validate() error {
//	    if f.Name == "" {
//	        return &errors.ValidationError{
//	            Type:   "Field",
//	            Field:  "Name",
//	            Reason: "must not be empty",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxvalid: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxvalid: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"dxvalid: invalid Field.Name: must not be empty"
//	"dxvalid: invalid Kind: invalid Kind value"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxvalid: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxvalid: invalid " + e.Type + ": " + e.Reason
}

// ConstructionError is returned when a record instance cannot be constructed
// from a field mapping.
//
// Construction fails only when the mapping itself is malformed with respect to
// the record type declaration: it names a field the record type does not
// declare, or it omits a field that has no declared default. A mapping whose
// values merely fail validation does NOT produce a ConstructionError; the
// instance is created and carries its findings in a record.Report.
//
// Record identifies the record type under construction and Field the offending
// field name. Reason states which rule was broken.
//
// When the matcher constructs a NESTED record while validating an enclosing
// field, a ConstructionError is captured as the cause of a record finding
// rather than propagated; only top-level construction surfaces it to the
// caller.
type ConstructionError struct {
	// Record is the name of the record type being constructed.
	Record string

	// Field is the field name that triggered the failure.
	Field string

	// Reason is a short, human-readable explanation of the failure
	// (for example, "unknown field" or "missing field with no default").
	Reason string
}

// Error implements the error interface for ConstructionError.
//
// The error message format is:
//
//	"dxvalid: cannot construct {Record}: field {Field}: {Reason}"
//
// For example:
//
//	"dxvalid: cannot construct Phone: field fax: unknown field"
func (e *ConstructionError) Error() string {
	return "dxvalid: cannot construct " + e.Record + ": field " + e.Field + ": " + e.Reason
}

// UnsupportedTypeError is returned when the engine encounters a type
// expression it cannot interpret: a nil expression, an expression kind outside
// the known set, or a record type that was declared but never defined.
//
// An UnsupportedTypeError signals a defect in the schema, not a problem with
// the data being validated. The schema itself is unusable, so this error
// ALWAYS propagates out of validation and construction; it is never converted
// into a validation finding. Distinguishing schema defects from data errors
// keeps "your document is wrong" and "your program is wrong" from blurring
// together.
//
// Expr carries the external form of the offending expression when one is
// available, and Reason states why it could not be interpreted.
type UnsupportedTypeError struct {
	// Expr is the external form of the unusable type expression.
	// May be empty when no expression was available at all.
	Expr string

	// Reason is a short, human-readable explanation of the defect
	// (for example, "no type expression" or "record type declared but
	// not defined").
	Reason string
}

// Error implements the error interface for UnsupportedTypeError.
//
// The error message format is:
//
//	"dxvalid: unsupported type expression {Expr}: {Reason}" (when Expr is set)
//	"dxvalid: unsupported type expression: {Reason}" (when Expr is empty)
//
// For example:
//
//	"dxvalid: unsupported type expression Person: record type declared but not defined"
func (e *UnsupportedTypeError) Error() string {
	if e.Expr != "" {
		return "dxvalid: unsupported type expression " + e.Expr + ": " + e.Reason
	}
	return "dxvalid: unsupported type expression: " + e.Reason
}
