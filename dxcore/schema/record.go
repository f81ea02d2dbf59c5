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
	"fmt"
	"strings"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
)

// RecordType is a record declaration: a named, ordered set of fields, each
// with its own type expression and optional default. It doubles as a type
// expression, so records nest inside unions, optionals, and lists, and
// inside other records.
//
// Unlike the other Type variants, a record type has identity. Two
// declarations with the same name and the same fields are still different
// types, and Equal compares pointers. Everything that refers to a record,
// fields, instances, reports, holds the same *RecordType.
//
// Most declarations use NewRecordType (or MustRecordType) in one step.
// Recursive shapes need the declaration before its own fields can be
// spelled, so construction is split in two phases:
//
//	node := schema.Declare("Node")
//	err := node.Define(
//		schema.NewField("value", schema.Int()),
//		schema.NewFieldWithDefault("next", schema.Optional(node), nil),
//	)
//
// A declared but never defined record type is a schema defect: using it in
// matching fails with an *errors.UnsupportedTypeError, and Validate rejects
// it. Define MUST be called at most once; a record type is immutable after
// it succeeds.
type RecordType struct {
	name    string
	fields  []Field
	index   map[string]int
	defined bool
}

// NewRecordType declares and defines a record type in one step. It returns
// an error when the name is empty, a field is ill-formed, or two fields
// share a name.
func NewRecordType(name string, fields ...Field) (*RecordType, error) {
	rt := Declare(name)
	if err := rt.Define(fields...); err != nil {
		return nil, err
	}
	return rt, nil
}

// MustRecordType is NewRecordType that panics on error, for declarations
// built from constants at package initialization.
func MustRecordType(name string, fields ...Field) *RecordType {
	rt, err := NewRecordType(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("record type declaration failed for %s: %v", name, err))
	}
	return rt
}

// Declare returns a named record type with no fields yet. The returned
// pointer is the type's identity and MAY appear in field declarations
// before Define runs, which is what makes self-referential and mutually
// recursive records possible.
func Declare(name string) *RecordType {
	return &RecordType{name: name}
}

// Define attaches the fields to a declared record type. It canonicalizes
// field defaults, checks every field, and rejects duplicate field names and
// repeated definition. On error the record type stays undefined.
func (rt *RecordType) Define(fields ...Field) error {
	if rt.defined {
		return &errors.ValidationError{
			Type:   "RecordType",
			Field:  rt.name,
			Reason: "record type is already defined",
		}
	}
	if rt.name == "" {
		return &errors.ValidationError{
			Type:   "RecordType",
			Reason: "record name must not be empty",
		}
	}

	fs := make([]Field, len(fields))
	copy(fs, fields)
	for i := range fs {
		if fs[i].HasDefault {
			fs[i].Default = Normalize(fs[i].Default)
		}
	}

	if err := model.ValidateAll(fs); err != nil {
		return fmt.Errorf("record %s: %w", rt.name, err)
	}

	index := make(map[string]int, len(fs))
	for i, f := range fs {
		if _, dup := index[f.Name]; dup {
			return &errors.ValidationError{
				Type:   "RecordType",
				Field:  f.Name,
				Reason: "duplicate field name",
			}
		}
		index[f.Name] = i
	}

	rt.fields = fs
	rt.index = index
	rt.defined = true
	return nil
}

// Name returns the record type's name.
func (rt *RecordType) Name() string {
	return rt.name
}

// Defined reports whether Define has completed for this declaration.
func (rt *RecordType) Defined() bool {
	return rt.defined
}

// Len returns the number of declared fields.
func (rt *RecordType) Len() int {
	return len(rt.fields)
}

// Fields returns a copy of the declared fields in declaration order.
func (rt *RecordType) Fields() []Field {
	out := make([]Field, len(rt.fields))
	copy(out, rt.fields)
	return out
}

// FieldByName returns the declared field with the given name.
func (rt *RecordType) FieldByName(name string) (Field, bool) {
	i, ok := rt.index[name]
	if !ok {
		return Field{}, false
	}
	return rt.fields[i], true
}

// Kind returns KindRecord.
func (rt *RecordType) Kind() Kind {
	return KindRecord
}

// ExternalForm renders the record type as its name alone; the full field
// listing is String's job.
func (rt *RecordType) ExternalForm() string {
	if rt == nil {
		return "<nil>"
	}
	return rt.name
}

// String renders the full declaration, for example
// "Person{name: string, phone: Phone | none}". An undefined declaration
// renders as "Name{<undefined>}".
func (rt *RecordType) String() string {
	if rt == nil {
		return "<nil>"
	}
	if !rt.defined {
		return rt.name + "{<undefined>}"
	}
	parts := make([]string, len(rt.fields))
	for i, f := range rt.fields {
		parts[i] = f.String()
	}
	return rt.name + "{" + strings.Join(parts, ", ") + "}"
}

// Redacted renders like String with field defaults and literal values
// masked.
func (rt *RecordType) Redacted() string {
	if rt == nil {
		return "<nil>"
	}
	if !rt.defined {
		return rt.name + "{<undefined>}"
	}
	parts := make([]string, len(rt.fields))
	for i, f := range rt.fields {
		parts[i] = f.Redacted()
	}
	return rt.name + "{" + strings.Join(parts, ", ") + "}"
}

// TypeName returns "RecordType".
func (rt *RecordType) TypeName() string {
	return "RecordType"
}

// IsZero reports whether the record type is an unnamed, undefined
// declaration.
func (rt *RecordType) IsZero() bool {
	return rt == nil || (rt.name == "" && !rt.defined)
}

// Equal reports whether other is the same declaration. Record types compare
// by identity, never structurally.
func (rt *RecordType) Equal(other Type) bool {
	o, ok := other.(*RecordType)
	return ok && rt == o
}

// Validate checks that the record type is named, defined, and carries
// well-formed fields with unique names.
func (rt *RecordType) Validate() error {
	if rt == nil {
		return &errors.ValidationError{
			Type:   "RecordType",
			Reason: "nil record type reference",
		}
	}
	if rt.name == "" {
		return &errors.ValidationError{
			Type:   "RecordType",
			Reason: "record name must not be empty",
		}
	}
	if !rt.defined {
		return &errors.ValidationError{
			Type:   "RecordType",
			Field:  rt.name,
			Reason: "record type declared but not defined",
		}
	}
	if err := model.ValidateAll(rt.fields); err != nil {
		return fmt.Errorf("record %s: %w", rt.name, err)
	}
	return nil
}

// recordDoc is the serialized form of a RecordType.
type recordDoc struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// MarshalJSON implements json.Marshaler for RecordType. The declaration is
// validated before serialization. Record documents are diagnostics; there
// is no unmarshaling back.
func (rt *RecordType) MarshalJSON() ([]byte, error) {
	if err := rt.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "RecordType"}
	}
	return json.Marshal(recordDoc{Name: rt.name, Fields: rt.Fields()})
}

// MarshalYAML implements yaml.Marshaler for RecordType, mirroring
// MarshalJSON.
func (rt *RecordType) MarshalYAML() (any, error) {
	if err := rt.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "RecordType"}
	}
	return recordDoc{Name: rt.name, Fields: rt.Fields()}, nil
}

func (rt *RecordType) isType() {}

// Compile-time checks that RecordType implements the expression and model
// contracts.
var (
	_ Type        = (*RecordType)(nil)
	_ model.Model = (*RecordType)(nil)
)
