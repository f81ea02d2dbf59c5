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
	"reflect"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
)

// Field is one declared field of a record type: a name, the type expression
// the field's values must match, and an optional default.
//
// HasDefault distinguishes "no default" from "default is nil"; a field with
// a nil default is perfectly ordinary for optional fields. Defaults are
// canonicalized when the field enters a record definition, so a default of
// int 5 and data arriving as json.Number meet on the same int64
// representation.
//
// Fields MAY be built as struct literals, but the NewField and
// NewFieldWithDefault constructors are preferred because they canonicalize
// eagerly.
type Field struct {
	Name       string
	Type       Type
	Default    any
	HasDefault bool
}

// NewField returns a field with the given name and type expression and no
// default.
func NewField(name string, t Type) Field {
	return Field{Name: name, Type: t}
}

// NewFieldWithDefault returns a field whose value defaults to def when a
// construction mapping does not supply one. The default is canonicalized;
// it MAY be nil.
func NewFieldWithDefault(name string, t Type, def any) Field {
	return Field{Name: name, Type: t, Default: Normalize(def), HasDefault: true}
}

// Validate checks that the field has a name and a well-formed type
// expression. Record-typed fields are checked as references only.
func (f Field) Validate() error {
	if f.Name == "" {
		return &errors.ValidationError{
			Type:   "Field",
			Field:  "Name",
			Reason: "field name must not be empty",
		}
	}
	if f.Type == nil {
		return &errors.ValidationError{
			Type:   "Field",
			Field:  "Type",
			Reason: "field has no type expression",
		}
	}
	if err := validateChild(f.Type); err != nil {
		return &errors.ValidationError{
			Type:   "Field",
			Field:  "Type",
			Reason: err.Error(),
		}
	}
	return nil
}

// TypeName returns "Field".
func (f Field) TypeName() string {
	return "Field"
}

// IsZero reports whether the field is entirely unset.
func (f Field) IsZero() bool {
	return f.Name == "" && f.Type == nil && f.Default == nil && !f.HasDefault
}

// String renders the declaration, for example "age: int64" or
// "zip_code: string? = none".
func (f Field) String() string {
	form := "<nil>"
	if f.Type != nil {
		form = f.Type.ExternalForm()
	}
	out := f.Name + ": " + form
	if f.HasDefault {
		out += " = " + literalRepr(f.Default)
	}
	return out
}

// Redacted renders like String with the default value and any literal
// values in the type expression masked.
func (f Field) Redacted() string {
	form := "<nil>"
	if f.Type != nil {
		form = f.Type.Redacted()
	}
	out := f.Name + ": " + form
	if f.HasDefault {
		out += " = [MASKED]"
	}
	return out
}

// Equal reports whether the two fields declare the same name, equal type
// expressions, and the same default.
func (f Field) Equal(other Field) bool {
	if f.Name != other.Name || f.HasDefault != other.HasDefault {
		return false
	}
	if f.Type == nil || other.Type == nil {
		if f.Type != other.Type {
			return false
		}
	} else if !f.Type.Equal(other.Type) {
		return false
	}
	if !f.HasDefault {
		return true
	}
	return reflect.DeepEqual(Normalize(f.Default), Normalize(other.Default))
}

// fieldDoc is the serialized form of a Field. A nil default is omitted from
// the document; HasDefault disambiguates it from an absent default.
type fieldDoc struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	HasDefault bool   `json:"has_default,omitempty" yaml:"has_default,omitempty"`
	Default    any    `json:"default,omitempty" yaml:"default,omitempty"`
}

func (f Field) doc() fieldDoc {
	return fieldDoc{
		Name:       f.Name,
		Type:       f.Type.ExternalForm(),
		HasDefault: f.HasDefault,
		Default:    f.Default,
	}
}

// MarshalJSON implements json.Marshaler for Field. The field is validated
// before serialization and the type expression is rendered in its external
// form. Field documents are diagnostics; there is no unmarshaling back.
func (f Field) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Field"}
	}
	return json.Marshal(f.doc())
}

// MarshalYAML implements yaml.Marshaler for Field, mirroring MarshalJSON.
func (f Field) MarshalYAML() (any, error) {
	if err := f.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: "Field"}
	}
	return f.doc(), nil
}

// Compile-time checks that Field implements the model contracts.
var (
	_ model.Model            = Field{}
	_ model.Comparable[Field] = Field{}
)
