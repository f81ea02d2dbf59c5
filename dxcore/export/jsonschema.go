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

// Package export renders declared record types as JSON Schema documents.
//
// RecordSchema walks the declaration graph behind a root record and emits a
// draft 2020-12 document: every reachable record becomes an entry under
// $defs, record references become $refs, and the root of the document is a
// $ref to the root record. Recursive and mutually recursive declarations
// therefore export naturally.
//
//	doc, err := export.RecordSchema(personType)
//	if err != nil {
//		return err
//	}
//	data, err := json.MarshalIndent(doc, "", "  ")
//
// The export is meant for interchange with non-Go consumers: editors,
// gateways, and other validators that speak JSON Schema. Only expressions
// with a JSON rendering export; a primitive bound to a Go-specific runtime
// type has no portable equivalent and fails with an
// *errors.UnsupportedTypeError.
package export

import (
	"reflect"

	"github.com/invopop/jsonschema"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/schema"
)

// RecordSchema builds the JSON Schema document for root and every record
// type reachable from it.
//
// Field schemas follow the expression shapes: unions become anyOf, optionals
// become anyOf with null, lists become arrays, literals become enums, and
// the any expression accepts everything. Fields without declared defaults
// are required; declared defaults are carried as default annotations.
// Objects reject undeclared properties, matching construction semantics.
//
// RecordSchema fails when the graph contains an undefined declaration, two
// distinct record types sharing one name (names key $defs), or a primitive
// whose runtime type has no JSON rendering.
func RecordSchema(root *schema.RecordType) (*jsonschema.Schema, error) {
	if root == nil {
		return nil, &errors.UnsupportedTypeError{Reason: "no record type"}
	}

	records := []*schema.RecordType{root}
	for _, rt := range root.NestedRecordTypes() {
		if rt != root {
			records = append(records, rt)
		}
	}

	byName := make(map[string]*schema.RecordType, len(records))
	defs := make(jsonschema.Definitions, len(records))
	for _, rt := range records {
		if !rt.Defined() {
			return nil, &errors.UnsupportedTypeError{
				Expr:   rt.ExternalForm(),
				Reason: "record type declared but not defined",
			}
		}
		if prev, ok := byName[rt.Name()]; ok && prev != rt {
			return nil, &errors.UnsupportedTypeError{
				Expr:   rt.ExternalForm(),
				Reason: "duplicate record type name in declaration graph",
			}
		}
		byName[rt.Name()] = rt

		obj, err := recordSchema(rt)
		if err != nil {
			return nil, err
		}
		defs[rt.Name()] = obj
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Ref:         "#/$defs/" + root.Name(),
		Definitions: defs,
	}, nil
}

// recordSchema builds the object schema for one record type.
func recordSchema(rt *schema.RecordType) (*jsonschema.Schema, error) {
	obj := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range rt.Fields() {
		prop, err := typeSchema(f.Type)
		if err != nil {
			return nil, err
		}
		if f.HasDefault {
			if prop == jsonschema.TrueSchema {
				prop = &jsonschema.Schema{}
			}
			prop.Default = f.Default
		} else {
			obj.Required = append(obj.Required, f.Name)
		}
		obj.Properties.Set(f.Name, prop)
	}
	return obj, nil
}

// typeSchema builds the schema for one type expression. Record references
// stay references, so the recursion mirrors validation and terminates on
// recursive declarations.
func typeSchema(t schema.Type) (*jsonschema.Schema, error) {
	kind, err := schema.Classify(t)
	if err != nil {
		return nil, err
	}

	switch kind {
	case schema.KindPrimitive:
		return primitiveSchema(t.(schema.PrimitiveType))

	case schema.KindRecord:
		return &jsonschema.Schema{Ref: "#/$defs/" + t.(*schema.RecordType).Name()}, nil

	case schema.KindUnion:
		u := t.(schema.UnionType)
		alts := u.Alternatives()
		if len(alts) == 0 {
			return nil, &errors.UnsupportedTypeError{
				Expr:   u.ExternalForm(),
				Reason: "union has no alternatives",
			}
		}
		anyOf := make([]*jsonschema.Schema, len(alts))
		for i, alt := range alts {
			s, err := typeSchema(alt)
			if err != nil {
				return nil, err
			}
			anyOf[i] = s
		}
		return &jsonschema.Schema{AnyOf: anyOf}, nil

	case schema.KindOptional:
		inner, err := typeSchema(t.(schema.OptionalType).Inner())
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{
			AnyOf: []*jsonschema.Schema{inner, {Type: "null"}},
		}, nil

	case schema.KindList:
		elem, err := typeSchema(t.(schema.ListType).Elem())
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "array", Items: elem}, nil

	case schema.KindLiteral:
		lt := t.(schema.LiteralType)
		if lt.IsZero() {
			return nil, &errors.UnsupportedTypeError{
				Expr:   lt.ExternalForm(),
				Reason: "literal has no allowed values",
			}
		}
		return &jsonschema.Schema{Enum: lt.Values()}, nil

	case schema.KindAny:
		return jsonschema.TrueSchema, nil

	default:
		return nil, &errors.UnsupportedTypeError{
			Expr:   t.ExternalForm(),
			Reason: "unhandled kind " + kind.String(),
		}
	}
}

// The canonical runtime types with a JSON rendering. Matching is by type
// identity, like the matcher itself: a named type with string underneath is
// not the string expression and does not export.
var (
	stringType = reflect.TypeOf("")
	intType    = reflect.TypeOf(int64(0))
	floatType  = reflect.TypeOf(float64(0))
	boolType   = reflect.TypeOf(false)
)

// primitiveSchema maps the canonical runtime types onto JSON Schema types.
func primitiveSchema(p schema.PrimitiveType) (*jsonschema.Schema, error) {
	if p.IsNull() {
		return &jsonschema.Schema{Type: "null"}, nil
	}
	if p.IsZero() {
		return nil, &errors.UnsupportedTypeError{Reason: "primitive has no runtime type"}
	}

	switch p.Runtime() {
	case stringType:
		return &jsonschema.Schema{Type: "string"}, nil
	case intType:
		return &jsonschema.Schema{Type: "integer"}, nil
	case floatType:
		return &jsonschema.Schema{Type: "number"}, nil
	case boolType:
		return &jsonschema.Schema{Type: "boolean"}, nil
	default:
		return nil, &errors.UnsupportedTypeError{
			Expr:   p.ExternalForm(),
			Reason: "runtime type has no JSON Schema rendering",
		}
	}
}
