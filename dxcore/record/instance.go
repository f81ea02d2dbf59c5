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

// Package record constructs and validates record instances against their
// declared types.
//
// An Instance is dynamic data bound to a *schema.RecordType. New builds one
// from a mapping, fills defaults, canonicalizes every value, and validates
// immediately; the outcome of that run is the instance's error report. A
// report maps field names to ordered findings, and an instance with a nil
// report is valid. Invalid is a normal state, not an error: inspect the
// report, fix the offending fields with Set, and re-validate.
//
//	person, err := record.New(personType, map[string]any{
//		"name": "Ivan",
//		"phone": map[string]any{"number": "+7-900-123-45-67"},
//	})
//	if err != nil {
//		// construction failed: unknown field, missing field, or a
//		// schema defect
//	}
//	if !person.IsValid() {
//		fmt.Println(person.Errors())
//	}
//
// # Validation and substitution
//
// Checking a field walks its type expression: primitives compare runtime
// types, unions try alternatives in declared order with first match
// winning, lists check every element and stop at the first failure,
// literals test membership, records recurse. A record-typed expression
// accepts a mapping or an instance of exactly that record type; an
// instance is decomposed back to its mapping first, so both forms run
// through the single construction path and report identically. When the
// check passes, the matched value is replaced in place by the freshly
// constructed instance, so after a successful run a tree of plain decoded
// data has become a tree of typed instances. Matched lists are rebuilt as
// canonical []any values the same way.
//
// # Findings versus defects
//
// A value that fails its checks produces findings in the report. A schema
// that cannot be interpreted at all, a nil expression, an undefined record
// declaration, an empty union, is a defect and surfaces as an
// *errors.UnsupportedTypeError on the error channel instead of being
// recorded as a finding about the data. Defects indicate a bug in the
// declaring code and are never downgraded.
package record

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
	"dirpx.dev/dxvalid/dxcore/schema"
)

// Instance is dynamic data bound to a record type: one value per declared
// field plus the error report of the last validation run.
//
// Instances are mutable through Set and not safe for concurrent use.
type Instance struct {
	rt     *schema.RecordType
	data   map[string]any
	report *Report
}

// New constructs an instance of rt from a mapping and validates it.
//
// Construction fills fields missing from the mapping with their declared
// defaults (canonicalized, containers copied fresh), then rejects the
// mapping with an *errors.ConstructionError when it names a field the
// record does not declare or omits a field that has no default. A nil
// mapping is an empty one, so a record whose fields all carry defaults
// constructs from nil.
//
// A successfully constructed instance has already been validated once:
// Errors returns that run's report. An invalid instance is still a
// successful construction. New fails only for construction problems and
// for schema defects (*errors.UnsupportedTypeError), which propagate
// eagerly rather than waiting for the first validation.
func New(rt *schema.RecordType, mapping map[string]any) (*Instance, error) {
	if rt == nil {
		return nil, &errors.UnsupportedTypeError{Reason: "no record type"}
	}
	if !rt.Defined() {
		return nil, &errors.UnsupportedTypeError{
			Expr:   rt.ExternalForm(),
			Reason: "record type declared but not defined",
		}
	}

	data := make(map[string]any, rt.Len())
	for _, f := range rt.Fields() {
		if f.HasDefault {
			data[f.Name] = schema.Normalize(f.Default)
		}
	}
	for name, value := range mapping {
		if _, ok := rt.FieldByName(name); !ok {
			return nil, &errors.ConstructionError{
				Record: rt.Name(),
				Field:  name,
				Reason: "unknown field",
			}
		}
		data[name] = schema.Normalize(value)
	}
	for _, f := range rt.Fields() {
		if _, ok := data[f.Name]; !ok {
			return nil, &errors.ConstructionError{
				Record: rt.Name(),
				Field:  f.Name,
				Reason: "missing field with no default",
			}
		}
	}

	inst := &Instance{rt: rt, data: data}
	if err := inst.run(); err != nil {
		return nil, err
	}
	return inst, nil
}

// run revalidates every field, applies substitutions, and replaces the
// stored report. Only schema defects come back as errors.
func (i *Instance) run() error {
	if i.rt == nil {
		return &errors.UnsupportedTypeError{Reason: "instance not bound to a record type"}
	}
	report := NewReport()
	for _, f := range i.rt.Fields() {
		st := &fieldState{}
		ok, err := matchType(f.Type, i.data[f.Name], st)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		if ok {
			if st.hasReplace {
				i.data[f.Name] = st.replace
			}
			continue
		}
		report.Add(f.Name, st.findings...)
	}
	if report.IsZero() {
		i.report = nil
	} else {
		i.report = report
	}
	return nil
}

// Type returns the record type this instance is bound to.
func (i *Instance) Type() *schema.RecordType {
	return i.rt
}

// Get returns the live value of a field. The second result is false when
// the record does not declare the field.
func (i *Instance) Get(name string) (any, bool) {
	if i.rt == nil {
		return nil, false
	}
	if _, ok := i.rt.FieldByName(name); !ok {
		return nil, false
	}
	return i.data[name], true
}

// Set replaces a field's value with the canonicalized form of value. It
// rejects undeclared fields with an *errors.ConstructionError and does not
// re-validate: the stored report still describes the previous run until
// IsValid or Validate runs again. Set then re-validate is the fix path for
// an invalid instance.
func (i *Instance) Set(name string, value any) error {
	if i.rt == nil {
		return &errors.UnsupportedTypeError{Reason: "instance not bound to a record type"}
	}
	if _, ok := i.rt.FieldByName(name); !ok {
		return &errors.ConstructionError{
			Record: i.rt.Name(),
			Field:  name,
			Reason: "unknown field",
		}
	}
	if i.data == nil {
		i.data = make(map[string]any, i.rt.Len())
	}
	i.data[name] = schema.Normalize(value)
	return nil
}

// Decompose returns a shallow copy of the instance's data: a fresh map, the
// same field values. Nested instances stay instances; they do not decompose
// recursively.
func (i *Instance) Decompose() map[string]any {
	out := make(map[string]any, len(i.data))
	for k, v := range i.data {
		out[k] = v
	}
	return out
}

// Errors returns the report of the last validation run without re-running
// anything: nil when that run found every field conforming. Mutations since
// the last run are not reflected; use IsValid or Validate to re-run.
func (i *Instance) Errors() *Report {
	return i.report
}

// IsValid re-validates the instance and reports whether every field
// conforms. The stored report is replaced by the fresh run's outcome. A
// schema defect makes IsValid false without touching the stored report;
// Validate exposes the defect itself.
func (i *Instance) IsValid() bool {
	if err := i.run(); err != nil {
		return false
	}
	return i.report == nil
}

// Validate re-validates the instance and bridges the outcome into the
// error channel: nil when valid, the defect when the schema is defective,
// and otherwise the report's findings combined into one error. The report
// itself stays available through Errors.
func (i *Instance) Validate() error {
	if err := i.run(); err != nil {
		return err
	}
	return i.report.Err()
}

// String renders the instance with its record name and fields in
// declaration order, for example
//
//	Person{name: "Ivan", phone: Phone{number: "+7-900-123-45-67"}}
func (i *Instance) String() string {
	if i == nil || i.rt == nil {
		return "<nil>"
	}
	parts := make([]string, 0, i.rt.Len())
	for _, f := range i.rt.Fields() {
		parts = append(parts, f.Name+": "+reprValue(i.data[f.Name]))
	}
	return i.rt.Name() + "{" + strings.Join(parts, ", ") + "}"
}

// Redacted renders like String with every field value masked.
func (i *Instance) Redacted() string {
	if i == nil || i.rt == nil {
		return "<nil>"
	}
	parts := make([]string, 0, i.rt.Len())
	for _, f := range i.rt.Fields() {
		parts = append(parts, f.Name+": [MASKED]")
	}
	return i.rt.Name() + "{" + strings.Join(parts, ", ") + "}"
}

// TypeName returns "Instance".
func (i *Instance) TypeName() string {
	return "Instance"
}

// IsZero reports whether the instance is unbound to any record type.
func (i *Instance) IsZero() bool {
	return i == nil || i.rt == nil
}

// instanceDoc is the serialized form of an Instance. Errors are present
// only when the last run recorded findings.
type instanceDoc struct {
	Record string         `json:"record" yaml:"record"`
	Fields map[string]any `json:"fields" yaml:"fields"`
	Errors *Report        `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// MarshalJSON implements json.Marshaler for Instance. Invalid instances
// serialize too, with their report attached; serialized instances are
// diagnostics, and an invalid one is exactly the case worth shipping to a
// log.
func (i *Instance) MarshalJSON() ([]byte, error) {
	if i.rt == nil {
		return nil, &errors.MarshalError{Type: "Instance"}
	}
	return json.Marshal(instanceDoc{
		Record: i.rt.Name(),
		Fields: i.data,
		Errors: i.report,
	})
}

// MarshalYAML implements yaml.Marshaler for Instance, mirroring
// MarshalJSON.
func (i *Instance) MarshalYAML() (any, error) {
	if i.rt == nil {
		return nil, &errors.MarshalError{Type: "Instance"}
	}
	return instanceDoc{
		Record: i.rt.Name(),
		Fields: i.data,
		Errors: i.report,
	}, nil
}

// ValidateAll re-validates every instance and combines the outcomes,
// prefixing each failure with its index and record name. It is
// model.ValidateAll applied to instances.
func ValidateAll(instances []*Instance) error {
	return model.ValidateAll(instances)
}

// Compile-time check that Instance implements the model contracts.
var _ model.Model = (*Instance)(nil)
