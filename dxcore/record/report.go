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

package record

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/model"
	"dirpx.dev/dxvalid/dxcore/schema"
)

// Finding kind discriminators, used in serialized reports.
const (
	BasicErrorKind    = "basic"
	RecordErrorKind   = "record"
	ListItemErrorKind = "list_item"
	LiteralErrorKind  = "literal"
)

// FieldError is one finding about one field's value: which check failed and
// on what. Findings are data, not Go errors; an invalid value is a normal
// outcome for a validation engine, and only schema defects travel on the
// error channel. Report.Err bridges findings into an error for callers that
// want one.
//
// The implementations are exactly *BasicError, *RecordError,
// *ListItemError, and *LiteralError; the unexported method keeps the set
// closed so serialized reports have a fixed vocabulary of kinds.
type FieldError interface {
	// Kind returns the finding's discriminator: one of BasicErrorKind,
	// RecordErrorKind, ListItemErrorKind, LiteralErrorKind.
	Kind() string

	// Message returns the human-readable description of the finding.
	Message() string

	// Redacted returns the description with values masked.
	Redacted() string

	doc() errorDoc
}

// errorDoc is the serialized form of a finding. Only the fields meaningful
// for the finding's kind are populated.
type errorDoc struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Message   string  `json:"message" yaml:"message"`
	Expected  string  `json:"expected,omitempty" yaml:"expected,omitempty"`
	Value     string  `json:"value,omitempty" yaml:"value,omitempty"`
	ValueType string  `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	Record    string  `json:"record,omitempty" yaml:"record,omitempty"`
	Index     *int    `json:"index,omitempty" yaml:"index,omitempty"`
	Cause     string  `json:"cause,omitempty" yaml:"cause,omitempty"`
	Nested    *Report `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// BasicError is the generic mismatch finding: the value does not match the
// expected type expression. It also carries the summarizing finding a union
// or optional records after all alternatives failed, and, as the one
// exception-capture site, a Cause when the expression itself was unusable
// (for example a zero PrimitiveType).
type BasicError struct {
	Expected schema.Type
	Value    any
	Cause    error
}

// Kind returns BasicErrorKind.
func (e *BasicError) Kind() string { return BasicErrorKind }

// Message renders as, for example,
//
//	value "abc" (string) does not match int64
//
// with the defect reason appended when a Cause is present.
func (e *BasicError) Message() string {
	msg := fmt.Sprintf("value %s (%s) does not match %s",
		ValueRepr(e.Value), valueTypeName(e.Value), expectedForm(e.Expected))
	if e.Cause != nil {
		msg += ": " + defectReason(e.Cause)
	}
	return msg
}

// Redacted renders like Message with the value masked.
func (e *BasicError) Redacted() string {
	form := "<nil>"
	if e.Expected != nil {
		form = e.Expected.Redacted()
	}
	msg := fmt.Sprintf("value [MASKED] (%s) does not match %s", valueTypeName(e.Value), form)
	if e.Cause != nil {
		msg += ": " + defectReason(e.Cause)
	}
	return msg
}

func (e *BasicError) doc() errorDoc {
	d := errorDoc{
		Kind:      BasicErrorKind,
		Message:   e.Message(),
		Expected:  expectedForm(e.Expected),
		Value:     ValueRepr(e.Value),
		ValueType: valueTypeName(e.Value),
	}
	if e.Cause != nil {
		d.Cause = defectReason(e.Cause)
	}
	return d
}

// RecordError is the finding for a record-typed check that failed. It has
// two modes. When construction of the nested record succeeded but the
// result was invalid, or an existing instance of the record type was
// invalid, Nested carries that record's own report. When a mapping could
// not be constructed at all, Cause carries the construction error.
type RecordError struct {
	Record *schema.RecordType
	Value  any
	Nested *Report
	Cause  error
}

// Kind returns RecordErrorKind.
func (e *RecordError) Kind() string { return RecordErrorKind }

// Message renders as, for example,
//
//	value {...} (map[string]any) is not a valid Phone
//	value {...} (map[string]any) does not construct Phone: field "phnoe": unknown field
func (e *RecordError) Message() string {
	if e.Cause != nil {
		return fmt.Sprintf("value %s (%s) does not construct %s: %s",
			ValueRepr(e.Value), valueTypeName(e.Value), e.Record.Name(), defectReason(e.Cause))
	}
	return fmt.Sprintf("value %s (%s) is not a valid %s",
		ValueRepr(e.Value), valueTypeName(e.Value), e.Record.Name())
}

// Redacted renders like Message with the value masked.
func (e *RecordError) Redacted() string {
	if e.Cause != nil {
		return fmt.Sprintf("value [MASKED] (%s) does not construct %s: %s",
			valueTypeName(e.Value), e.Record.Name(), defectReason(e.Cause))
	}
	return fmt.Sprintf("value [MASKED] (%s) is not a valid %s",
		valueTypeName(e.Value), e.Record.Name())
}

func (e *RecordError) doc() errorDoc {
	d := errorDoc{
		Kind:      RecordErrorKind,
		Message:   e.Message(),
		Record:    e.Record.Name(),
		Value:     ValueRepr(e.Value),
		ValueType: valueTypeName(e.Value),
		Nested:    e.Nested,
	}
	if e.Cause != nil {
		d.Cause = defectReason(e.Cause)
	}
	return d
}

// ListItemError is the summarizing finding for a list check that stopped at
// a failing element. The element's own findings precede it in the field's
// error list; this one pins the index.
type ListItemError struct {
	Index int
	Elem  schema.Type
	Value any
}

// Kind returns ListItemErrorKind.
func (e *ListItemError) Kind() string { return ListItemErrorKind }

// Message renders as, for example,
//
//	element "x" (string) at index 2 does not match int64
func (e *ListItemError) Message() string {
	return fmt.Sprintf("element %s (%s) at index %d does not match %s",
		ValueRepr(e.Value), valueTypeName(e.Value), e.Index, expectedForm(e.Elem))
}

// Redacted renders like Message with the element value masked.
func (e *ListItemError) Redacted() string {
	form := "<nil>"
	if e.Elem != nil {
		form = e.Elem.Redacted()
	}
	return fmt.Sprintf("element [MASKED] (%s) at index %d does not match %s",
		valueTypeName(e.Value), e.Index, form)
}

func (e *ListItemError) doc() errorDoc {
	i := e.Index
	return errorDoc{
		Kind:      ListItemErrorKind,
		Message:   e.Message(),
		Expected:  expectedForm(e.Elem),
		Value:     ValueRepr(e.Value),
		ValueType: valueTypeName(e.Value),
		Index:     &i,
	}
}

// LiteralError is the finding for a value outside a literal expression's
// allowed set.
type LiteralError struct {
	Allowed schema.LiteralType
	Value   any
}

// Kind returns LiteralErrorKind.
func (e *LiteralError) Kind() string { return LiteralErrorKind }

// Message renders as, for example,
//
//	value "CSV" (string) is not one of literal("JSON", "YAML")
func (e *LiteralError) Message() string {
	return fmt.Sprintf("value %s (%s) is not one of %s",
		ValueRepr(e.Value), valueTypeName(e.Value), e.Allowed.ExternalForm())
}

// Redacted masks both the value and the allowed set.
func (e *LiteralError) Redacted() string {
	return fmt.Sprintf("value [MASKED] (%s) is not one of %s",
		valueTypeName(e.Value), e.Allowed.Redacted())
}

func (e *LiteralError) doc() errorDoc {
	return errorDoc{
		Kind:      LiteralErrorKind,
		Message:   e.Message(),
		Expected:  e.Allowed.ExternalForm(),
		Value:     ValueRepr(e.Value),
		ValueType: valueTypeName(e.Value),
	}
}

// expectedForm renders a type expression for messages, tolerating nil.
func expectedForm(t schema.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.ExternalForm()
}

// valueTypeName names the runtime type of an offending value: "nil" for the
// nil value, the record name for instances, the Go type otherwise, with
// interface {} spelled any.
func valueTypeName(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case *Instance:
		if x.IsZero() {
			return "Instance"
		}
		return x.Type().Name()
	}
	return strings.ReplaceAll(reflect.TypeOf(v).String(), "interface {}", "any")
}

// defectReason extracts the short reason from a captured error, avoiding
// the doubled "dxvalid:" prefixes full Error strings would produce inside
// finding messages.
func defectReason(err error) string {
	var cons *errors.ConstructionError
	if stderrors.As(err, &cons) {
		if cons.Field != "" {
			return fmt.Sprintf("field %q: %s", cons.Field, cons.Reason)
		}
		return cons.Reason
	}
	var unsup *errors.UnsupportedTypeError
	if stderrors.As(err, &unsup) {
		return unsup.Reason
	}
	return err.Error()
}

// Report is the error report of one validation run: field name to the
// ordered findings about that field's value. A field with a conforming
// value has no entry, never an empty list, so an empty report and a valid
// instance are the same statement.
//
// Reports are snapshots. Instance.Errors hands out the report of the last
// run without re-running anything; fixing the instance and re-validating
// produces a new report (or none).
type Report struct {
	fields map[string][]FieldError
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{fields: make(map[string][]FieldError)}
}

// Add appends findings to a field's entry, in order. Adding zero findings
// is a no-op, which is what keeps empty entries out of the report.
func (r *Report) Add(field string, findings ...FieldError) {
	if len(findings) == 0 {
		return
	}
	if r.fields == nil {
		r.fields = make(map[string][]FieldError)
	}
	r.fields[field] = append(r.fields[field], findings...)
}

// Len returns the number of fields with findings.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// IsZero reports whether the report has no findings.
func (r *Report) IsZero() bool {
	return r.Len() == 0
}

// Fields returns the names of fields with findings, sorted.
func (r *Report) Fields() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByField returns a copy of the ordered findings for one field, or nil when
// the field has none.
func (r *Report) ByField(field string) []FieldError {
	if r == nil {
		return nil
	}
	findings, ok := r.fields[field]
	if !ok {
		return nil
	}
	out := make([]FieldError, len(findings))
	copy(out, findings)
	return out
}

// Err bridges the report into the error channel for callers that want one:
// nil for an empty report, otherwise every finding as a "field: message"
// error combined with multierr. The report itself stays the source of
// truth; Err loses the finding structure.
func (r *Report) Err() error {
	if r.IsZero() {
		return nil
	}
	var err error
	for _, field := range r.Fields() {
		for _, finding := range r.fields[field] {
			err = multierr.Append(err, fmt.Errorf("%s: %s", field, finding.Message()))
		}
	}
	return err
}

// Equal reports whether the two reports carry the same findings for the
// same fields, in the same order.
func (r *Report) Equal(other *Report) bool {
	if r.Len() != other.Len() {
		return false
	}
	if r.IsZero() {
		return true
	}
	return reflect.DeepEqual(r.fields, other.fields)
}

// String renders the report on one line, fields sorted, for example
//
//	Report(age=[value "x" (string) does not match int64])
func (r *Report) String() string {
	if r.IsZero() {
		return "Report()"
	}
	parts := make([]string, 0, len(r.fields))
	for _, field := range r.Fields() {
		msgs := make([]string, len(r.fields[field]))
		for i, finding := range r.fields[field] {
			msgs[i] = finding.Message()
		}
		parts = append(parts, field+"=["+strings.Join(msgs, "; ")+"]")
	}
	return "Report(" + strings.Join(parts, ", ") + ")"
}

// Redacted renders like String with every finding redacted.
func (r *Report) Redacted() string {
	if r.IsZero() {
		return "Report()"
	}
	parts := make([]string, 0, len(r.fields))
	for _, field := range r.Fields() {
		msgs := make([]string, len(r.fields[field]))
		for i, finding := range r.fields[field] {
			msgs[i] = finding.Redacted()
		}
		parts = append(parts, field+"=["+strings.Join(msgs, "; ")+"]")
	}
	return "Report(" + strings.Join(parts, ", ") + ")"
}

// TypeName returns "Report".
func (r *Report) TypeName() string {
	return "Report"
}

// Validate checks the report's structural invariant: no field maps to an
// empty finding list. Reports built through Add cannot violate it.
func (r *Report) Validate() error {
	if r == nil {
		return nil
	}
	for field, findings := range r.fields {
		if len(findings) == 0 {
			return &errors.ValidationError{
				Type:   "Report",
				Field:  field,
				Reason: "empty finding list stored for field",
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Report: an object from field
// name to the list of finding documents, fields in sorted order.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.docs())
}

// MarshalYAML implements yaml.Marshaler for Report, mirroring MarshalJSON.
func (r *Report) MarshalYAML() (any, error) {
	return r.docs(), nil
}

func (r *Report) docs() map[string][]errorDoc {
	out := make(map[string][]errorDoc, r.Len())
	if r == nil {
		return out
	}
	for field, findings := range r.fields {
		docs := make([]errorDoc, len(findings))
		for i, finding := range findings {
			docs[i] = finding.doc()
		}
		out[field] = docs
	}
	return out
}

// ValueRepr renders a value for finding messages: strings quoted, nil as
// "none", slices and string-keyed maps in bracketed comma form with sorted
// map keys. Renderings longer than 30 characters are truncated to the first
// 26, an ellipsis, and the final character, so a 20-element integer list
// reads
//
//	[1, 2, 3, 4, 5, 6, 7, 8, 9...]
//
// Reprs appear in reports and logs; the truncation keeps one oversized
// value from drowning the rest of the report.
func ValueRepr(v any) string {
	r := reprValue(v)
	runes := []rune(r)
	if len(runes) > 30 {
		return string(runes[:26]) + "..." + string(runes[len(runes)-1:])
	}
	return r
}

func reprValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "none"
	case string:
		return strconv.Quote(x)
	case *Instance:
		return x.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = reprValue(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			keys := make([]string, 0, rv.Len())
			for _, k := range rv.MapKeys() {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			parts := make([]string, len(keys))
			for i, k := range keys {
				parts[i] = strconv.Quote(k) + ": " +
					reprValue(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			}
			return "{" + strings.Join(parts, ", ") + "}"
		}
	}
	return fmt.Sprint(v)
}

// Compile-time checks for the model contracts and the closed finding set.
var (
	_ model.Model               = (*Report)(nil)
	_ model.Comparable[*Report] = (*Report)(nil)

	_ FieldError = (*BasicError)(nil)
	_ FieldError = (*RecordError)(nil)
	_ FieldError = (*ListItemError)(nil)
	_ FieldError = (*LiteralError)(nil)
)
