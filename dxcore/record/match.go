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
	stderrors "errors"
	"reflect"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/schema"
)

// fieldState carries one field's in-flight matching state through the
// recursion: the findings collected so far and the pending substitution.
// Union matching hands each alternative a fresh state, so a failed
// alternative's findings and substitution never leak into the winner's.
type fieldState struct {
	findings   []FieldError
	replace    any
	hasReplace bool
}

// Match checks a single value against a type expression outside any record
// context: ok reports whether the value conforms, findings explain a false
// ok, and the error is non-nil only for schema defects. Record and list
// substitutions happen internally and are discarded; construct through New
// when the typed result matters.
func Match(t schema.Type, value any) (ok bool, findings []FieldError, err error) {
	st := &fieldState{}
	ok, err = matchType(t, schema.Normalize(value), st)
	if err != nil {
		return false, nil, err
	}
	if ok {
		return true, nil, nil
	}
	return false, st.findings, nil
}

func (st *fieldState) fail(f FieldError) (bool, error) {
	st.findings = append(st.findings, f)
	return false, nil
}

func (st *fieldState) substitute(v any) {
	st.replace = v
	st.hasReplace = true
}

// matchType checks one value against one type expression. It returns true
// when the value conforms, false with findings appended to st when it does
// not, and a non-nil error only for schema defects, which abort the run.
func matchType(t schema.Type, value any, st *fieldState) (bool, error) {
	kind, err := schema.Classify(t)
	if err != nil {
		return false, err
	}

	switch kind {
	case schema.KindPrimitive:
		return matchPrimitive(t.(schema.PrimitiveType), value, st)
	case schema.KindRecord:
		return matchRecord(t.(*schema.RecordType), value, st)
	case schema.KindUnion:
		u := t.(schema.UnionType)
		return matchAlternatives(t, u.Alternatives(), value, st)
	case schema.KindOptional:
		o := t.(schema.OptionalType)
		return matchAlternatives(t, []schema.Type{o.Inner(), schema.Null()}, value, st)
	case schema.KindList:
		return matchList(t.(schema.ListType), value, st)
	case schema.KindLiteral:
		return matchLiteral(t.(schema.LiteralType), value, st)
	case schema.KindAny:
		return true, nil
	default:
		return false, &errors.UnsupportedTypeError{
			Expr:   t.ExternalForm(),
			Reason: "unhandled kind " + kind.String(),
		}
	}
}

// matchPrimitive checks the value's canonical runtime type against the
// primitive's. The zero primitive is unusable and is the one place a defect
// becomes a finding: the caller spelled a type that cannot check anything,
// and the finding carries that defect as its cause.
func matchPrimitive(p schema.PrimitiveType, value any, st *fieldState) (bool, error) {
	if p.IsZero() {
		return st.fail(&BasicError{
			Expected: p,
			Value:    value,
			Cause:    &errors.UnsupportedTypeError{Reason: "primitive has no runtime type"},
		})
	}

	if p.IsNull() {
		if isNilValue(value) {
			return true, nil
		}
		return st.fail(&BasicError{Expected: p, Value: value})
	}

	if isNilValue(value) {
		return st.fail(&BasicError{Expected: p, Value: value})
	}

	rt := reflect.TypeOf(schema.Normalize(value))
	if rt == p.Runtime() {
		return true, nil
	}
	if p.Runtime().Kind() == reflect.Interface && rt.Implements(p.Runtime()) {
		return true, nil
	}
	return st.fail(&BasicError{Expected: p, Value: value})
}

// matchRecord checks a record-typed expression. Mappings and instances of
// exactly this record type funnel into one construction path: an instance
// is decomposed into its field mapping first, so a previously invalid
// instance is rebuilt the same way a fresh mapping would be. A successful
// construction with a clean report becomes the pending substitution.
// Everything else, including instances of other record types, is a plain
// mismatch.
func matchRecord(rt *schema.RecordType, value any, st *fieldState) (bool, error) {
	if !rt.Defined() {
		return false, &errors.UnsupportedTypeError{
			Expr:   rt.ExternalForm(),
			Reason: "record type declared but not defined",
		}
	}

	var mapping map[string]any
	switch v := value.(type) {
	case *Instance:
		if v.IsZero() || v.Type() != rt {
			return st.fail(&BasicError{Expected: rt, Value: value})
		}
		mapping = v.Decompose()
	case map[string]any:
		mapping = v
	default:
		return st.fail(&BasicError{Expected: rt, Value: value})
	}

	inst, err := New(rt, mapping)
	if err != nil {
		var unsup *errors.UnsupportedTypeError
		if stderrors.As(err, &unsup) {
			return false, err
		}
		return st.fail(&RecordError{Record: rt, Value: mapping, Cause: err})
	}
	if rep := inst.Errors(); rep != nil {
		// The finding records the constructed instance's decomposition
		// rather than the raw input, so an equivalent mapping and an
		// already built instance produce equal reports.
		return st.fail(&RecordError{Record: rt, Value: inst.Decompose(), Nested: rep})
	}
	st.substitute(inst)
	return true, nil
}

// matchAlternatives implements union matching for unions and optionals:
// alternatives in declared order, first match wins and keeps its
// substitution. On failure the field collects every alternative's findings
// in order, then one summarizing finding for the whole expression, so a
// report reads "couldn't be A (why), couldn't be B (why), doesn't match
// A | B".
func matchAlternatives(whole schema.Type, alts []schema.Type, value any, st *fieldState) (bool, error) {
	if len(alts) == 0 {
		return false, &errors.UnsupportedTypeError{
			Expr:   whole.ExternalForm(),
			Reason: "union has no alternatives",
		}
	}

	var collected []FieldError
	for _, alt := range alts {
		sub := &fieldState{}
		ok, err := matchType(alt, value, sub)
		if err != nil {
			return false, err
		}
		if ok {
			if sub.hasReplace {
				st.substitute(sub.replace)
			}
			return true, nil
		}
		collected = append(collected, sub.findings...)
	}

	st.findings = append(st.findings, collected...)
	return st.fail(&BasicError{Expected: whole, Value: value})
}

// matchList checks any slice value element by element against the element
// expression, stopping at the first failing element. On success the
// substitution is always a rebuilt []any holding the matched elements, so
// list data is canonical regardless of the slice type it arrived in.
func matchList(lt schema.ListType, value any, st *fieldState) (bool, error) {
	if isNilValue(value) {
		return st.fail(&BasicError{Expected: lt, Value: value})
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return st.fail(&BasicError{Expected: lt, Value: value})
	}

	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		sub := &fieldState{}
		ok, err := matchType(lt.Elem(), elem, sub)
		if err != nil {
			return false, err
		}
		if !ok {
			st.findings = append(st.findings, sub.findings...)
			return st.fail(&ListItemError{Index: i, Elem: lt.Elem(), Value: elem})
		}
		if sub.hasReplace {
			out[i] = sub.replace
		} else {
			out[i] = schema.Normalize(elem)
		}
	}

	st.substitute(out)
	return true, nil
}

// matchLiteral checks membership in the allowed set. An empty literal can
// never accept anything and is treated as a defect rather than a finding.
func matchLiteral(lt schema.LiteralType, value any, st *fieldState) (bool, error) {
	if lt.IsZero() {
		return false, &errors.UnsupportedTypeError{
			Expr:   lt.ExternalForm(),
			Reason: "literal has no allowed values",
		}
	}
	if lt.Contains(value) {
		return true, nil
	}
	return st.fail(&LiteralError{Allowed: lt, Value: value})
}

// isNilValue reports whether the value is nil in the sense the null
// primitive means it: the untyped nil, or a nil pointer, map, slice,
// interface, channel, or function wrapped in a non-nil interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
