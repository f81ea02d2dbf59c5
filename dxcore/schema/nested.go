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

// NestedRecordTypes returns every record type reachable from this one's
// fields, at any nesting depth, through unions, optionals, and lists.
//
// The walk is a depth-first traversal in declaration order and each record
// type appears exactly once, at its first encounter, so the result is
// deterministic for a given declaration graph. Recursive and mutually
// recursive declarations terminate; the receiver itself appears only when
// one of its own fields (transitively) refers back to it. Returns nil when
// nothing record-shaped is reachable.
//
// Schema exporters use this to collect the full declaration graph behind a
// root record; it is also handy for tooling that audits which records a
// given record couples to.
func (rt *RecordType) NestedRecordTypes() []*RecordType {
	if rt == nil {
		return nil
	}

	visited := make(map[*RecordType]bool)
	var out []*RecordType

	var walkExpr func(t Type)
	walkFields := func(r *RecordType) {
		for _, f := range r.fields {
			walkExpr(f.Type)
		}
	}
	walkExpr = func(t Type) {
		switch v := t.(type) {
		case *RecordType:
			if v == nil || visited[v] {
				return
			}
			visited[v] = true
			out = append(out, v)
			walkFields(v)
		case UnionType, OptionalType, ListType:
			for _, child := range Arguments(v) {
				walkExpr(child)
			}
		}
	}

	walkFields(rt)
	return out
}
