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
	"math"
)

// Normalize converts a value to its canonical in-memory representation.
//
// Dynamic data reaches the engine from many producers, Go literals, JSON
// decoders, YAML decoders, and they disagree about numbers: the same field
// value can arrive as int, int32, uint16, float32, or json.Number. Matching
// by exact runtime type would then depend on which producer ran, so every
// value is canonicalized once at the boundary (construction, Set, the
// codecs, literal declarations) and the matcher sees one representation:
//
//   - signed and unsigned integers become int64
//   - uint64 values above math.MaxInt64 become float64, lossily, rather
//     than overflowing
//   - float32 becomes float64
//   - json.Number becomes int64 when it parses as one, float64 otherwise
//   - []any and map[string]any are rebuilt with normalized contents, so a
//     shared or default container is never aliased into an instance
//   - nil, bool, string, int64, and float64 pass through
//
// Everything else, record instances, user-defined types, typed slices like
// []string, passes through untouched: those represent themselves, and
// typed-slice element handling belongs to the list matcher.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case bool, string, int64, float64:
		return x
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return normalizeUint64(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return normalizeUint64(x)
	case uintptr:
		return normalizeUint64(uint64(x))
	case float32:
		return float64(x)
	case json.Number:
		return normalizeNumber(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

func normalizeUint64(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

func normalizeNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	// Out of float range too. Keep the textual form rather than invent a
	// value.
	return n.String()
}
