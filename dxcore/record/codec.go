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
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxvalid/dxcore/errors"
	"dirpx.dev/dxvalid/dxcore/schema"
)

// FromJSON decodes a JSON object and constructs an instance of rt from it.
//
// Numbers are decoded with UseNumber and then canonicalized, so integral
// JSON numbers arrive as int64 and fractional ones as float64 instead of
// everything collapsing to float64. A document that is valid JSON but not
// an object fails with an *errors.UnmarshalError; an object with unknown or
// missing fields fails construction like New does; and a well-formed object
// with non-conforming values succeeds, carrying its findings:
//
//	person, err := record.FromJSON(personType, payload)
//	if err != nil {
//		return err
//	}
//	if rep := person.Errors(); rep != nil {
//		log.Printf("rejected: %s", rep)
//	}
func FromJSON(rt *schema.RecordType, data []byte) (*Instance, error) {
	if rt == nil {
		return nil, &errors.UnsupportedTypeError{Reason: "no record type"}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &errors.UnmarshalError{
			Type:   rt.Name(),
			Data:   data,
			Reason: err.Error(),
		}
	}

	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, &errors.UnmarshalError{
			Type:   rt.Name(),
			Data:   data,
			Reason: "JSON document is not an object",
		}
	}
	return New(rt, mapping)
}

// FromYAML decodes a YAML mapping and constructs an instance of rt from it,
// with the same outcome contract as FromJSON.
func FromYAML(rt *schema.RecordType, data []byte) (*Instance, error) {
	if rt == nil {
		return nil, &errors.UnsupportedTypeError{Reason: "no record type"}
	}

	var mapping map[string]any
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, &errors.UnmarshalError{
			Type:   rt.Name(),
			Data:   data,
			Reason: err.Error(),
		}
	}
	if mapping == nil {
		return nil, &errors.UnmarshalError{
			Type:   rt.Name(),
			Data:   data,
			Reason: "YAML document is not a mapping",
		}
	}
	return New(rt, mapping)
}
