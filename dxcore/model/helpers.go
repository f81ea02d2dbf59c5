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

package model

import (
	"encoding/json"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch. This is the declaration-side workhorse of
// dxvalid: schema.NewRecordType runs it over the declared fields so that a
// record type with three broken fields reports all three at once instead of
// stopping at the first.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with contextual information including the model's position in the slice
// (zero-indexed) and its type name obtained from TypeName, so callers can
// identify exactly which entries failed and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error aggregating all individual failures via multierr. The
// combined error can be unpacked programmatically with multierr.Errors. If
// all models pass validation, the function returns nil. The function never
// panics and always processes the entire slice even when early elements fail,
// ensuring complete error reporting.
//
// Empty slices are considered valid and return nil. Nil pointers within the
// slice are handled according to the behavior of each model's Validate
// method.
//
// Example usage for batch validation of field declarations:
//
//	fields := []schema.Field{nameField, ageField, contactField}
//	if err := model.ValidateAll(fields); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	var err error

	for i, m := range models {
		if verr := m.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), verr))
		}
	}

	return err
}

// FilterZero returns a new slice containing only non-zero models by removing
// all instances where IsZero returns true. This provides a convenient way to
// clean slices of empty or uninitialized values before processing or
// serialization.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice. If all models in the input are zero,
// the function returns an empty slice (not nil). If the input slice is empty
// or nil, the function returns an empty non-nil slice.
//
// The function does not validate models; it only checks for zero values
// using IsZero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails, providing a
// convenient way to assert validity in contexts where an invalid value
// represents a programming error rather than a recoverable runtime error.
//
// The function invokes the model's Validate method. If validation succeeds,
// MustValidate returns the model unchanged, allowing inline initialization
// patterns. If validation fails, the function panics with a message that
// includes the model's type name and the validation error.
//
// Callers MUST only use MustValidate where panic is an acceptable control
// flow mechanism: test setup, package-level schema declarations executed
// during program startup, or tools where fatal errors should terminate
// execution. Callers MUST NOT use MustValidate in server code, request
// handlers, or any context where panic would disrupt availability.
//
// Example usage in a package-level schema declaration:
//
//	var phoneField = model.MustValidate(schema.NewField("phone", schema.String()))
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when explicitly
// requested.
//
// When unsafe is false (the default and recommended value for production
// logging), SafeString invokes the model's Redacted method, masking declared
// defaults, literal alternatives, and captured value representations. When
// unsafe is true, SafeString invokes String and the output MAY carry user
// data from the documents being validated; callers MUST only set unsafe in
// controlled debugging scenarios.
//
// The function provides a single call site for this decision, making logging
// behavior easy to audit.
//
// Example:
//
//	log.Printf("schema: %s", model.SafeString(recordType, false)) // Redacted()
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is in
// a consistent state. This is the safe diagnostic-output path: it enforces
// the contract that only well-formed declarations and reports are serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToJSON returns an error wrapping the failure with the model's type
// name, and no marshaling is attempted. If validation succeeds, ToJSON
// invokes json.Marshal; the model's MarshalJSON method is used when
// implemented, allowing custom rendering such as external-form type
// expressions inside reports.
//
// Callers MAY call json.Marshal directly when they have already validated
// the model, trading safety for performance.
//
// Example usage for emitting a validation report to an API response:
//
//	data, err := model.ToJSON(report)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is in
// a consistent state, mirroring ToJSON for YAML consumers.
//
// The function first invokes the model's Validate method. If validation
// fails, ToYAML returns an error wrapping the failure with the model's type
// name, and no marshaling is attempted. If validation succeeds, ToYAML
// invokes yaml.Marshal; the model's MarshalYAML method is used when
// implemented.
//
// Example usage for dumping a record type declaration into documentation:
//
//	data, err := model.ToYAML(recordType)
//	if err != nil {
//	    return err
//	}
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the representations byte-for-byte. This provides a generic deep
// equality that works for any Model type without type-specific comparison
// logic, at the cost of serialization overhead.
//
// If either marshaling operation fails, Equal returns false without
// comparing partial results, so comparison errors are not mistaken for
// equality. Two models are considered equal if and only if their JSON
// representations are identical after marshaling.
//
// The engine's idempotence guarantee is checked in exactly these terms: a
// repeated validation run over an unchanged instance MUST produce a report
// Equal to the previous one.
//
// JSON-based comparison has known limits: unexported fields do not
// participate, and map iteration order MUST be made deterministic by the
// MarshalJSON implementation (record.Report sorts its field names). For
// hot paths, types SHOULD implement Comparable[T] with hand-written logic
// instead.
//
// Example:
//
//	if model.Equal(before, after) {
//	    // re-validation changed nothing
//	}
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
