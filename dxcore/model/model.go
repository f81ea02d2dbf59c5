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

// Package model defines the core contracts that dxvalid declaration and
// diagnostic types implement to ensure consistency and proper behavior
// across the engine.
//
// The types that describe schemas (schema.Kind, schema.Field,
// schema.RecordType) and the types that describe validation outcomes
// (record.Report) SHOULD implement the Model interface or its constituent
// parts (Validatable, Loggable, Identifiable, ZeroCheckable). These
// interfaces establish a common contract for self-validation, safe string
// rendering, type identification, and zero-value detection that enables the
// generic operations in this package and guarantees safety at compile time.
//
// Model deliberately does NOT require round-trip serialization. dxvalid's
// aggregate types marshal one way, as diagnostics: an error report or a
// record type declaration is rendered to JSON or YAML for humans and API
// consumers, but is never reconstructed from such a document (record types
// are built in code, reports are built by the engine). The Serializable
// contract is therefore separate and is implemented only where a full
// round-trip is meaningful, such as the Kind enum.
//
// Unless explicitly documented otherwise, implementations are not thread-safe
// for concurrent mutation. Declaration types are designed as immutable after
// construction, making them naturally safe for concurrent read access.
// Callers MUST synchronize any concurrent writes to mutable instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, MustValidate,
// ToJSON, ToYAML, and Equal. These helpers rely on the Model contract and
// will fail at compile time if applied to types that do not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining the fundamental contracts required
// of dxvalid declaration and diagnostic types. Any type implementing Model
// gains automatic support for validation, safe logging, type identification,
// and zero-value detection, and can participate in the generic helpers of
// this package.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// declaration integrity by checking invariants; Loggable offers both safe
// (redacted) and full string representations; Identifiable supplies a
// canonical type name; and ZeroCheckable detects empty or uninitialized
// instances.
//
// Model instances are generally treated as immutable value types. Methods
// defined on Model SHOULD NOT mutate the receiver unless explicitly
// documented. Concurrent reads are safe; concurrent writes require external
// synchronization.
//
// Example implementation:
//
//	type MyDecl struct {
//	    Name string
//	}
//
//	func (d MyDecl) Validate() error {
//	    if d.Name == "" {
//	        return errors.New("name required")
//	    }
//	    return nil
//	}
//
//	func (d MyDecl) TypeName() string { return "MyDecl" }
//	func (d MyDecl) IsZero() bool     { return d.Name == "" }
//	func (d MyDecl) Redacted() string { return "MyDecl{...}" }
//	func (d MyDecl) String() string   { return "MyDecl{Name:" + d.Name + "}" }
//
//	var _ Model = (*MyDecl)(nil)  // Compile-time check
type Model interface {
	Validatable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
// Every declaration type MUST implement Validate to verify that all
// invariants hold and that the instance is in a consistent state suitable
// for use by the matcher engine.
//
// The Validate method MUST check all required fields for non-empty or
// non-zero values, verify cross-field consistency (for example, that a union
// has at least one alternative), recursively validate any nested declarations
// by calling their Validate methods, and return nil if and only if the
// instance is fully valid. When validation fails, the returned error MUST
// describe what is invalid in a way that helps callers diagnose and fix the
// problem. Generic messages such as "validation failed" are discouraged;
// prefer specific messages like "Field.Name must not be empty".
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state.
//
// Note the asymmetry that defines this engine: Validate on a DECLARATION
// type answers "is this schema well-formed", and a failure is an error in
// the Go sense. Whether a VALUE conforms to a schema is a different question
// with a different answer shape (a record.Report), asked through
// record.Instance, not through this contract.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML. A value serialized to JSON and then deserialized MUST equal the
// original value, and the same MUST hold for YAML.
//
// In dxvalid only enum-like types (schema.Kind) implement the full contract:
// their textual names are stable external vocabulary that appears in
// configuration and documents. Aggregate types (Field, RecordType, Report)
// implement the marshal half only, since they are never reconstructed from
// documents, and are deliberately NOT Serializable.
//
// Implementations MUST validate before marshaling so that only well-formed
// values are written out, and MUST validate after unmarshaling so that
// malformed external input is rejected at the boundary. Implementations
// SHOULD use the "type alias" pattern where delegation to the standard
// library marshalers is needed, to avoid infinite recursion.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not safe for concurrent
// use; callers MUST ensure exclusive access during unmarshaling.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. It MUST hide or mask data-bearing parts while preserving enough
// structure for troubleshooting. Schema declarations are structural and
// mostly safe, with one exception this engine cares about: declared default
// values and literal alternatives can carry user data, so Redacted forms
// MUST replace them with a placeholder. Redacted MUST be fast, MUST NOT
// perform I/O, MUST be safe to call concurrently, and MUST NOT mutate the
// receiver.
//
// The String method returns the full human-readable representation,
// including default values and literal alternatives. It is intended for
// development, debugging, and test assertions. Production log statements
// SHOULD prefer Redacted.
//
// If a type contains nested Loggable values, Redacted SHOULD call Redacted
// on them so redaction is consistent throughout the graph.
type Loggable interface {
	// Redacted returns a safe string representation suitable for production
	// logging, with data-bearing parts (defaults, literal values) masked.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Redacted() string

	// String returns a full human-readable representation of the instance.
	// It MAY include declared data values and SHOULD NOT be used in
	// production logs; use Redacted instead.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name, enabling debugging, structured error messages,
// and generic helpers that need to name the failing type.
//
// The name returned by TypeName MUST be constant for a given type: all
// instances of the same type MUST return the same name. The name MUST be
// unique within dxvalid, SHOULD follow CamelCase convention (for example,
// "Kind", "Field", "RecordType", "Report"), and MUST NOT include a package
// prefix. The name identifies the type, not the instance.
//
// TypeName MUST be fast, SHOULD return a string constant, MUST NOT have
// side effects, and MUST be safe to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this type. The name MUST be
	// constant for the type, unique within dxvalid, in CamelCase, and
	// without a package prefix.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently. It SHOULD return a string
	// constant.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection,
// short-circuiting on empty inputs, and better error messages (for example,
// "record type has no fields" instead of a generic validation failure).
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful data is present. A Field with an empty name
// and no type expression is zero. A Report with no entries is zero, and a
// zero Report is the successful outcome of a validation run.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. It MUST be fast, deterministic and idempotent, MUST NOT allocate,
// MUST NOT have side effects, and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types that
// require equality testing in tests, assertions, or engine logic (the
// idempotence guarantee of validation is stated in terms of report
// equality).
//
// The Equal method MUST be reflexive, symmetric, transitive, and consistent
// across calls. Equal SHOULD compare all semantically significant fields
// and ignore internal or cached state. Nested values SHOULD be compared
// deeply, recursively using Equal where available.
//
// Note that declared-type identity in dxvalid is POINTER identity: two
// *schema.RecordType values with identical field sets are distinct types by
// design and MUST NOT compare equal. Equality contracts on declaration
// types respect that rule.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. It returns true if both instances represent the same
	// logical value, false otherwise.
	//
	// This method MUST NOT mutate the receiver or the argument, MUST NOT
	// have side effects, and MUST be safe to call concurrently.
	Equal(other T) bool
}
