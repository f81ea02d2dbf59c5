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

// AnyType is the type expression that accepts every value, including nil.
// It never records findings and never substitutes anything.
type AnyType struct{}

// Any returns the type expression that accepts every value.
func Any() AnyType {
	return AnyType{}
}

// Kind returns KindAny.
func (t AnyType) Kind() Kind {
	return KindAny
}

// ExternalForm renders as "any".
func (t AnyType) ExternalForm() string {
	return "any"
}

// String returns the same rendering as ExternalForm.
func (t AnyType) String() string {
	return t.ExternalForm()
}

// Redacted returns the same rendering as String.
func (t AnyType) Redacted() string {
	return t.String()
}

// TypeName returns "AnyType".
func (t AnyType) TypeName() string {
	return "AnyType"
}

// IsZero always reports false. AnyType carries no state, and the empty
// struct is the expression itself rather than an absent one.
func (t AnyType) IsZero() bool {
	return false
}

// Equal reports whether other is also the any expression.
func (t AnyType) Equal(other Type) bool {
	_, ok := other.(AnyType)
	return ok
}

// Validate always returns nil.
func (t AnyType) Validate() error {
	return nil
}

func (t AnyType) isType() {}

var _ Type = AnyType{}
