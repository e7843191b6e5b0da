// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ViolationCode is the machine-readable kind of a validation problem or
// resolution diagnostic.
type ViolationCode string

// Schema violation codes.
const (
	// CodeDuplicateName flags a namespace or field name declared twice.
	CodeDuplicateName ViolationCode = "duplicate_name"
	// CodeInconsistentConstraint flags a field whose type, bounds, choices or
	// policy lists cannot be satisfied together.
	CodeInconsistentConstraint ViolationCode = "inconsistent_constraint"
	// CodeInvalidDefault flags a default that breaks its own field's constraints.
	CodeInvalidDefault ViolationCode = "invalid_default"
	// CodeInvalidIdentifier flags a namespace or field name with characters
	// outside ASCII letters, digits and underscore.
	CodeInvalidIdentifier ViolationCode = "invalid_identifier"
	// CodeInvalidVersion flags a version that is not a plain MAJOR.MINOR.PATCH tag.
	CodeInvalidVersion ViolationCode = "invalid_version"
	// CodeEmptySchema flags a schema that declares no namespaces.
	CodeEmptySchema ViolationCode = "empty_schema"
)

// Override violation codes.
const (
	// CodeUnknownNamespace flags a namespace the active schema does not declare.
	CodeUnknownNamespace ViolationCode = "unknown_namespace"
	// CodeUnknownField flags a field its namespace does not declare.
	CodeUnknownField ViolationCode = "unknown_field"
	// CodeImmutableField flags an override of a field marked mutable: false.
	CodeImmutableField ViolationCode = "immutable_field"
	// CodeRoleNotPermitted flags a field the caller's role may not change.
	CodeRoleNotPermitted ViolationCode = "role_not_permitted"
	// CodeEnvironmentNotPermitted flags a field the caller's environment may not change.
	CodeEnvironmentNotPermitted ViolationCode = "environment_not_permitted"
	// CodeTypeMismatch flags a value whose type differs from the field's.
	CodeTypeMismatch ViolationCode = "type_mismatch"
	// CodeOutOfRange flags a number below min or above max.
	CodeOutOfRange ViolationCode = "out_of_range"
	// CodeInvalidChoice flags a value missing from the field's choices.
	CodeInvalidChoice ViolationCode = "invalid_choice"
)

// CodeStaleOverrideIgnored marks a stored override the resolver skipped.
const CodeStaleOverrideIgnored ViolationCode = "stale_override_ignored"

// Violation is one problem found in a schema or override document.
type Violation struct {
	Code      ViolationCode `json:"code"`
	Namespace string        `json:"namespace,omitempty"`
	Field     string        `json:"field,omitempty"`
	Message   string        `json:"message"`
}

// Path renders the violation location as "namespace.field".
func (v Violation) Path() string {
	switch {
	case v.Namespace == "" && v.Field == "":
		return ""
	case v.Field == "":
		return v.Namespace
	default:
		return v.Namespace + "." + v.Field
	}
}

// String renders the violation as "path: message (code)", dropping the
// path when the violation is document-wide.
func (v Violation) String() string {
	if path := v.Path(); path != "" {
		return fmt.Sprintf("%s: %s (%s)", path, v.Message, v.Code)
	}
	return fmt.Sprintf("%s (%s)", v.Message, v.Code)
}

// SchemaViolations is every problem found in one schema document.
type SchemaViolations []Violation

// Error lists every violation after a "schema is invalid" prefix.
func (v SchemaViolations) Error() string {
	return joinViolations("schema is invalid", v)
}

// Has reports whether any violation carries code.
func (v SchemaViolations) Has(code ViolationCode) bool {
	return hasCode(v, code)
}

// OverrideViolations is every problem found in one proposed override
// document. Any violation rejects the whole document.
type OverrideViolations []Violation

// Error lists every violation after an "overrides are invalid" prefix.
func (v OverrideViolations) Error() string {
	return joinViolations("overrides are invalid", v)
}

// Has reports whether any violation carries code.
func (v OverrideViolations) Has(code ViolationCode) bool {
	return hasCode(v, code)
}

func joinViolations(prefix string, violations []Violation) string {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s: %s", prefix, strings.Join(parts, "; "))
}

func hasCode(violations []Violation, code ViolationCode) bool {
	for _, v := range violations {
		if v.Code == code {
			return true
		}
	}
	return false
}
