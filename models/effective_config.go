// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EffectiveConfig is the complete configuration for one organization:
// every field of the schema it was resolved against, with defaults filled in
// wherever no valid override exists.
type EffectiveConfig struct {
	SchemaID      int64                     `json:"schema_id,omitempty"`
	SchemaVersion string                    `json:"schema_version"`
	Values        map[string]map[string]any `json:"values"`
	Diagnostics   []Diagnostic              `json:"diagnostics,omitempty"`
}

// Value returns the resolved value at namespace.field.
func (c EffectiveConfig) Value(namespace, field string) (any, bool) {
	fields, ok := c.Values[namespace]
	if !ok {
		return nil, false
	}
	v, ok := fields[field]
	return v, ok
}

// Diagnostic is a non-fatal note produced during resolution.
type Diagnostic struct {
	Code      ViolationCode `json:"code"`
	Layer     string        `json:"layer"`
	Namespace string        `json:"namespace"`
	Field     string        `json:"field"`
	Value     any           `json:"value,omitempty"`
	Reason    string        `json:"reason"`
}
