// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"sort"
	"time"
)

// Organization is a tenant owning a set of configuration overrides.
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Overrides Overrides `json:"overrides"`

	// OverridesSchemaID is the schema the overrides were last accepted
	// under; zero until the first write.
	OverridesSchemaID int64 `json:"overrides_schema_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overrides is a sparse namespace -> field -> scalar mapping.
type Overrides map[string]map[string]any

// Get returns the override for namespace.field.
func (o Overrides) Get(namespace, field string) (any, bool) {
	fields, ok := o[namespace]
	if !ok {
		return nil, false
	}
	v, ok := fields[field]
	return v, ok
}

// Set stores value at namespace.field, creating the namespace map if needed.
func (o Overrides) Set(namespace, field string, value any) {
	fields, ok := o[namespace]
	if !ok {
		fields = make(map[string]any)
		o[namespace] = fields
	}
	fields[field] = value
}

// Len counts override entries across all namespaces.
func (o Overrides) Len() int {
	n := 0
	for _, fields := range o {
		n += len(fields)
	}
	return n
}

// Clone copies o. Values are scalars, so a two-level copy is a deep copy.
func (o Overrides) Clone() Overrides {
	if o == nil {
		return nil
	}
	out := make(Overrides, len(o))
	for ns, fields := range o {
		out[ns] = maps.Clone(fields)
	}
	return out
}

// Namespaces returns the namespace keys in sorted order.
func (o Overrides) Namespaces() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedFields returns the field keys of fields in sorted order.
func SortedFields(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CallerContext identifies who is writing overrides and from where.
type CallerContext struct {
	Subject     string `json:"subject,omitempty"`
	Role        string `json:"role"`
	Environment string `json:"environment"`
}

// StaleAuditReport summarizes one pass of the stale override audit.
type StaleAuditReport struct {
	SchemaID      int64               `json:"schema_id"`
	SchemaVersion string              `json:"schema_version"`
	Organizations int                 `json:"organizations"`
	Findings      []StaleAuditFinding `json:"findings,omitempty"`
}

// StaleAuditFinding lists the stale overrides of one organization.
type StaleAuditFinding struct {
	OrganizationID int64        `json:"organization_id"`
	Slug           string       `json:"slug"`
	Diagnostics    []Diagnostic `json:"diagnostics"`
}
