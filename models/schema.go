// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SchemaState is a stored schema's position in its lifecycle:
// draft -> validated -> active -> superseded.
type SchemaState string

const (
	// SchemaStateDraft is a stored schema that has not been checked yet.
	SchemaStateDraft SchemaState = "draft"
	// SchemaStateValidated is a schema that passed validation and can be activated.
	SchemaStateValidated SchemaState = "validated"
	// SchemaStateActive is the single schema overrides are validated against.
	SchemaStateActive SchemaState = "active"
	// SchemaStateSuperseded is a formerly active schema. It is kept for
	// history and never becomes active again.
	SchemaStateSuperseded SchemaState = "superseded"
)

// IsKnown reports whether s is a lifecycle state.
func (s SchemaState) IsKnown() bool {
	switch s {
	case SchemaStateDraft, SchemaStateValidated, SchemaStateActive, SchemaStateSuperseded:
		return true
	}
	return false
}

// Schema is a validated, typed schema. It is only produced by the schema
// validator and is never mutated afterwards.
type Schema struct {
	// ID is the store identifier; zero for a schema that was never stored.
	ID          int64
	Version     string
	Description string
	Namespaces  []Namespace
}

// Namespace groups related fields.
type Namespace struct {
	Name        string
	Description string
	Fields      []FieldDefinition
}

// Namespace looks a namespace up by name.
func (s Schema) Namespace(name string) (Namespace, bool) {
	for _, ns := range s.Namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return Namespace{}, false
}

// Field looks a field up by name.
func (n Namespace) Field(name string) (FieldDefinition, bool) {
	for _, f := range n.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// Lookup finds the field addressed by namespace and field name.
func (s Schema) Lookup(namespace, field string) (FieldDefinition, bool) {
	ns, ok := s.Namespace(namespace)
	if !ok {
		return FieldDefinition{}, false
	}
	return ns.Field(field)
}

// Defaults returns namespace -> field -> default value for every field.
func (s Schema) Defaults() map[string]map[string]any {
	values := make(map[string]map[string]any, len(s.Namespaces))
	for _, ns := range s.Namespaces {
		fields := make(map[string]any, len(ns.Fields))
		for _, f := range ns.Fields {
			fields[f.Name] = f.Default()
		}
		values[ns.Name] = fields
	}
	return values
}

// Document converts the typed schema back into its authored form.
func (s Schema) Document() SchemaDocument {
	doc := SchemaDocument{
		Version:     s.Version,
		Description: s.Description,
		Namespaces:  make([]NamespaceDocument, 0, len(s.Namespaces)),
	}
	for _, ns := range s.Namespaces {
		nsDoc := NamespaceDocument{
			Name:        ns.Name,
			Description: ns.Description,
			Fields:      make([]FieldDocument, 0, len(ns.Fields)),
		}
		for _, f := range ns.Fields {
			nsDoc.Fields = append(nsDoc.Fields, f.Document())
		}
		doc.Namespaces = append(doc.Namespaces, nsDoc)
	}
	return doc
}

// SchemaRecord is a schema as persisted by the store, together with its
// lifecycle state. The document is kept in authored form.
type SchemaRecord struct {
	ID          int64          `json:"id"`
	Version     string         `json:"version"`
	State       SchemaState    `json:"state"`
	Document    SchemaDocument `json:"document"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	ActivatedAt *time.Time     `json:"activated_at,omitempty"`
}

// IsActive reports whether the record is the active schema.
func (r SchemaRecord) IsActive() bool {
	return r.State == SchemaStateActive
}

// SchemaFilter narrows a schema listing. A zero filter matches everything.
type SchemaFilter struct {
	State SchemaState
}

// ActivationRecord describes a completed activation.
type ActivationRecord struct {
	SchemaID int64  `json:"schema_id"`
	Version  string `json:"version"`

	// PreviousSchemaID is zero when no schema was active before.
	PreviousSchemaID int64  `json:"previous_schema_id,omitempty"`
	PreviousVersion  string `json:"previous_version,omitempty"`

	ActivatedAt time.Time `json:"activated_at"`
}
