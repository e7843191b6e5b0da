// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned by [ParseSchemaDocument] for blank input.
var ErrEmptyDocument = errors.New("schema document is empty")

// SchemaDocument is the authored form of a schema, as submitted by a schema
// author before validation. Namespaces and fields are lists so that
// duplicate names survive decoding and can be reported.
type SchemaDocument struct {
	Version     string              `json:"version" yaml:"version"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Namespaces  []NamespaceDocument `json:"namespaces" yaml:"namespaces"`
}

// NamespaceDocument is the authored form of a namespace.
type NamespaceDocument struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldDocument `json:"fields" yaml:"fields"`
}

// FieldDocument is the authored form of a field. Constraint values are
// untyped because authors may get them wrong; the schema validator turns a
// FieldDocument into a typed [FieldDefinition] or reports why it cannot.
type FieldDocument struct {
	Name    string    `json:"name" yaml:"name"`
	Type    FieldType `json:"type" yaml:"type"`
	Default any       `json:"default" yaml:"default"`
	Min     any       `json:"min,omitempty" yaml:"min,omitempty"`
	Max     any       `json:"max,omitempty" yaml:"max,omitempty"`
	Choices []any     `json:"choices,omitempty" yaml:"choices,omitempty"`

	// Mutable defaults to true when absent.
	Mutable *bool `json:"mutable,omitempty" yaml:"mutable,omitempty"`

	AllowedRoles        []string `json:"allowed_roles,omitempty" yaml:"allowed_roles,omitempty"`
	AllowedEnvironments []string `json:"allowed_environments,omitempty" yaml:"allowed_environments,omitempty"`
	Description         string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// IsMutable resolves the optional mutable flag.
func (f FieldDocument) IsMutable() bool {
	return f.Mutable == nil || *f.Mutable
}

// ParseSchemaDocument decodes a schema document written in YAML or JSON.
// JSON is accepted because it is a subset of YAML; integer literals decode
// as int and fractional ones as float64, which keeps "5" and "5.0" apart.
func ParseSchemaDocument(data []byte) (SchemaDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return SchemaDocument{}, ErrEmptyDocument
	}

	var doc SchemaDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return SchemaDocument{}, fmt.Errorf("error decoding schema document: %w", err)
	}

	return doc, nil
}

// MarshalYAMLBytes renders the document as YAML.
func (d SchemaDocument) MarshalYAMLBytes() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(d); err != nil {
		return nil, fmt.Errorf("error encoding schema document: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("error encoding schema document: %w", err)
	}
	return buf.Bytes(), nil
}

// Clone returns a deep copy of d.
func (d SchemaDocument) Clone() SchemaDocument {
	out := d
	if d.Namespaces == nil {
		return out
	}
	out.Namespaces = make([]NamespaceDocument, len(d.Namespaces))
	for i, ns := range d.Namespaces {
		out.Namespaces[i] = ns
		if ns.Fields == nil {
			continue
		}
		out.Namespaces[i].Fields = make([]FieldDocument, len(ns.Fields))
		for j, f := range ns.Fields {
			f.Choices = slices.Clone(f.Choices)
			f.AllowedRoles = slices.Clone(f.AllowedRoles)
			f.AllowedEnvironments = slices.Clone(f.AllowedEnvironments)
			if f.Mutable != nil {
				mutable := *f.Mutable
				f.Mutable = &mutable
			}
			out.Namespaces[i].Fields[j] = f
		}
	}
	return out
}

// ParseOverrides decodes an override document written in YAML or JSON.
// Blank input is an empty document.
func ParseOverrides(data []byte) (Overrides, error) {
	overrides := Overrides{}
	if len(bytes.TrimSpace(data)) == 0 {
		return overrides, nil
	}

	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("error decoding override document: %w", err)
	}
	if overrides == nil {
		overrides = Overrides{}
	}
	return overrides, nil
}
