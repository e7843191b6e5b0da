// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-config-engine/models"
)

const (
	schemasTable       = "config_schemas"
	organizationsTable = "organizations"
)

var (
	schemaColumns       = []string{"id", "version", "state", "document", "created_at", "updated_at", "activated_at"}
	organizationColumns = []string{"id", "name", "slug", "overrides", "overrides_schema_id", "created_at", "updated_at"}
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchemaRecord(row rowScanner) (models.SchemaRecord, error) {
	var (
		record      models.SchemaRecord
		document    []byte
		activatedAt sql.NullTime
	)

	if err := row.Scan(
		&record.ID,
		&record.Version,
		&record.State,
		&document,
		&record.CreatedAt,
		&record.UpdatedAt,
		&activatedAt,
	); err != nil {
		return models.SchemaRecord{}, err
	}

	doc, err := decodeSchemaDocument(document)
	if err != nil {
		return models.SchemaRecord{}, err
	}
	record.Document = doc
	if activatedAt.Valid {
		at := activatedAt.Time
		record.ActivatedAt = &at
	}

	return record, nil
}

func scanOrganization(row rowScanner) (models.Organization, error) {
	var (
		org       models.Organization
		overrides []byte
		schemaID  sql.NullInt64
	)

	if err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Slug,
		&overrides,
		&schemaID,
		&org.CreatedAt,
		&org.UpdatedAt,
	); err != nil {
		return models.Organization{}, err
	}

	decoded, err := decodeOverrides(overrides)
	if err != nil {
		return models.Organization{}, err
	}
	org.Overrides = decoded
	org.OverridesSchemaID = schemaID.Int64

	return org, nil
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newNumberDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec
}

func decodeSchemaDocument(data []byte) (models.SchemaDocument, error) {
	var doc models.SchemaDocument
	if err := newNumberDecoder(data).Decode(&doc); err != nil {
		return models.SchemaDocument{}, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	for i := range doc.Namespaces {
		for j := range doc.Namespaces[i].Fields {
			f := &doc.Namespaces[i].Fields[j]
			f.Default = fromJSONNumber(f.Default)
			f.Min = fromJSONNumber(f.Min)
			f.Max = fromJSONNumber(f.Max)
			for k := range f.Choices {
				f.Choices[k] = fromJSONNumber(f.Choices[k])
			}
		}
	}

	return doc, nil
}

func decodeOverrides(data []byte) (models.Overrides, error) {
	overrides := make(models.Overrides)
	if len(data) == 0 {
		return overrides, nil
	}
	if err := newNumberDecoder(data).Decode(&overrides); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	for _, fields := range overrides {
		for name, v := range fields {
			fields[name] = fromJSONNumber(v)
		}
	}

	return overrides, nil
}

// fromJSONNumber turns a json.Number into int64 when it is integral and
// float64 otherwise. Other values pass through.
func fromJSONNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
