// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries build-time metadata injected by linker flags.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// NewBuildInfo fills unset values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Health status values.
const (
	// HealthOK means the storage backend answered its ping.
	HealthOK = "ok"
	// HealthDegraded means the process is up but storage is unreachable.
	HealthDegraded = "degraded"
)

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status  string    `json:"status"`
	Storage string    `json:"storage"`
	Build   BuildInfo `json:"build"`
}
