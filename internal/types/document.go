// Package types provides type definitions for structured data used throughout the doccheck engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentType identifies a supported Ontario estate document.
type DocumentType string

const (
	// DocumentWill is a last will and testament.
	DocumentWill DocumentType = "will"
	// DocumentPOAProperty is a continuing power of attorney for property.
	DocumentPOAProperty DocumentType = "poa_property"
	// DocumentPOAPersonalCare is a power of attorney for personal care.
	DocumentPOAPersonalCare DocumentType = "poa_personal_care"
)

// SupportedDocumentTypes lists all document types the engine can evaluate,
// in stable display order.
var SupportedDocumentTypes = []DocumentType{
	DocumentWill,
	DocumentPOAProperty,
	DocumentPOAPersonalCare,
}

// ParseDocumentType converts a raw string into a DocumentType.
// Returns false if the string does not name a supported type.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocumentWill, DocumentPOAProperty, DocumentPOAPersonalCare:
		return DocumentType(s), true
	}
	return "", false
}

// Severity classifies how serious a violation is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// RiskLevel buckets a 0-1 risk score into a discrete level.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Fields is the caller-supplied document field data. Values may be strings,
// lists, or nested maps; the engine never mutates it and enforces no schema
// beyond what individual requirement checks need.
type Fields map[string]any
