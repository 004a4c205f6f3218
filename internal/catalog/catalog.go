// Package catalog provides the immutable rule catalog and case reference
// index the engine evaluates against. Tables are loaded and validated once
// at process start and injected by reference; nothing here mutates after Load.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mlaurier/doccheck/internal/types"
)

// EmptyCatalogError signals that no rules or cases are available for a
// supported document type. This is the one fatal load error: the engine
// cannot produce a meaningful result with zero rules.
type EmptyCatalogError struct {
	DocumentType types.DocumentType
	What         string // "requirements" or "case references"
}

func (e *EmptyCatalogError) Error() string {
	if e.DocumentType != "" {
		return fmt.Sprintf("empty catalog: no %s loaded for document type %q", e.What, e.DocumentType)
	}
	return fmt.Sprintf("empty catalog: no %s loaded", e.What)
}

// InvalidEntryError reports a catalog entry that failed structural validation.
type InvalidEntryError struct {
	Entry string
	Cause error
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("invalid catalog entry %s: %v", e.Entry, e.Cause)
}

func (e *InvalidEntryError) Unwrap() error {
	return e.Cause
}

// Catalog holds the per-document-type requirement tables and the case
// reference index. Safe for concurrent use; all accessors are read-only.
type Catalog struct {
	requirements map[types.DocumentType][]types.Requirement
	byID         map[string]types.Requirement
	cases        []types.CaseReference
}

// Load builds the catalog from the built-in tables.
func Load() (*Catalog, error) {
	return New(map[types.DocumentType][]types.Requirement{
		types.DocumentWill:            willRequirements,
		types.DocumentPOAProperty:     poaPropertyRequirements,
		types.DocumentPOAPersonalCare: poaPersonalCareRequirements,
	}, caseReferences)
}

// New builds a catalog from caller-supplied tables, validating every entry.
// Each supported document type must have at least one requirement and the
// case index must be non-empty.
func New(requirements map[types.DocumentType][]types.Requirement, cases []types.CaseReference) (*Catalog, error) {
	v := validator.New()

	c := &Catalog{
		requirements: make(map[types.DocumentType][]types.Requirement, len(requirements)),
		byID:         make(map[string]types.Requirement),
	}

	for _, dt := range types.SupportedDocumentTypes {
		reqs := requirements[dt]
		if len(reqs) == 0 {
			return nil, &EmptyCatalogError{DocumentType: dt, What: "requirements"}
		}
		for _, req := range reqs {
			if err := v.Struct(req); err != nil {
				return nil, &InvalidEntryError{Entry: fmt.Sprintf("requirement %q (%s)", req.ID, dt), Cause: err}
			}
			if _, dup := c.byID[req.ID]; dup {
				return nil, &InvalidEntryError{Entry: fmt.Sprintf("requirement %q (%s)", req.ID, dt), Cause: fmt.Errorf("duplicate requirement ID")}
			}
			c.byID[req.ID] = req
		}
		c.requirements[dt] = reqs
	}

	if len(cases) == 0 {
		return nil, &EmptyCatalogError{What: "case references"}
	}
	for i, cr := range cases {
		if err := v.Struct(cr); err != nil {
			return nil, &InvalidEntryError{Entry: fmt.Sprintf("case reference #%d (%s)", i, cr.CaseName), Cause: err}
		}
	}
	c.cases = cases

	return c, nil
}

// Supports reports whether the catalog carries rules for the document type.
func (c *Catalog) Supports(dt types.DocumentType) bool {
	_, ok := c.requirements[dt]
	return ok
}

// Requirements returns the requirement table for a document type in catalog
// order. Returns nil for unsupported types.
func (c *Catalog) Requirements(dt types.DocumentType) []types.Requirement {
	return c.requirements[dt]
}

// Requirement looks up a single requirement by ID across all document types.
func (c *Catalog) Requirement(id string) (types.Requirement, bool) {
	req, ok := c.byID[id]
	return req, ok
}

// Category returns the category of a requirement, or "" if unknown.
func (c *Catalog) Category(requirementID string) string {
	return c.byID[requirementID].Category
}

// Cases returns the full case reference index in load order.
func (c *Catalog) Cases() []types.CaseReference {
	return c.cases
}
