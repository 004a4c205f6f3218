// Package caselaw provides keyword-based retrieval over the static case
// reference index. Retrieval produces citation material only; no legal
// reasoning happens here.
package caselaw

import (
	"sort"
	"strings"

	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

const (
	// maxResults is the number of cases returned per query.
	maxResults = 5
	// documentTypeBonus is added when a case's relevance tags contain the
	// exact document type.
	documentTypeBonus = 2
)

// freeTextKeywords is the vocabulary matched against free text to extract
// query tokens. It mirrors the risk keyword tables: a word that raises risk
// is a word worth searching precedent for.
var freeTextKeywords = []string{
	"contest", "dispute", "challenge", "abuse", "undue influence",
	"dementia", "alzheimer", "confusion", "medication", "capacity",
	"pressure", "isolated", "dependent", "caregiver",
}

// Retriever finds case references relevant to a set of violations.
type Retriever struct {
	cat *catalog.Catalog
}

// NewRetriever creates a retriever bound to a loaded catalog.
func NewRetriever(cat *catalog.Catalog) *Retriever {
	return &Retriever{cat: cat}
}

// scoredCase pairs a case with its relevance score and original index for
// stable tie-breaking.
type scoredCase struct {
	ref   types.CaseReference
	score int
	index int
}

// FindRelevant returns up to maxResults cases ordered by relevance score
// descending. Ties keep catalog load order so output is deterministic.
// Cases that match no query token are never returned.
func (r *Retriever) FindRelevant(dt types.DocumentType, violations []types.Violation, freeText string) []types.CaseReference {
	tokens := r.queryTokens(dt, violations, freeText)
	if len(tokens) == 0 {
		return nil
	}

	var scored []scoredCase
	for i, ref := range r.cat.Cases() {
		score := relevanceScore(ref, dt, tokens)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredCase{ref: ref, score: score, index: i})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	refs := make([]types.CaseReference, 0, len(scored))
	for _, sc := range scored {
		refs = append(refs, sc.ref)
	}
	return refs
}

// queryTokens builds the ordered, deduplicated query token set from the
// document type, the categories of violated requirements, and risk
// vocabulary found in the free text.
func (r *Retriever) queryTokens(dt types.DocumentType, violations []types.Violation, freeText string) []string {
	seen := make(map[string]bool)
	var tokens []string

	add := func(token string) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || seen[token] {
			return
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	add(string(dt))
	for _, v := range violations {
		add(r.cat.Category(v.RequirementID))
	}
	lower := strings.ToLower(freeText)
	for _, keyword := range freeTextKeywords {
		if strings.Contains(lower, keyword) {
			add(keyword)
		}
	}

	return tokens
}

// relevanceScore counts how many query tokens appear in the case's
// searchable text, plus the document-type bonus for an exact tag match.
func relevanceScore(ref types.CaseReference, dt types.DocumentType, tokens []string) int {
	haystack := strings.ToLower(strings.Join(append([]string{
		ref.CaseName,
		ref.Summary,
		strings.Join(ref.RelevanceTags, " "),
	}, ref.KeyPrinciples...), " "))

	score := 0
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			score++
		}
	}
	if score == 0 {
		return 0
	}
	for _, tag := range ref.RelevanceTags {
		if strings.EqualFold(tag, string(dt)) {
			score += documentTypeBonus
			break
		}
	}
	return score
}
