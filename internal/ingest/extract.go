// Package ingest extracts draft case reference records from fetched
// case-law pages. Output is maintenance material for the catalog: a human
// still reviews the draft, fills in key principles and tags, and appends
// it to the case tables.
package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mlaurier/doccheck/internal/types"
)

// ExtractionError represents a failure parsing a case-law page.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("case extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("case extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// citationPattern matches neutral citations like "2013 ONSC 4133" and
// CanLII citations like "1998 CanLII 14926".
var citationPattern = regexp.MustCompile(`\b(\d{4})\s+(ONCA|ONSC|ONCJ|ONSCDC|SCC|CanLII)\s+(\d+)\b`)

// courtNames maps citation court codes to display names.
var courtNames = map[string]string{
	"ONCA":   "Ontario Court of Appeal",
	"ONSC":   "Ontario Superior Court of Justice",
	"ONSCDC": "Ontario Divisional Court",
	"ONCJ":   "Ontario Court of Justice",
	"SCC":    "Supreme Court of Canada",
}

// maxSummaryLength bounds the extracted summary.
const maxSummaryLength = 600

// ExtractCase parses a case-law page into a draft CaseReference. The
// case name comes from the page title or first heading; citation, year
// and court are recognized from a neutral citation; the summary is the
// leading body text. KeyPrinciples and RelevanceTags are left for review.
func ExtractCase(htmlContent string) (*types.CaseReference, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	name := caseName(doc)
	if name == "" {
		return nil, &ExtractionError{Message: "no case name found in title or headings"}
	}

	// The neutral citation may live in the title, the heading or the body.
	searchText := normalizeWhitespace(strings.Join([]string{
		doc.Find("title").First().Text(),
		doc.Find("h1").First().Text(),
		doc.Find("body").Text(),
	}, " "))
	citation, year, court := citationDetails(searchText)

	ref := &types.CaseReference{
		CaseName: name,
		Citation: citation,
		Year:     year,
		Court:    court,
		Summary:  summaryText(doc),
	}
	return ref, nil
}

// caseName pulls the case name from the title or first h1, trimming any
// trailing citation and site suffix.
func caseName(doc *goquery.Document) string {
	candidates := []string{
		doc.Find("title").First().Text(),
		doc.Find("h1").First().Text(),
	}
	for _, candidate := range candidates {
		name := normalizeWhitespace(candidate)
		// Drop site suffixes like " - CanLII".
		if idx := strings.Index(name, " - "); idx > 0 {
			name = name[:idx]
		}
		// Drop a trailing citation: "Gironda v Gironda, 2013 ONSC 4133".
		if loc := citationPattern.FindStringIndex(name); loc != nil {
			name = strings.TrimRight(name[:loc[0]], " ,")
		}
		if strings.Contains(name, " v ") || strings.Contains(name, " v. ") || strings.Contains(name, "(Re)") {
			return name
		}
	}
	return ""
}

// citationDetails recognizes the first neutral citation in the text.
func citationDetails(text string) (citation string, year int, court string) {
	match := citationPattern.FindStringSubmatch(text)
	if match == nil {
		return "", 0, ""
	}
	year, _ = strconv.Atoi(match[1])
	citation = fmt.Sprintf("%s %s %s", match[1], match[2], match[3])
	if name, ok := courtNames[match[2]]; ok {
		court = name
	}
	return citation, year, court
}

// summaryText collects leading paragraph text up to maxSummaryLength.
func summaryText(doc *goquery.Document) string {
	var sb strings.Builder
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := normalizeWhitespace(s.Text())
		if text == "" {
			return true
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(text)
		return sb.Len() < maxSummaryLength
	})

	summary := sb.String()
	if len(summary) > maxSummaryLength {
		summary = strings.TrimSpace(summary[:maxSummaryLength])
	}
	return summary
}

var whitespacePattern = regexp.MustCompile(`\s+`)

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
