// Command import_caselaw fetches a case-law page and emits a draft case
// reference record as JSON. The draft is reviewed by hand before being
// added to the catalog's case tables.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mlaurier/doccheck/internal/fetch"
	"github.com/mlaurier/doccheck/internal/ingest"
)

func main() {
	urlFlag := flag.String("url", "", "URL of the case-law page to import")
	useBrowser := flag.Bool("use-browser", false, "Force headless browser rendering (requires Chrome)")
	timeout := flag.Duration("timeout", 60*time.Second, "Overall fetch timeout")
	verbose := flag.Bool("verbose", false, "Print progress to stderr")
	flag.Parse()

	if *urlFlag == "" {
		fmt.Fprintln(os.Stderr, "Usage: import_caselaw -url <case-law page URL> [-use-browser] [-verbose]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	html, err := fetchPage(ctx, *urlFlag, *useBrowser, *timeout, *verbose)
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}

	ref, err := ingest.ExtractCase(html)
	if err != nil {
		log.Fatalf("extraction failed: %v", err)
	}

	encoded, err := json.MarshalIndent(ref, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode case reference: %v", err)
	}
	fmt.Println(string(encoded))

	if *verbose {
		log.Printf("[IMPORT] drafted %q; fill in key_principles, outcome and relevance_tags before adding to the catalog", ref.CaseName)
	}
}

// fetchPage tries a plain HTTP fetch first and falls back to browser
// rendering when the page looks JS-rendered.
func fetchPage(ctx context.Context, url string, forceBrowser bool, timeout time.Duration, verbose bool) (string, error) {
	if forceBrowser {
		return fetch.WithBrowser(ctx, url, timeout, verbose)
	}

	html, err := fetch.URL(ctx, url)
	if err != nil {
		return "", err
	}
	if fetch.ShouldUseBrowser(html) {
		if verbose {
			log.Printf("[IMPORT] page content too short (%d bytes), retrying with browser", len(html))
		}
		return fetch.WithBrowser(ctx, url, timeout, verbose)
	}
	return html, nil
}
