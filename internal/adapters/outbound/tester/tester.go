package tester

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teicheck/teicheck/internal/domain"
)

// catalogFileName marks a file as catalog metadata rather than a document.
const catalogFileName = "__cts__.xml"

// Tester implements domain.DocumentTester. It runs well-formedness and
// structural checks over catalog and TEI files and collects the catalog
// metadata model along the way.
type Tester struct{}

func New() *Tester {
	return &Tester{}
}

// Ingest validates the given files. Upstream problems (unreadable files,
// malformed XML) surface as failing logs with details text, never as errors:
// the only error returns here are from classifying an empty input set, which
// is valid and yields an empty run.
func (t *Tester) Ingest(files []string, catalog bool) (*domain.TestRun, error) {
	run := &domain.TestRun{}

	for _, file := range files {
		if catalog && filepath.Base(file) == catalogFileName {
			result, collection := t.testCatalogFile(file)
			run.CatalogResults = append(run.CatalogResults, domain.FileResult{Path: file, Result: result})
			if collection != nil {
				if run.Catalog == nil {
					run.Catalog = &domain.Catalog{}
				}
				run.Catalog.Collections = append(run.Catalog.Collections, *collection)
				run.Collections++
			}
			continue
		}

		run.DocumentResults = append(run.DocumentResults, domain.FileResult{
			Path:   file,
			Result: t.testDocument(file),
		})
		run.Resources++
	}

	return run, nil
}

// testCatalogFile runs the catalog checks. The parsed collection is returned
// when the file could be read as catalog metadata, even if some checks fail.
func (t *Tester) testCatalogFile(path string) (domain.Result, *domain.Collection) {
	data, err := os.ReadFile(path)
	if err != nil {
		return failedRead(err), nil
	}

	cat, err := parseCatalog(data)
	if err != nil {
		return singleFailure("wellFormed", err.Error()), nil
	}

	logs := []domain.Log{
		{Name: "wellFormed", Status: true},
		check("identifier", cat.URN != "", "missing urn attribute on root element"),
		check("title", cat.Title != "", "no groupname or title element found"),
	}

	if missing := cat.missingLanguages(); len(missing) > 0 {
		logs = append(logs, domain.Log{
			Name:    "metadataLanguage",
			Status:  false,
			Details: fmt.Sprintf("metadata entries missing xml:lang: %s", joinTerms(missing)),
		})
	} else {
		logs = append(logs, domain.Log{Name: "metadataLanguage", Status: true})
	}

	return domain.Result{Status: allPassed(logs), Logs: logs}, cat.collection()
}

// testDocument runs the TEI document checks.
func (t *Tester) testDocument(path string) domain.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return failedRead(err)
	}

	doc, err := inspectDocument(data)
	if err != nil {
		return singleFailure("wellFormed", err.Error())
	}

	logs := []domain.Log{
		{Name: "wellFormed", Status: true},
		check("teiNamespace", doc.RootNamespace == teiNamespace,
			fmt.Sprintf("root namespace is %q, expected %q", doc.RootNamespace, teiNamespace)),
		check("nonEmpty", doc.HasText, "document has no text content"),
	}

	return domain.Result{Status: allPassed(logs), Logs: logs}
}

func check(name string, ok bool, details string) domain.Log {
	if ok {
		return domain.Log{Name: name, Status: true}
	}
	return domain.Log{Name: name, Status: false, Details: details}
}

func failedRead(err error) domain.Result {
	return singleFailure("wellFormed", fmt.Sprintf("reading file: %v", err))
}

func singleFailure(name, details string) domain.Result {
	return domain.Result{
		Status: false,
		Logs:   []domain.Log{{Name: name, Status: false, Details: details}},
	}
}

func allPassed(logs []domain.Log) bool {
	for _, l := range logs {
		if !l.Status {
			return false
		}
	}
	return true
}
