package domain

// Log is a single named check result with a pass/fail status and optional
// diagnostic text. Produced by the tester, consumed read-only by the renderer.
type Log struct {
	Name    string `json:"name"`
	Status  bool   `json:"status"`
	Details string `json:"details,omitempty"`
}

// Result is the outcome of testing one file: the overall status and the
// ordered sub-check logs that produced it.
type Result struct {
	Status bool  `json:"status"`
	Logs   []Log `json:"logs"`
}

// FileResult pairs a tested file path with its result. Order of appearance
// in a TestRun matches ingest order.
type FileResult struct {
	Path   string `json:"path"`
	Result Result `json:"result"`
}

// TestRun is the full outcome of one ingest: counts, per-file results split
// by kind, and the catalog metadata model when catalog mode is on.
type TestRun struct {
	Collections     int          `json:"collections"`
	Resources       int          `json:"resources"`
	CatalogResults  []FileResult `json:"catalog_results,omitempty"`
	DocumentResults []FileResult `json:"document_results,omitempty"`
	Catalog         *Catalog     `json:"catalog,omitempty"`
}

// Passed returns the number of files whose overall status is true.
func (r *TestRun) Passed() int {
	n := 0
	for _, fr := range r.CatalogResults {
		if fr.Result.Status {
			n++
		}
	}
	for _, fr := range r.DocumentResults {
		if fr.Result.Status {
			n++
		}
	}
	return n
}

// Failed returns the number of files whose overall status is false.
func (r *TestRun) Failed() int {
	return len(r.CatalogResults) + len(r.DocumentResults) - r.Passed()
}

// Ok reports whether every tested file passed.
func (r *TestRun) Ok() bool { return r.Failed() == 0 }

// Metadata is one catalog metadata entry.
type Metadata struct {
	Term     string `json:"term"`
	Language string `json:"language,omitempty"`
	Value    string `json:"value"`
}

// Collection is a catalog object: an identified group of resources with a
// title, an optional description, and two categories of metadata.
type Collection struct {
	Identifier  string     `json:"identifier"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DublinCore  []Metadata `json:"dublin_core,omitempty"`
	Extensions  []Metadata `json:"extensions,omitempty"`
}

// Catalog holds the collections parsed during a catalog-mode run, in ingest
// order.
type Catalog struct {
	Collections []Collection `json:"collections"`
}

// RunEntry is one saved run summary in the history store.
type RunEntry struct {
	Timestamp   string `json:"timestamp"`
	CommitHash  string `json:"commit_hash,omitempty"`
	Collections int    `json:"collections"`
	Resources   int    `json:"resources"`
	Passed      int    `json:"passed"`
	Failed      int    `json:"failed"`
}
