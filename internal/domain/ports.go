package domain

// DocumentTester ingests catalog and document files and runs the validation
// checks that produce per-file results.
type DocumentTester interface {
	// Ingest validates the given files. When catalog is true the files are
	// treated as a catalog run: catalog files are parsed into collections
	// and contribute to the metadata model; otherwise every file is tested
	// as a standalone document.
	Ingest(files []string, catalog bool) (*TestRun, error)
}

// ConfigLoader loads project-level configuration.
type ConfigLoader interface {
	Load(projectPath string) (RunConfig, error)
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides git metadata for a project path.
type GitInfo interface {
	// HeadCommit returns the current commit hash, or "" when the path is
	// not a git repository.
	HeadCommit(projectPath string) (string, error)
}
