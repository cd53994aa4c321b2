package application

import (
	"fmt"
	"time"

	"github.com/teicheck/teicheck/internal/domain"
)

// TestService orchestrates the validation pipeline:
// ingest files -> collect results -> record run summary.
type TestService struct {
	tester  domain.DocumentTester
	history domain.RunHistory
	git     domain.GitInfo
}

func NewTestService(
	tester domain.DocumentTester,
	history domain.RunHistory,
	git domain.GitInfo,
) *TestService {
	return &TestService{
		tester:  tester,
		history: history,
		git:     git,
	}
}

// Run validates the given files and saves a summary entry under projectPath.
// History and git lookups are best-effort: a missing repo or unwritable
// history never fails the run.
func (s *TestService) Run(projectPath string, files []string, catalog bool) (*domain.TestRun, error) {
	run, err := s.tester.Ingest(files, catalog)
	if err != nil {
		return nil, fmt.Errorf("ingesting files: %w", err)
	}

	hash, _ := s.git.HeadCommit(projectPath)
	_ = s.history.Save(projectPath, domain.RunEntry{
		Timestamp:   time.Now().Format(time.RFC3339),
		CommitHash:  hash,
		Collections: run.Collections,
		Resources:   run.Resources,
		Passed:      run.Passed(),
		Failed:      run.Failed(),
	})

	return run, nil
}

// History returns the saved run summaries for projectPath, oldest first.
func (s *TestService) History(projectPath string) ([]domain.RunEntry, error) {
	return s.history.Load(projectPath)
}
