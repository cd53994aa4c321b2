package gitinfo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

// HeadCommit returns the current HEAD hash, or "" when projectPath is not
// inside a git repository. Run summaries are still saved without a hash.
func (g *GitInfoAdapter) HeadCommit(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
