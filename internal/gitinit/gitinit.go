// Package gitinit turns a freshly generated project into a git repository
// with an initial commit, so the output is immediately pushable.
package gitinit

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Init initializes a repository at dir and commits everything in it. If dir
// already is a repository, Init leaves it alone and reports no error.
func Init(dir, projectName string) error {
	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("git worktree: %w", err)
	}
	if err := wt.AddGlob("."); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	_, err = wt.Commit(fmt.Sprintf("Initial commit: %s", projectName), &git.CommitOptions{
		Author: &object.Signature{
			Name:  "siteforge",
			Email: "siteforge@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}
