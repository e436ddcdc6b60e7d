package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/rs/zerolog/log"

	"github.com/codelens-hq/codelens/internal/index"
)

// ChangedFiles diffs HEAD against baseRef in the repository at repoPath and
// returns absolute paths of the added or modified source files in a
// supported language. Deleted files are skipped.
func ChangedFiles(repoPath, baseRef string) ([]string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to load HEAD commit: %w", err)
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ref %q: %w", baseRef, err)
	}
	baseCommit, err := repo.CommitObject(*baseHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit for %q: %w", baseRef, err)
	}

	baseTree, err := baseCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read base tree: %w", err)
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to read head tree: %w", err)
	}

	changes, err := object.DiffTree(baseTree, headTree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees: %w", err)
	}

	var files []string
	for _, change := range changes {
		action, err := change.Action()
		if err != nil {
			return nil, fmt.Errorf("failed to read change action: %w", err)
		}
		if action == merkletrie.Delete {
			continue
		}

		name := change.To.Name
		if index.DetectLanguage(name) == index.LanguageUnknown {
			continue
		}
		files = append(files, filepath.Join(repoPath, name))
	}

	log.Debug().
		Str("repo", repoPath).
		Str("base", baseRef).
		Int("files", len(files)).
		Msg("collected changed source files")

	return files, nil
}
