package git_test

import (
	"os"
	"sync"
	"testing"

	"github.com/jbicker/dugite-extra/testhelpers"
)

var (
	bulkTemplateOnce sync.Once
	bulkTemplatePath string
	bulkTemplateErr  error
)

// bulkTemplateDir builds a repository with enough files to make git emit
// progress output. Building it is the slow part, so it happens once and
// tests clone it as a local template instead of recreating the tree.
func bulkTemplateDir(t *testing.T) string {
	t.Helper()

	bulkTemplateOnce.Do(func() {
		dir, err := os.MkdirTemp("", "dugite-template-*")
		if err != nil {
			bulkTemplateErr = err
			return
		}

		repo, err := testhelpers.NewGitRepo(dir)
		if err != nil {
			bulkTemplateErr = err
			return
		}
		if err := repo.CreateChangeAndCommit("initial", "init"); err != nil {
			bulkTemplateErr = err
			return
		}
		if err := repo.CreateManyFilesAndCommit(200, "bulk files"); err != nil {
			bulkTemplateErr = err
			return
		}

		bulkTemplatePath = dir
	})

	if bulkTemplateErr != nil {
		t.Fatalf("Failed to build template repo: %v", bulkTemplateErr)
	}
	return bulkTemplatePath
}

func TestMain(m *testing.M) {
	code := m.Run()
	if bulkTemplatePath != "" && os.Getenv("DEBUG") == "" {
		os.RemoveAll(bulkTemplatePath)
	}
	os.Exit(code)
}
