package runner_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/runner"
)

func relPaths(t *testing.T, dir string, paths []string) []string {
	t.Helper()
	rel := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	return rel
}

func TestDiscoverExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")
	writeFile(t, dir, "legacy.htm", "<html></html>")
	writeFile(t, dir, "INDEX.HTML", "<html></html>")
	writeFile(t, dir, "style.css", "body{}")
	writeFile(t, dir, "readme.md", "# hi")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"INDEX.HTML", "index.html", "legacy.htm"}, relPaths(t, dir, files))
}

func TestDiscoverRecursesAndSorts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.html", "<html></html>")
	writeFile(t, dir, "docs/a.html", "<html></html>")
	writeFile(t, dir, "docs/deep/c.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b.html", "docs/a.html", "docs/deep/c.html"}, relPaths(t, dir, files))
}

func TestDiscoverSkipsHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "visible.html", "<html></html>")
	writeFile(t, dir, ".hidden.html", "<html></html>")
	writeFile(t, dir, ".cache/page.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"visible.html"}, relPaths(t, dir, files))
}

func TestDiscoverSkipsVendoredPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "app.html", "<html></html>")
	writeFile(t, dir, "node_modules/pkg/widget.html", "<html></html>")
	writeFile(t, dir, "vendor/lib/page.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.html"}, relPaths(t, dir, files))

	// IncludeVendored restores them.
	files, err = runner.Discover(context.Background(), runner.Options{
		Paths:           []string{"."},
		WorkingDir:      dir,
		IncludeVendored: true,
	})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.html", "<html></html>")
	writeFile(t, dir, "build/out.html", "<html></html>")
	writeFile(t, dir, "draft.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"build/**", "draft.html"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.html"}, relPaths(t, dir, files))
}

func TestDiscoverIncludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "pages/a.html", "<html></html>")
	writeFile(t, dir, "other/b.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		IncludeGlobs: []string{"pages/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"pages/a.html"}, relPaths(t, dir, files))
}

func TestDiscoverDeduplicates(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{".", path, "page.html"},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Len(t, files, 1)
}

func TestDiscoverExplicitFileAlwaysIncluded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "node_modules/widget.tmpl", "<html></html>")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{path},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{path}, files)
}
