package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "january.md", postSource("January", "2024-01-01"))
	writeFile(t, dir, "june.md", postSource("June", "2024-06-01"))
	writeFile(t, dir, "march.md", postSource("March", "2024-03-15T12:00:00Z"))

	posts, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"june", "march", "january"}, slugsOf(posts))
}

func TestListBreaksDateTiesBySlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charlie.md", postSource("C", "2024-02-02"))
	writeFile(t, dir, "alpha.md", postSource("A", "2024-02-02"))
	writeFile(t, dir, "bravo.md", postSource("B", "2024-02-02"))

	posts, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, slugsOf(posts))
}

func TestListSkipsMalformedPosts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.md", postSource("Good", "2024-01-01"))
	writeFile(t, dir, "bad.md", "---\ndate: 2024-01-02\n---\nno title\n")

	posts, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Slug)
}

func TestListIgnoresNonMarkdownEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post.md", postSource("Post", "2024-01-01"))
	writeFile(t, dir, "notes.txt", "not a post")
	writeFile(t, dir, "draft.md.bak", postSource("Backup", "2024-01-01"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.md"), 0o755))

	posts, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"post"}, slugsOf(posts))
}

func TestListIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello-ether.md", goodPost)
	writeFile(t, dir, "second.md", postSource("Second", "2023-12-24"))
	writeFile(t, dir, "same-day.md", postSource("Same Day", "2023-12-24"))

	store := newTestStore(t, dir)
	first, err := store.List(context.Background())
	require.NoError(t, err)
	second, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "_posts")

	posts, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
	assert.DirExists(t, dir)
}

func TestListDirectoryUnavailable(t *testing.T) {
	parent := t.TempDir()
	path := filepath.Join(parent, "_posts")
	require.NoError(t, os.WriteFile(path, []byte("a file, not a dir"), 0o644))

	_, err := newTestStore(t, path).List(context.Background())
	require.Error(t, err)
	assert.True(t, IsDirUnavailable(err))
}

func TestListCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post.md", postSource("Post", "2024-01-01"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestStore(t, dir).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListSingleWorkerMatchesParallel(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"2024-01-01", "2024-02-01", "2024-03-01", "2024-04-01", "2024-05-01"} {
		writeFile(t, dir, "post-"+d+".md", postSource("Post "+d, d))
	}

	parallel, err := newTestStore(t, dir).List(context.Background())
	require.NoError(t, err)

	serial := NewStore(StoreConfig{Loader: NewLoader(dir, nil, nil), Workers: 1})
	got, err := serial.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, slugsOf(parallel), slugsOf(got))
	assert.Equal(t, "post-2024-05-01", got[0].Slug)
}

func TestGetDelegatesToLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello-ether.md", goodPost)
	store := newTestStore(t, dir)

	post, err := store.Get(context.Background(), "hello-ether")
	require.NoError(t, err)
	assert.Equal(t, "Hello Ether", post.Title)

	_, err = store.Get(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestCheckReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.md", postSource("Good", "2024-01-01"))
	writeFile(t, dir, "zulu.md", "---\ntitle: [broken\n---\n")
	writeFile(t, dir, "alpha.md", "---\ntitle: Undated\n---\n")

	report, err := newTestStore(t, dir).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, slugsOf(report.Posts))
	require.Len(t, report.Failures, 2)
	assert.Equal(t, "alpha", report.Failures[0].Slug)
	assert.Equal(t, "zulu", report.Failures[1].Slug)
	for _, f := range report.Failures {
		assert.True(t, IsMalformed(f.Err), "%s: %v", f.Slug, f.Err)
	}
}

func TestSlugs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.md", postSource("One", "2024-01-01"))
	writeFile(t, dir, "two.md", "broken")

	slugs, err := newTestStore(t, dir).Slugs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, slugs)
}

func TestWithTagAndTags(t *testing.T) {
	posts := []Post{
		{Slug: "a", Tags: []string{"Radio", "HF"}},
		{Slug: "b", Tags: []string{"electronics"}},
		{Slug: "c", Tags: []string{" radio "}},
		{Slug: "d"},
	}

	assert.Equal(t, []string{"a", "c"}, slugsOf(WithTag(posts, "RADIO")))
	assert.Equal(t, posts, WithTag(posts, ""))
	assert.Empty(t, WithTag(posts, "vhf"))
	assert.Equal(t, []string{"electronics", "hf", "radio"}, Tags(posts))
}
