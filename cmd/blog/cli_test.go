package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a config file pointing at dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "blog.toml")
	cfg := "name = \"Test Station\"\nurl = \"https://blog.example.com\"\nauthor = \"Ada\"\ncallsign = \"TA2EDH\"\nlog_level = \"error\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	buf := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", cfgPath, "--content", dir}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func writePost(t *testing.T, dir, slug, src string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(src), 0o644))
}

const helloPost = "---\ntitle: Hello Ether\ndate: 2024-06-01\nexcerpt: First contact\ntags: [radio, hf]\n---\n# Hi\n"

func TestVersionCmd(t *testing.T) {
	original := version
	version = "test-version-1.0.0"
	defer func() { version = original }()

	buf := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "blog version test-version-1.0.0")
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello-ether", helloPost)
	writePost(t, dir, "older", "---\ntitle: Older\ndate: 2023-01-01\n---\nbody\n")
	writePost(t, dir, "broken", "---\ndate: 2024-01-01\n---\n")

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "hello-ether")
	assert.Contains(t, out, "radio, hf")
	assert.NotContains(t, out, "broken")
	assert.Less(t, bytes.Index([]byte(out), []byte("hello-ether")), bytes.Index([]byte(out), []byte("older")))

	out, err = run(t, dir, "list", "--tag", "HF")
	require.NoError(t, err)
	assert.Contains(t, out, "hello-ether")
	assert.NotContains(t, out, "older")
}

func TestListCmdEmptyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "_posts")

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No posts found.")
	assert.DirExists(t, dir)
}

func TestShowCmd(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello-ether", helloPost)

	out, err := run(t, dir, "show", "hello-ether")
	require.NoError(t, err)
	assert.Contains(t, out, "Title:   Hello Ether")
	assert.Contains(t, out, "URL:     https://blog.example.com/posts/hello-ether/")
	assert.Contains(t, out, "Hi</h1>")

	out, err = run(t, dir, "show", "hello-ether", "--json")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Hello Ether", got["title"])
	assert.Equal(t, "hello-ether", got["slug"])
}

func TestShowCmdNotFound(t *testing.T) {
	_, err := run(t, t.TempDir(), "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `post "missing" not found`)
}

func TestNewCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "new", "Field", "Day", "--slug", "field-day", "--date", "2024-06-22", "--tag", "contest")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	data, err := os.ReadFile(filepath.Join(dir, "field-day.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `title: "Field Day"`)
	assert.Contains(t, string(data), `name: "Ada"`, "author defaults from config")
	assert.Contains(t, string(data), `callsign: "TA2EDH"`)

	out, err = run(t, dir, "show", "field-day")
	require.NoError(t, err)
	assert.Contains(t, out, "Tags:    contest")

	_, err = run(t, dir, "new", "Field Day", "--slug", "field-day")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello-ether", helloPost)

	out, err := run(t, dir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    hello-ether")
	assert.Contains(t, out, "1 posts, 0 failures")

	writePost(t, dir, "undated", "---\ntitle: Undated\n---\n")
	out, err = run(t, dir, "check")
	require.ErrorIs(t, err, errSilent)
	assert.Contains(t, out, "FAIL  undated")
	assert.Contains(t, out, "1 posts, 1 failures")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	_, err := run(t, t.TempDir(), "--log-level", "loud", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRelevantEvents(t *testing.T) {
	assert.True(t, relevant(fsnotify.Event{Name: "/p/a.md", Op: fsnotify.Write}))
	assert.True(t, relevant(fsnotify.Event{Name: "/p/a.md", Op: fsnotify.Remove}))
	assert.False(t, relevant(fsnotify.Event{Name: "/p/a.md", Op: fsnotify.Chmod}))
	assert.False(t, relevant(fsnotify.Event{Name: "/p/a.txt", Op: fsnotify.Write}))
}
