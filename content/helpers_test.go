package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ta2edh/blog/markdown"
)

const goodPost = `---
title: Hello Ether
date: 2024-06-01
excerpt: First contact on 20m
author:
  name: Ada
  callsign: TA2EDH
tags:
  - Radio
  - radio
  - HF
---
# Heading

Some **bold** text and a [link](https://ta2edh.com).
`

func postSource(title, date string) string {
	return "---\ntitle: " + title + "\ndate: " + date + "\n---\nBody of " + title + ".\n"
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	loader := NewLoader(dir, markdown.NewGoldmark(markdown.Options{}), nil)
	return NewStore(StoreConfig{Loader: loader, Workers: 4})
}

func slugsOf(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}
