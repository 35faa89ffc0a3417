package blog

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// terminal.css and the default favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
