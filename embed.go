package site

import "embed"

// EmbeddedAssets contains the browser assets served under /assets/:
// site.js and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
