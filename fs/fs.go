// Package appfs embeds the files the binaries ship with: database migrations,
// mock-data fixtures and the web & email templates.
package appfs

import "embed"

// "all:" keeps the underscore-prefixed base templates.
//
//go:embed migrations all:assets
var FS embed.FS
