// Package web holds the embedded single-page interface.
package web

import "embed"

//go:embed static
var Static embed.FS
