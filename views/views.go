// Package views uygulamanın HTML şablonlarını binary'ye gömer.
package views

import "embed"

//go:embed layouts/*.html catalog/*.html card/*.html elementtype/*.html cardinstance/*.html errors/*.html
var FS embed.FS
