// Package web provides the embedded static assets served at /static/.
// In development the page layout loads Tailwind from its CDN; production
// builds add the compiled app.css next to card.js.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
