// Package static embeds the site's stylesheet and scripts.
package static

import "embed"

//go:embed css js
var FS embed.FS
