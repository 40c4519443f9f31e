package docgen

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
)

const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
code { background: #f4f4f4; }
</style>
</head>
<body>
%s
</body>
</html>`

// RenderHTML converts the generated Markdown reference into a standalone
// HTML page.
func RenderHTML(title, md string) []byte {
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.ToHTML([]byte(md), p, renderer)

	return fmt.Appendf(nil, htmlShell, title, body)
}
