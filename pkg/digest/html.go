package digest

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

const htmlLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: sans-serif; line-height: 1.5;">
%s</body>
</html>
`

// HTMLRenderer converts a text digest into an HTML email body.
type HTMLRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTMLRenderer creates a renderer that keeps line breaks of the text
// body and strips any markup coming from sheet cells.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts a text digest to a full HTML document.
func (r *HTMLRenderer) Render(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("digest: convert to html: %w", err)
	}
	return fmt.Sprintf(htmlLayout, r.policy.SanitizeBytes(buf.Bytes())), nil
}
