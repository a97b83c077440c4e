package utils

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// StripMarkdownFence removes a surrounding ```markdown code fence if present
func StripMarkdownFence(content string) string {
	processed := strings.TrimSpace(content)
	if strings.HasPrefix(processed, "```markdown") {
		processed = strings.TrimSpace(processed[len("```markdown"):])
		if strings.HasSuffix(processed, "```") {
			processed = strings.TrimSpace(processed[:len(processed)-3])
		}
	}
	return processed
}

// RenderMarkdown converts markdown text to HTML. If conversion fails the
// content is returned escaped inside a <pre> block instead
func RenderMarkdown(content string) string {
	processed := StripMarkdownFence(content)

	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(processed), &buf); err != nil {
		var escaped bytes.Buffer
		escaped.WriteString("<pre>")
		escaped.WriteString(strings.ReplaceAll(strings.ReplaceAll(processed, "&", "&amp;"), "<", "&lt;"))
		escaped.WriteString("</pre>")
		return escaped.String()
	}

	return buf.String()
}
