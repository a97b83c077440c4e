package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdownFence(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", "# Title", "# Title"},
		{"fenced", "```markdown\n# Title\n```", "# Title"},
		{"fenced no trailing", "```markdown\n# Title", "# Title"},
		{"whitespace", "  \n```markdown\n# Title\n```\n  ", "# Title"},
	}
	for _, c := range cases {
		if got := StripMarkdownFence(c.in); got != c.want {
			t.Errorf("%s: StripMarkdownFence(%q)=%q, want %q", c.name, c.in, got, c.want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Report\n\nSome **bold** text.")
	if !strings.Contains(html, "<h1>Report</h1>") {
		t.Errorf("missing heading in output: %q", html)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("missing bold in output: %q", html)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	md := "| Dimension | Score |\n|-----------|-------|\n| Organization | 3.0 |"
	html := RenderMarkdown(md)
	if !strings.Contains(html, "<table>") {
		t.Errorf("table extension should render tables, got %q", html)
	}
}

func TestRenderMarkdownStripsFence(t *testing.T) {
	html := RenderMarkdown("```markdown\n# Report\n```")
	if !strings.Contains(html, "<h1>Report</h1>") {
		t.Errorf("fence should be stripped before rendering, got %q", html)
	}
}
