package fetch

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never belongs to the résumé body.
const noiseSelector = "script, style, noscript, template, svg, iframe, button, nav, footer, " +
	"[hidden], [aria-hidden='true'], .sidebar, .cookie-banner, .share, .ads, .advertisement"

// containerSelectors locate the résumé inside a page, most specific first.
var containerSelectors = []string{
	"[itemtype$='schema.org/Person']",
	".resume",
	"#resume",
	".cv",
	"#cv",
	"main",
	"article",
}

// blockElements start and end a line of their own.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "body": true,
	"caption": true, "dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "header": true, "hr": true, "html": true, "main": true, "ol": true,
	"p": true, "section": true, "table": true, "tbody": true, "tfoot": true, "thead": true,
	"tr": true, "ul": true,
}

// ResumeText renders the résumé part of an HTML document as text with one block per line.
// Headings become "#" lines and list items become "- " bullets, the shapes the
// section and name extractors look for. Minified markup yields the same lines as
// pretty-printed markup.
func ResumeText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noiseSelector).Remove()

	root := doc.Find("body")
	for _, selector := range containerSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			root = sel.First()
			break
		}
	}

	var b strings.Builder
	render(&b, root)
	return tidyLines(b.String()), nil
}

func render(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		name := goquery.NodeName(node)
		switch {
		case name == "#text":
			b.WriteString(collapseSpace(node.Text()))
		case name == "#comment":
		case name == "br":
			b.WriteByte('\n')
		case name == "pre":
			b.WriteString("\n" + node.Text() + "\n")
		case headingLevel(name) > 0:
			if text := inlineText(node); text != "" {
				b.WriteString("\n" + strings.Repeat("#", headingLevel(name)) + " " + text + "\n")
			}
		case name == "li":
			b.WriteString("\n- ")
			render(b, node)
			b.WriteByte('\n')
		case name == "td" || name == "th":
			render(b, node)
			b.WriteByte(' ')
		case blockElements[name]:
			b.WriteByte('\n')
			render(b, node)
			b.WriteByte('\n')
		default:
			render(b, node)
		}
	})
}

// inlineText renders a node's content onto a single line.
func inlineText(sel *goquery.Selection) string {
	var b strings.Builder
	render(&b, sel)
	return strings.Join(strings.Fields(b.String()), " ")
}

func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// collapseSpace turns every whitespace run into one space, as a browser would.
func collapseSpace(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	if pending {
		b.WriteByte(' ')
	}
	return b.String()
}

// tidyLines trims lines, collapses inner spacing and drops empty lines and bare bullets.
func tidyLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" || line == "-" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
