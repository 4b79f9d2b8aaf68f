// Package content renders the marketing landing copy. Pages are authored in
// Markdown, rendered to HTML with goldmark, and a plain-text meta description
// is lifted from the first paragraph of the rendered document.
package content

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
)

// Page is a rendered landing page ready for the shell to serve.
type Page struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	HTML        string `json:"html"`
	Description string `json:"description"`
}

const maxDescriptionLen = 160

// Render converts markdown source into a Page. The title comes from the first
// heading, the description from the first paragraph, truncated to meta length.
func Render(slug, markdown string) (*Page, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", slug, err)
	}
	html := buf.String()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered HTML for %s: %w", slug, err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	desc := strings.TrimSpace(doc.Find("p").First().Text())
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) > maxDescriptionLen {
		cut := strings.LastIndex(desc[:maxDescriptionLen], " ")
		if cut <= 0 {
			// No word break in range: back up to a rune boundary so the cut
			// never splits a multibyte character.
			cut = maxDescriptionLen
			for cut > 0 && !utf8.RuneStart(desc[cut]) {
				cut--
			}
		}
		desc = desc[:cut] + "…"
	}

	return &Page{
		Slug:        slug,
		Title:       title,
		HTML:        html,
		Description: desc,
	}, nil
}

// HomeMarkdown is the landing page copy.
const HomeMarkdown = `# arm COFFEE — Own the Future of Coffee

Invest in fully automated robotic coffee kiosks. AED 75,000 entry, a guaranteed
AED 6,000 monthly salary or 25–30% revenue share, and zero staff to manage.

## Why franchisees choose us

- Fully automated units with live telemetry
- Buy 9 kiosks, get the 10th free at the Institutional tier
- 10% direct finder's fee on referrals, single level, no MLM

## Scale your portfolio

Use the ROI calculator to project revenue, net profit and payback for any
portfolio size, then talk to the AI Business Partner about your strategy.
`
