package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderHomePage(t *testing.T) {
	page, err := Render("home", HomeMarkdown)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if page.Title != "arm COFFEE — Own the Future of Coffee" {
		t.Errorf("title = %q", page.Title)
	}
	if !strings.Contains(page.HTML, "<h2>") {
		t.Error("rendered HTML lost section headings")
	}
	if page.Description == "" {
		t.Error("no meta description extracted")
	}
	if len(page.Description) > 165 {
		t.Errorf("description too long: %d chars", len(page.Description))
	}
	if strings.Contains(page.Description, "<") {
		t.Errorf("description contains markup: %q", page.Description)
	}
}

func TestRenderTruncatesLongDescription(t *testing.T) {
	long := "# T\n\n" + strings.Repeat("coffee kiosk telemetry ", 30)
	page, err := Render("t", long)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(page.Description) > 170 {
		t.Errorf("description not truncated: %d chars", len(page.Description))
	}
	if !strings.HasSuffix(page.Description, "…") {
		t.Errorf("truncated description missing ellipsis: %q", page.Description)
	}
}

func TestRenderTruncatesOnRuneBoundary(t *testing.T) {
	// An unbroken run of 3-byte runes has no word break before the cut, so the
	// fallback cut must land on a rune boundary, not mid-character.
	long := "# T\n\n" + strings.Repeat("☕", 100)
	page, err := Render("t", long)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !utf8.ValidString(page.Description) {
		t.Errorf("description is not valid UTF-8: %q", page.Description)
	}
	if !strings.HasSuffix(page.Description, "…") {
		t.Errorf("truncated description missing ellipsis: %q", page.Description)
	}
}
