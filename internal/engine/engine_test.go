package engine

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

const sampleMarkup = `<div class="min-h-screen bg-rose-50">
  <div class="text-center mb-8"><p class="text-sm" data-creator-name>Hazırlayan: {{CREATOR_NAME}}</p></div>
  <h1 class="text-4xl" data-editable="recipientName">Sevgilim</h1>
  <p data-editable="mainMessage">
    Bu özel mesaj
    senin için.
  </p>
  <p data-editable="mainMessage">Bu özel mesaj senin için.</p>
  <div data-editable="wrapper"><span>💖</span> kalp</div>
  <footer data-editable="footerMessage">Seni düşünen birinden ❤️</footer>
</div>`

func doc(t *testing.T, h string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(h))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	return d
}

func TestEditable(t *testing.T) {
	values, order, err := Editable(sampleMarkup)
	if err != nil {
		t.Fatalf("Editable: %v", err)
	}

	wantOrder := []string{"recipientName", "mainMessage", "wrapper", "footerMessage"}
	if strings.Join(order, ",") != strings.Join(wantOrder, ",") {
		t.Errorf("order = %v, want %v", order, wantOrder)
	}
	if got := values.Get("mainMessage"); got != "Bu özel mesaj senin için." {
		t.Errorf("mainMessage default = %q (whitespace should be collapsed)", got)
	}
	if got := values.Get("wrapper"); got != "💖 kalp" {
		t.Errorf("wrapper default = %q", got)
	}
}

func TestFillReplacesEditableText(t *testing.T) {
	out, err := Fill(sampleMarkup, fields.Map{
		"recipientName": "Ayşe",
		"mainMessage":   "<script>alert(1)</script> seni seviyorum",
		"wrapper":       "değişmemeli",
	}, "Mehmet")
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	d := doc(t, string(out))
	if got := d.Find(`[data-editable="recipientName"]`).Text(); got != "Ayşe" {
		t.Errorf("recipientName = %q", got)
	}
	d.Find(`[data-editable="mainMessage"]`).Each(func(_ int, s *goquery.Selection) {
		if s.Text() != "<script>alert(1)</script> seni seviyorum" {
			t.Errorf("mainMessage text = %q", s.Text())
		}
	})
	if d.Find("script").Length() != 0 {
		t.Error("values must be escaped, found a <script> element")
	}
	if got := d.Find(`[data-editable="wrapper"] span`).Length(); got != 1 {
		t.Error("regions with element children are left untouched")
	}
	if got := d.Find(`[data-creator-name]`).Text(); got != "Hazırlayan: Mehmet" {
		t.Errorf("creator line = %q", got)
	}
}

func TestFillKeepsDefaultsForEmptyValues(t *testing.T) {
	out, err := Fill(sampleMarkup, fields.Map{"footerMessage": ""}, "")
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	d := doc(t, string(out))
	if got := d.Find(`[data-editable="footerMessage"]`).Text(); got != "Seni düşünen birinden ❤️" {
		t.Errorf("footerMessage = %q", got)
	}
	if got := d.Find(`[data-creator-name]`).Text(); !strings.Contains(got, "{{CREATOR_NAME}}") {
		t.Errorf("creator line without a name keeps the markup text, got %q", got)
	}
}

func TestEngineCachesByVersion(t *testing.T) {
	e := New()
	tpl := &models.AITemplate{ID: uuid.New(), Version: 1, HTMLContent: `<h1 data-editable="t">Bir</h1>`}

	if _, err := e.Render(tpl, nil, ""); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if e.cache.len() != 1 {
		t.Fatalf("cache size = %d, want 1", e.cache.len())
	}

	// Same version serves the cached markup even if the row changed.
	tpl.HTMLContent = `<h1 data-editable="t">İki</h1>`
	out, _ := e.Render(tpl, nil, "")
	if !strings.Contains(string(out), "Bir") {
		t.Errorf("same version should hit the cache, got %s", out)
	}

	tpl.Version = 2
	out, _ = e.Render(tpl, nil, "")
	if !strings.Contains(string(out), "İki") {
		t.Errorf("new version should recompile, got %s", out)
	}

	e.Invalidate(tpl.ID)
	if e.cache.len() != 0 {
		t.Errorf("Invalidate left %d entries", e.cache.len())
	}
}
