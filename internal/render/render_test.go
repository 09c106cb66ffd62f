package render

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/middleware"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/session"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shell"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	rn, err := New("https://birmesajmutluluk.com/", true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return rn
}

func request(sess *session.Data) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if sess != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), sess))
	}
	return req
}

func doc(t *testing.T, body []byte) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return d
}

func instance(t *testing.T, id components.ID, editable bool) *components.Instance {
	t.Helper()
	spec, ok := components.Lookup(id)
	if !ok {
		t.Fatalf("component %s not registered", id)
	}
	return components.New(spec, components.Context{RecipientName: "Zeynep", Message: "Nice yıllara!", Editable: editable})
}

func TestNewParsesEveryPage(t *testing.T) {
	rn := newRenderer(t)
	for _, name := range []string{"page", "status", "catalog", "preview", "checkout", "payment", "login"} {
		if !rn.Has(name) {
			t.Errorf("page template %q missing", name)
		}
	}
	if rn.Has("base") || rn.Has("component") {
		t.Error("partials must not be registered as pages")
	}
}

func TestPersonalPage(t *testing.T) {
	rn := newRenderer(t)
	in := instance(t, components.SimpleJoyCard, false)
	defer in.Close()

	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	body, err := rn.Bytes(request(nil), "page", &PageData{
		Title: "Zeynep için",
		Share: &ShareMeta{Title: "Sana bir mesaj var", ImageURL: "https://cdn.example.com/og.jpg"},
		Data: map[string]any{
			"ShortID":   "abc12345",
			"ExpiresAt": expires,
			"Countdown": shell.Remaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
			"Component": NewComponentView(in, ""),
			"AudioURL":  "https://cdn.example.com/song.mp3",
		},
	})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	d := doc(t, body)

	page := d.Find("[data-page]")
	if got, _ := page.Attr("data-status-url"); got != "/m/abc12345/status" {
		t.Errorf("status url: got %q", got)
	}
	if got, _ := page.Attr("data-expires-at"); got != "2026-05-01T12:00:00Z" {
		t.Errorf("expires at: got %q", got)
	}
	if got := d.Find(`[data-unit="hours"]`).Text(); got != "03" {
		t.Errorf("hours: got %q, want 03", got)
	}
	if got, _ := d.Find(`meta[property="og:image"]`).Attr("content"); got != "https://cdn.example.com/og.jpg" {
		t.Errorf("og:image: got %q", got)
	}
	if d.Find("[data-bg-audio]").Length() != 1 {
		t.Error("background audio missing")
	}
	if d.Find("[contenteditable]").Length() != 0 {
		t.Error("display mode must not render editable regions")
	}
	if !strings.Contains(d.Find("[data-component]").Text(), "Nice yıllara!") {
		t.Error("main message not rendered")
	}
}

func TestEditableComponentMarksFields(t *testing.T) {
	rn := newRenderer(t)
	in := instance(t, components.InteractivePartyMode, true)
	defer in.Close()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error: %v", err)
	}
	desc, _ := cat.Lookup("dogum-gunu-kutlama")
	body, err := rn.Bytes(request(nil), "preview", &PageData{Data: map[string]any{
		"Template":  desc,
		"Component": NewComponentView(in, "draft0123456789ab"),
		"Editable":  true,
		"Mode":      "edit",
		"Styles":    catalog.Styles,
		"Style":     catalog.Modern,
	}})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	page := doc(t, body)

	card := page.Find("[data-component]")
	if got, _ := card.Attr("data-draft"); got != "draft0123456789ab" {
		t.Errorf("data-draft: got %q", got)
	}
	if got, _ := card.Attr("data-behavior"); got != "reveal" {
		t.Errorf("data-behavior: got %q", got)
	}
	n := page.Find("[data-field]").Length()
	if n != len(in.Fields()) {
		t.Errorf("data-field regions: got %d, want %d", n, len(in.Fields()))
	}
	if page.Find("[data-reveal] [data-field]").Length() != 1 {
		t.Error("reveal region should hold exactly one editable field")
	}
	if page.Find("a[data-style]").Length() != len(catalog.Styles) {
		t.Error("style switcher incomplete")
	}
}

func TestGameRendersTargets(t *testing.T) {
	in := instance(t, components.HeartAdventureInteractive, false)
	v := NewComponentView(in, "")
	if v.Behavior != "game" || v.Targets == 0 {
		t.Fatalf("view = %+v, want a game with targets", v)
	}

	rn := newRenderer(t)
	body, err := rn.Bytes(request(nil), "page", &PageData{Data: map[string]any{
		"ShortID":   "heart001",
		"ExpiresAt": time.Now().Add(time.Hour),
		"Countdown": shell.Remaining{},
		"Component": v,
	}})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if got := doc(t, body).Find("[data-target]").Length(); got != v.Targets {
		t.Errorf("targets: got %d, want %d", got, v.Targets)
	}
}

func TestComponentViewHeading(t *testing.T) {
	v := NewComponentView(instance(t, components.SimpleJoyCard, false), "")
	headings := 0
	for _, f := range v.Fields {
		if f.Heading {
			headings++
			if f.Main || f.Photo {
				t.Errorf("field %q cannot be both heading and main/photo", f.Key)
			}
		}
	}
	if headings != 1 {
		t.Errorf("headings: got %d, want 1", headings)
	}
}

func TestStatusWritesCode(t *testing.T) {
	rn := newRenderer(t)
	rr := httptest.NewRecorder()
	rn.Status(rr, request(nil), http.StatusGone, "status", &PageData{Data: map[string]any{"State": "expired"}})

	if rr.Code != http.StatusGone {
		t.Errorf("status: got %d, want 410", rr.Code)
	}
	d := doc(t, rr.Body.Bytes())
	if got, _ := d.Find("[data-status]").Attr("data-status"); got != "expired" {
		t.Errorf("data-status: got %q", got)
	}
}

func TestUnknownTemplateIs500(t *testing.T) {
	rr := httptest.NewRecorder()
	newRenderer(t).Page(rr, request(nil), "missing", &PageData{})
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}

func TestSessionAndPartial(t *testing.T) {
	rn := newRenderer(t)
	sess := &session.Data{UserID: uuid.New(), DisplayName: "Ayşe"}

	body, err := rn.Bytes(request(sess), "login", &PageData{Data: map[string]any{}})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if !strings.Contains(string(body), "Ayşe") {
		t.Error("nav should show the signed-in user")
	}

	req := request(nil)
	req.Header.Set("X-Partial", "1")
	body, err = rn.Bytes(req, "login", &PageData{Data: map[string]any{}})
	if err != nil {
		t.Fatalf("Bytes() error: %v", err)
	}
	if strings.Contains(string(body), "<html") {
		t.Error("partial render must omit the layout")
	}
}
