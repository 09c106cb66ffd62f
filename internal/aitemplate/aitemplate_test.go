package aitemplate

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/ai"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/apperr"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/store"
)

const sampleMarkup = `<div class="min-h-screen flex items-center justify-center bg-pink-100">
<p class="text-sm opacity-70" data-creator-name>Hazırlayan: {{CREATOR_NAME}}</p>
<h1 class="text-4xl" data-editable="recipientName">Canım</h1>
<p data-editable="mainMessage">Seni çok seviyorum</p>
</div>`

type fakeGen struct {
	reply   string
	err     error
	ready   bool
	prompts []string
}

func (g *fakeGen) Generate(_ context.Context, _, user string) (string, error) {
	g.prompts = append(g.prompts, user)
	return g.reply, g.err
}

func (g *fakeGen) Ready() bool { return g.ready }

type fakeCredits struct {
	bal      models.CreditBalance
	used     []string
	refunded []string
	// spent is taken by other requests between the balance read and the
	// charge.
	spent int
}

func (c *fakeCredits) Balance(context.Context, uuid.UUID) (models.CreditBalance, error) {
	return c.bal, nil
}

func (c *fakeCredits) UseCredit(_ context.Context, _ uuid.UUID, _ *uuid.UUID, desc string) (models.CreditBalance, error) {
	if c.bal.Used+c.spent >= c.bal.Total {
		return models.CreditBalance{}, store.ErrNoCredits
	}
	c.bal.Used++
	c.used = append(c.used, desc)
	return c.bal, nil
}

func (c *fakeCredits) RefundCredit(_ context.Context, _ uuid.UUID, desc string) (models.CreditBalance, error) {
	c.bal.Used--
	c.refunded = append(c.refunded, desc)
	return c.bal, nil
}

type fakeTemplates struct {
	byID      map[uuid.UUID]*models.AITemplate
	createErr error
}

func (f *fakeTemplates) Create(_ context.Context, t *models.AITemplate) (*models.AITemplate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c := *t
	c.ID = uuid.New()
	c.Version = 1
	f.byID[c.ID] = &c
	return &c, nil
}

func (f *fakeTemplates) FindByID(_ context.Context, id uuid.UUID) (*models.AITemplate, error) {
	return f.byID[id], nil
}

func (f *fakeTemplates) UpdateContent(_ context.Context, id, userID uuid.UUID, html string, editable map[string]string) (*models.AITemplate, error) {
	t := f.byID[id]
	if t == nil || t.UserID != userID {
		return nil, nil
	}
	t.HTMLContent = html
	t.EditableFields = editable
	t.Version++
	return t, nil
}

func (f *fakeTemplates) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	t := f.byID[id]
	if t == nil || t.UserID != userID {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeCache struct{ dropped []uuid.UUID }

func (c *fakeCache) Invalidate(id uuid.UUID) { c.dropped = append(c.dropped, id) }

func newTestService(gen *fakeGen, bal models.CreditBalance) (*Service, *fakeCredits, *fakeTemplates, *fakeCache) {
	cr := &fakeCredits{bal: bal}
	tp := &fakeTemplates{byID: map[uuid.UUID]*models.AITemplate{}}
	ca := &fakeCache{}
	s := NewService(gen, cr, tp, ca)
	s.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return s, cr, tp, ca
}

func validInput() GenerateInput {
	return GenerateInput{Title: "Sevgilim İçin", Category: "romantic", Prompt: "Pembe kalpli romantik bir sayfa"}
}

func TestGenerateStoresSanitisedTemplate(t *testing.T) {
	gen := &fakeGen{ready: true, reply: "```html\n" + sampleMarkup + "\n```"}
	s, cr, _, _ := newTestService(gen, models.CreditBalance{Total: 1})
	uid := uuid.New()

	res, err := s.Generate(context.Background(), uid, validInput())
	require.NoError(t, err)

	assert.Equal(t, 0, res.RemainingCredits)
	assert.Equal(t, []string{"AI template oluşturma"}, cr.used)
	assert.NotContains(t, res.Template.HTMLContent, "```")
	assert.Contains(t, res.Template.HTMLContent, `data-editable="recipientName"`)
	assert.Equal(t, "Canım", res.Template.EditableFields["recipientName"])
	assert.Equal(t, "Seni düşünen birinden ❤️", res.Template.EditableFields["footerMessage"])
	assert.True(t, strings.HasPrefix(res.Template.Slug, "ai-"+strings.ReplaceAll(uid.String(), "-", "")[:8]+"-sevgilim-icin-"))
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Category: romantic")
}

func TestGenerateWithoutCredits(t *testing.T) {
	gen := &fakeGen{ready: true, reply: sampleMarkup}
	s, _, _, _ := newTestService(gen, models.CreditBalance{Total: 3, Used: 3})

	_, err := s.Generate(context.Background(), uuid.New(), validInput())

	var nc *NeedCreditsError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 0, nc.Remaining)
	assert.Contains(t, nc.Error(), "(Kalan: 0)")
	assert.Empty(t, gen.prompts, "provider must not be called")
}

func TestGenerateLastCreditTakenMeanwhile(t *testing.T) {
	gen := &fakeGen{ready: true, reply: sampleMarkup}
	s, cr, tp, _ := newTestService(gen, models.CreditBalance{Total: 1})
	cr.spent = 1

	_, err := s.Generate(context.Background(), uuid.New(), validInput())

	var nc *NeedCreditsError
	require.ErrorAs(t, err, &nc)
	assert.Empty(t, tp.byID, "nothing is stored without payment")
	assert.Empty(t, cr.used)
}

func TestGenerateRefundsWhenSaveFails(t *testing.T) {
	gen := &fakeGen{ready: true, reply: sampleMarkup}
	s, cr, tp, _ := newTestService(gen, models.CreditBalance{Total: 2})
	tp.createErr = errors.New("connection reset")

	_, err := s.Generate(context.Background(), uuid.New(), validInput())
	require.Error(t, err)
	assert.Equal(t, []string{"AI template oluşturma"}, cr.used)
	assert.Equal(t, []string{"AI template oluşturma iadesi"}, cr.refunded)
	assert.Equal(t, 0, cr.bal.Used)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   GenerateInput
		msg  string
	}{
		{"short title", GenerateInput{Title: "ab", Category: "fun", Prompt: "uzun bir açıklama"}, "Title is required"},
		{"bad category", GenerateInput{Title: "Başlık", Category: "horror", Prompt: "uzun bir açıklama"}, "Invalid category selected."},
		{"short prompt", GenerateInput{Title: "Başlık", Category: "fun", Prompt: "kısa"}, "Prompt is required"},
		{"long prompt", GenerateInput{Title: "Başlık", Category: "fun", Prompt: strings.Repeat("a", 1001)}, "Prompt is too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _, _ := newTestService(&fakeGen{ready: true}, models.CreditBalance{Total: 1})
			_, err := s.Generate(context.Background(), uuid.New(), tt.in)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
			assert.Contains(t, ae.Message, tt.msg)
		})
	}
}

func TestGenerateRejectsScript(t *testing.T) {
	gen := &fakeGen{ready: true, reply: sampleMarkup + "<script>alert(1)</script>"}
	s, cr, tp, _ := newTestService(gen, models.CreditBalance{Total: 1})

	_, err := s.Generate(context.Background(), uuid.New(), validInput())
	require.ErrorIs(t, err, ErrInvalidMarkup)
	assert.Empty(t, cr.used)
	assert.Empty(t, tp.byID)
}

func TestGenerateProviderBusy(t *testing.T) {
	gen := &fakeGen{ready: true, err: &ai.StatusError{Provider: "openai", Code: http.StatusTooManyRequests}}
	s, _, _, _ := newTestService(gen, models.CreditBalance{Total: 1})

	_, err := s.Generate(context.Background(), uuid.New(), validInput())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusTooManyRequests, ae.HTTPStatus)
}

func TestGenerateNotConfigured(t *testing.T) {
	s, _, _, _ := newTestService(&fakeGen{}, models.CreditBalance{Total: 1})
	_, err := s.Generate(context.Background(), uuid.New(), validInput())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusServiceUnavailable, ae.HTTPStatus)
}

func TestRefineOwnership(t *testing.T) {
	gen := &fakeGen{ready: true, reply: sampleMarkup}
	s, cr, _, ca := newTestService(gen, models.CreditBalance{Total: 5})
	owner := uuid.New()

	res, err := s.Generate(context.Background(), owner, validInput())
	require.NoError(t, err)
	id := res.Template.ID

	_, err = s.Refine(context.Background(), uuid.New(), RefineInput{TemplateID: id, Prompt: "renkleri mavi yap"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)

	gen.reply = strings.Replace(sampleMarkup, "bg-pink-100", "bg-blue-100", 1)
	res, err = s.Refine(context.Background(), owner, RefineInput{TemplateID: id, Prompt: "renkleri mavi yap"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Template.Version)
	assert.Contains(t, res.Template.HTMLContent, "bg-blue-100")
	assert.Equal(t, []uuid.UUID{id}, ca.dropped)
	assert.Equal(t, "AI template düzenleme", cr.used[len(cr.used)-1])
	assert.Contains(t, gen.prompts[1], "bg-pink-100", "refine prompt carries the current markup")
}

func TestDelete(t *testing.T) {
	s, _, _, ca := newTestService(&fakeGen{ready: true, reply: sampleMarkup}, models.CreditBalance{Total: 1})
	owner := uuid.New()
	res, err := s.Generate(context.Background(), owner, validInput())
	require.NoError(t, err)

	err = s.Delete(context.Background(), uuid.New(), res.Template.ID)
	assert.NotNil(t, apperr.As(err))

	require.NoError(t, s.Delete(context.Background(), owner, res.Template.ID))
	assert.Equal(t, []uuid.UUID{res.Template.ID}, ca.dropped)
}

func TestValidateOrder(t *testing.T) {
	long := strings.Repeat("x", 60)
	tests := []struct {
		name, in, want string
	}{
		{"script", "<script>" + long, "script tags"},
		{"javascript url", `<a href="javascript:x">` + long, "script tags"},
		{"handler", `<div onclick="x">` + long, "event handlers"},
		{"iframe", "<iframe src=x>" + long, "embedded content"},
		{"short", "<div>kısa</div>", "too short"},
		{"large", strings.Repeat("a", maxMarkup+1), "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidMarkup))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.NoError(t, Validate(sampleMarkup))
}

func TestExtract(t *testing.T) {
	raw := "```html\n<!-- COLOR_SCHEME: pink -->\n<div>x</div>\n```"
	assert.Equal(t, "<div>x</div>", Extract(raw))
	assert.Equal(t, "<div>y</div>", Extract("  <div>y</div>\n"))
}

func TestSanitizeKeepsMarkers(t *testing.T) {
	out := Sanitize(`<div class="p-4" data-editable="title" style="color:red">Merhaba</div>`)
	assert.Contains(t, out, `class="p-4"`)
	assert.Contains(t, out, `data-editable="title"`)
	assert.NotContains(t, out, "style=")
}

func TestSlug(t *testing.T) {
	uid := uuid.MustParse("0a1b2c3d-0000-0000-0000-000000000000")
	got := Slug(uid, "Çok Özel Bir Sürpriz Sayfası Hazırladım Sana", time.UnixMilli(36))
	assert.Equal(t, "ai-0a1b2c3d-cok-ozel-bir-surpriz-sayfasi-h-10", got)
}
