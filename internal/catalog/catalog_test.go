package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in   string
		want DesignStyle
	}{
		{"modern", Modern},
		{" Classic ", Classic},
		{"minimalist", Minimalist},
		{"eglenceli", Eglenceli},
		{"fun", Eglenceli},
		{"", ""},
		{"neon", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStyle(tt.in), "ParseStyle(%q)", tt.in)
	}
}

func TestDispatchIsTotal(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	slugs := []string{"", "bilinmeyen", "ai-1234abcd-x-k2"}
	for _, d := range c.All() {
		slugs = append(slugs, d.Slug)
	}
	styles := append([]DesignStyle{"", "neon"}, Styles...)

	for _, slug := range slugs {
		for _, st := range styles {
			id := Dispatch(slug, st)
			_, ok := components.Lookup(id)
			assert.True(t, ok, "Dispatch(%q, %q) = %q is not registered", slug, st, id)
		}
	}
}

func TestDispatchFamilies(t *testing.T) {
	tests := []struct {
		slug  string
		style DesignStyle
		want  components.ID
	}{
		{"dogum-gunu-kutlama", Modern, components.PastelGradientCelebration},
		{"dogum-gunu-kutlama", Classic, components.ElegantGoldInvitation},
		{"dogum-gunu-kutlama", Minimalist, components.SimpleJoyCard},
		{"dogum-gunu-kutlama", Eglenceli, components.InteractivePartyMode},
		{"dogum-gunu-kutlama", "", components.PastelGradientCelebration},
		{"romantik-mesaj-elegant", Eglenceli, components.HeartAdventureInteractive},
		{"kandil-tebrigi", "", components.KlasikAltinIsikli},
		{"kandil-tebrigi", "neon", components.KlasikAltinIsikli},
		{"kandil-tebrigi", Modern, components.ModernSoftGlow},
		{"yil-donumu", Minimalist, components.MinimalistSecretMessage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dispatch(tt.slug, tt.style), "Dispatch(%q, %q)", tt.slug, tt.style)
	}
}

func TestDispatchSinglesIgnoreStyle(t *testing.T) {
	for slug, want := range singles {
		for _, st := range append([]DesignStyle{""}, Styles...) {
			assert.Equal(t, want, Dispatch(slug, st), "Dispatch(%q, %q)", slug, st)
		}
	}

	assert.Equal(t, components.EglenceliSeniSeviyorum, Dispatch("seni-seviyorum-teen", Eglenceli))
	assert.Equal(t, components.SeniSeviyorum, Dispatch("seni-seviyorum-teen", Classic))
	assert.Equal(t, components.AffetBeni, Dispatch("affet-beni-classic", Modern))
	assert.Equal(t, components.DefaultTemplate, Dispatch("bilinmeyen", Modern))
}

func TestFamilyVariantsAreDistinct(t *testing.T) {
	seen := map[components.ID]string{}
	for slug, f := range families {
		for _, id := range f.variants {
			if prev, ok := seen[id]; ok {
				t.Errorf("%s is used by both %s and %s", id, prev, slug)
			}
			seen[id] = slug
		}
		assert.NotEqual(t, -1, styleIndex(f.def), "%s has no valid default", slug)
	}
}

func TestStyleThemeDefaultsToModern(t *testing.T) {
	assert.Equal(t, modernTheme, StyleTheme(""))
	assert.Equal(t, modernTheme, StyleTheme(Eglenceli))
	assert.Equal(t, "bg-gray-50", StyleTheme(Minimalist).Background)
	assert.Equal(t, "text-amber-600", StyleTheme(Classic).HeartColor)
}

func TestLoadCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	d, ok := c.Lookup("dogum-gunu-kutlama")
	require.True(t, ok)
	assert.Equal(t, "Doğum Günü Kutlama", d.Title)
	assert.Contains(t, string(d.DescriptionHTML), "<li>")

	p, ok := d.Price(24 * time.Hour)
	require.True(t, ok)
	assert.Equal(t, float64(49), p.Amount)

	d.Audience[0] = "changed"
	again, _ := c.Lookup("dogum-gunu-kutlama")
	assert.NotEqual(t, "changed", again.Audience[0], "descriptors must not alias catalog state")
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte("templates:\n  - {slug: a, title: A}\n  - {slug: a, title: B}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("templates:\n  - {slug: a}\n"))
	assert.Error(t, err)
}

func TestRenderMessageOverrides(t *testing.T) {
	tests := []struct {
		name   string
		slug   string
		style  DesignStyle
		tf     fields.Map
		msg    string
		key    string
		expect string
	}{
		{
			name: "celebration prefers text field message",
			slug: "mutlu-yillar-celebration", style: Modern,
			tf: fields.Map{"message": "alan"}, msg: "ham",
			key: "holoBodyMessage", expect: "alan",
		},
		{
			name: "celebration falls back to raw message",
			slug: "mutlu-yillar-celebration", style: Modern,
			msg: "ham", key: "holoBodyMessage", expect: "ham",
		},
		{
			name: "anniversary prefers mainMessage",
			slug: "yil-donumu", style: Modern,
			tf: fields.Map{"mainMessage": "anı"}, msg: "ham",
			key: "mainMessage", expect: "anı",
		},
		{
			name: "kandil ignores the message",
			slug: "kandil-tebrigi", style: Classic,
			msg: "ham", key: "subMessage", expect: "Bu mübarek gecede dualarınız kabul olsun.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Render(Descriptor{Slug: tt.slug}, tt.style, RenderContext{TextFields: tt.tf, Message: tt.msg})
			assert.Equal(t, tt.expect, in.Value(tt.key))
		})
	}
}

func TestRenderAppliesStyleTheme(t *testing.T) {
	in := Render(Descriptor{Slug: "tesekkur", Title: "Teşekkür"}, Minimalist, RenderContext{})
	assert.Equal(t, components.Tesekkur, in.Spec.ID)
	assert.Equal(t, "bg-gray-50", in.Theme.Background)

	unknown := Render(Descriptor{Slug: "bilinmeyen", Title: "Yeni İş"}, "", RenderContext{})
	assert.Equal(t, components.DefaultTemplate, unknown.Spec.ID)
	assert.Equal(t, "Yeni İş", unknown.Value("title"))
}
