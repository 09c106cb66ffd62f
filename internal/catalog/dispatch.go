package catalog

import "github.com/yunusgulbuz/gizlimesaj-sub002/internal/components"

// Key addresses one variant of a template family.
type Key struct {
	Slug  string
	Style DesignStyle
}

type family struct {
	def      DesignStyle
	variants [4]components.ID // modern, classic, minimalist, eglenceli
}

var families = map[string]family{
	"tesekkur-ederim-askim": {Modern, [4]components.ID{
		components.NeonSoftGlowThanks, components.LetterRoseThanks,
		components.PureLoveMinimalThanks, components.HeartBubblesThanks,
	}},
	"surpriz-randevu-daveti": {Modern, [4]components.ID{
		components.SoftGlassInvitation, components.RomantikAksamInvitation,
		components.CleanRomanticPlan, components.HiddenSurpriseGame,
	}},
	"tesekkur-adult": {Modern, [4]components.ID{
		components.PremiumModernTesekkur, components.KlasikElegansTesekkur,
		components.MinimalistNeonTesekkur, components.EglenceliInteraktifTesekkur,
	}},
	"mutlu-yillar-celebration": {Modern, [4]components.ID{
		components.HolographicCelebration, components.GoldenMidnight,
		components.PureNewBeginning, components.FireworkParty,
	}},
	"mutlu-yillar-fun": {Modern, [4]components.ID{
		components.PremiumModernNewYear, components.KlasikElegansNewYear,
		components.MinimalistNeonNewYear, components.EglenceliInteraktifNewYear,
	}},
	"yil-donumu": {Modern, [4]components.ID{
		components.ModernTimelineAnniversary, components.ClassicMemoryBox,
		components.MinimalistSecretMessage, components.InteractiveQuizCelebration,
	}},
	"is-tebrigi": {Modern, [4]components.ID{
		components.ModernCorporateCongrats, components.ClassicPrestigeCertificate,
		components.MinimalistProfessionalCard, components.PremiumDynamicCelebration,
	}},
	"romantik-mesaj-elegant": {Modern, [4]components.ID{
		components.NeonGlowLove, components.RomanticLetterScene,
		components.PureLoveMinimal, components.HeartAdventureInteractive,
	}},
	"dogum-gunu-kutlama": {Modern, [4]components.ID{
		components.PastelGradientCelebration, components.ElegantGoldInvitation,
		components.SimpleJoyCard, components.InteractivePartyMode,
	}},
	"kandil-tebrigi": {Classic, [4]components.ID{
		components.ModernSoftGlow, components.KlasikAltinIsikli,
		components.MinimalistGeceNur, components.SanatsalGoldInk,
	}},
}

// singles maps slugs served by one component regardless of style.
var singles = map[string]components.ID{
	"seni-seviyorum":          components.SeniSeviyorum,
	"seni-seviyorum-premium":  components.SeniSeviyorumPremium,
	"affet-beni":              components.AffetBeni,
	"affet-beni-classic":      components.AffetBeni,
	"affet-beni-signature":    components.AffetBeniSignature,
	"evlilik-teklifi-elegant": components.EvlilikTeklifi,
	"dogum-gunu":              components.DogumGunuStandard,
	"dogum-gunu-fun":          components.DogumGunuFun,
	"tesekkur":                components.Tesekkur,
	"ozur-dilerim":            components.OzurDilerimClassic,
	"ozur-dilerim-classic":    components.OzurDilerimClassic,
	"mutlu-yillar":            components.MutluYillar,
	"yil-donumu-luxe":         components.AnniversaryLuxe,
	"cikma-teklifi":           components.CikmaTeklifi,
	"romantik-mesaj":          components.RomantikMesaj,
}

func styleIndex(s DesignStyle) int {
	for i, st := range Styles {
		if st == s {
			return i
		}
	}
	return -1
}

// Dispatch picks exactly one component for slug and style. It is total:
// single-component slugs ignore style, a family with an absent or unknown
// style falls back to its default variant, and an unknown slug renders the
// generic default template.
func Dispatch(slug string, style DesignStyle) components.ID {
	if slug == "seni-seviyorum-teen" {
		if style == Eglenceli {
			return components.EglenceliSeniSeviyorum
		}
		return components.SeniSeviyorum
	}
	if id, ok := singles[slug]; ok {
		return id
	}
	if f, ok := families[slug]; ok {
		i := styleIndex(style)
		if i < 0 {
			i = styleIndex(f.def)
		}
		return f.variants[i]
	}
	return components.DefaultTemplate
}

// DefaultStyle returns the canonical variant style of a family slug, or ""
// for slugs that are not families.
func DefaultStyle(slug string) DesignStyle {
	return families[slug].def
}

// IsFamily reports whether slug has design-style variants.
func IsFamily(slug string) bool {
	_, ok := families[slug]
	return ok
}
