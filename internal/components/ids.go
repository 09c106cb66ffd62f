package components

// Generic components, themed by the requested design style.
const (
	DefaultTemplate ID = "default"
	Tesekkur        ID = "tesekkur"
	MutluYillar     ID = "mutlu-yillar"
	RomantikMesaj   ID = "romantik-mesaj"
)

// Single-component templates.
const (
	SeniSeviyorum          ID = "seni-seviyorum"
	EglenceliSeniSeviyorum ID = "eglenceli-seni-seviyorum"
	SeniSeviyorumPremium   ID = "seni-seviyorum-premium"
	AffetBeni              ID = "affet-beni"
	AffetBeniSignature     ID = "affet-beni-signature"
	EvlilikTeklifi         ID = "evlilik-teklifi"
	DogumGunuStandard      ID = "dogum-gunu-standard"
	DogumGunuFun           ID = "dogum-gunu-fun"
	OzurDilerimClassic     ID = "ozur-dilerim-classic"
	AnniversaryLuxe        ID = "anniversary-luxe"
	CikmaTeklifi           ID = "cikma-teklifi"
)

// tesekkur-ederim-askim
const (
	NeonSoftGlowThanks    ID = "neon-soft-glow-thanks"
	LetterRoseThanks      ID = "letter-rose-thanks"
	PureLoveMinimalThanks ID = "pure-love-minimal-thanks"
	HeartBubblesThanks    ID = "heart-bubbles-thanks"
)

// surpriz-randevu-daveti
const (
	SoftGlassInvitation     ID = "soft-glass-invitation"
	RomantikAksamInvitation ID = "romantik-aksam-invitation"
	CleanRomanticPlan       ID = "clean-romantic-plan"
	HiddenSurpriseGame      ID = "hidden-surprise-game"
)

// tesekkur-adult
const (
	PremiumModernTesekkur       ID = "premium-modern-tesekkur"
	KlasikElegansTesekkur       ID = "klasik-elegans-tesekkur"
	MinimalistNeonTesekkur      ID = "minimalist-neon-tesekkur"
	EglenceliInteraktifTesekkur ID = "eglenceli-interaktif-tesekkur"
)

// mutlu-yillar-celebration
const (
	HolographicCelebration ID = "holographic-celebration"
	GoldenMidnight         ID = "golden-midnight"
	PureNewBeginning       ID = "pure-new-beginning"
	FireworkParty          ID = "firework-party"
)

// mutlu-yillar-fun
const (
	PremiumModernNewYear       ID = "premium-modern-new-year"
	KlasikElegansNewYear       ID = "klasik-elegans-new-year"
	MinimalistNeonNewYear      ID = "minimalist-neon-new-year"
	EglenceliInteraktifNewYear ID = "eglenceli-interaktif-new-year"
)

// yil-donumu
const (
	ModernTimelineAnniversary  ID = "modern-timeline-anniversary"
	ClassicMemoryBox           ID = "classic-memory-box"
	MinimalistSecretMessage    ID = "minimalist-secret-message"
	InteractiveQuizCelebration ID = "interactive-quiz-celebration"
)

// is-tebrigi
const (
	ModernCorporateCongrats    ID = "modern-corporate-congrats"
	ClassicPrestigeCertificate ID = "classic-prestige-certificate"
	MinimalistProfessionalCard ID = "minimalist-professional-card"
	PremiumDynamicCelebration  ID = "premium-dynamic-celebration"
)

// romantik-mesaj-elegant
const (
	NeonGlowLove              ID = "neon-glow-love"
	RomanticLetterScene       ID = "romantic-letter-scene"
	PureLoveMinimal           ID = "pure-love-minimal"
	HeartAdventureInteractive ID = "heart-adventure-interactive"
)

// dogum-gunu-kutlama
const (
	PastelGradientCelebration ID = "pastel-gradient-celebration"
	ElegantGoldInvitation     ID = "elegant-gold-invitation"
	SimpleJoyCard             ID = "simple-joy-card"
	InteractivePartyMode      ID = "interactive-party-mode"
)

// kandil-tebrigi
const (
	KlasikAltinIsikli ID = "klasik-altin-isikli"
	ModernSoftGlow    ID = "modern-soft-glow"
	MinimalistGeceNur ID = "minimalist-gece-nur"
	SanatsalGoldInk   ID = "sanatsal-gold-ink"
)
