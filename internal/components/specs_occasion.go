package components

const apologyBody = "Biliyorum ki seni üzdüm ve bunun için çok pişmanım. Yaptığım hatalar için senden özür diliyorum. Sen benim için çok değerlisin ve seni kaybetmek istemiyorum. Lütfen beni affet. 🙏💕"

func init() {
	// apologies
	register(
		Spec{
			ID: AffetBeni, Name: "Affet Beni", Family: "affet-beni",
			Fields: []FieldSpec{
				recipient("Sevgilim"),
				text("subtitle", "🌹 Affet Beni 🌹"),
				message("mainMessage", apologyBody),
				text("footerMessage", "Seni çok seviyorum ve özür diliyorum! 💝"),
				text("quoteMessage", "\"Gerçek aşk, hatalarımızı kabul etmek ve affedilmeyi umut etmektir.\""),
				text("buttonLabel", "Beni Affet 🙏"),
			},
			Behavior: reveal("buttonLabel", "footerMessage"),
			Theme:    roseTheme,
		},
		Spec{
			ID: AffetBeniSignature, Name: "Affet Beni Signature", Family: "affet-beni-signature",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("title", "Affet Beni"),
				message("mainMessage", apologyBody),
				creator("signature", "Değerlim"),
				text("buttonLabel", "İmzayı Gör ✍️"),
			},
			Behavior: reveal("buttonLabel", "signature"),
			Theme:    goldTheme,
		},
		Spec{
			ID: OzurDilerimClassic, Name: "Özür Dilerim Classic", Family: "ozur-dilerim-classic",
			Fields: []FieldSpec{
				recipient("Sevgili Arkadaşım"),
				text("title", "Özür Dilerim 💙"),
				message("mainMessage", "Yaptığım hata için gerçekten çok üzgünüm. Seni kırdığım için kendimi affetmiyorum. Umarım beni anlayışla karşılar ve özrümü kabul edersin."),
				text("buttonLabel", "Özrümü Kabul Et 💙"),
				text("acceptedMessage", "Teşekkür ederim, seni kırmamak için elimden geleni yapacağım."),
			},
			Behavior: autoHide("buttonLabel", "acceptedMessage"),
			Theme:    Theme{Background: "bg-gradient-to-br from-sky-50 via-blue-50 to-indigo-100", Container: "bg-white/90 rounded-2xl shadow-xl border border-blue-200", TitleSize: "text-3xl md:text-5xl", TitleColor: "text-blue-800", SubtitleSize: "text-lg", SubtitleColor: "text-blue-600", MessageContainer: "bg-blue-50 border border-blue-200", MessageSize: "text-base md:text-lg", MessageColor: "text-slate-700", IconSize: "h-14 w-14", HeartColor: "text-blue-500"},
		},
	)

	thanksFields := func(title string) []FieldSpec {
		return []FieldSpec{
			recipient("Değerli İnsan"),
			text("title", title),
			message("message", "Hayatımda olduğun için çok şanslıyım. Bana verdiğin destek, sevgi ve anlayış için sana ne kadar teşekkür etsem az. Sen gerçekten çok özelsin ve seni ne kadar takdir ettiğimi bilmeni istiyorum. 🙏💕"),
			creator("creatorName", ""),
			text("buttonLabel", "Teşekkürümü Kabul Et 🎁"),
			text("celebrationMessage", "Sen harikasın! 🌟"),
		}
	}

	// tesekkur-adult
	register(
		Spec{
			ID: PremiumModernTesekkur, Name: "Premium Modern Teşekkür", Family: "tesekkur-adult",
			Fields:   thanksFields("Teşekkür Ederim"),
			Behavior: autoHide("buttonLabel", "celebrationMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: KlasikElegansTesekkur, Name: "Klasik Elegans Teşekkür", Family: "tesekkur-adult",
			Fields:   thanksFields("Minnettarım"),
			Behavior: reveal("buttonLabel", "celebrationMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: MinimalistNeonTesekkur, Name: "Minimalist Neon Teşekkür", Family: "tesekkur-adult",
			Fields:   thanksFields("TEŞEKKÜRLER"),
			Behavior: reveal("buttonLabel", "celebrationMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: EglenceliInteraktifTesekkur, Name: "Eğlenceli İnteraktif Teşekkür", Family: "tesekkur-adult",
			Fields:   thanksFields("Teşekkürler! 🎉"),
			Behavior: game(5, "buttonLabel", "celebrationMessage"),
			Theme:    partyTheme,
		},
	)

	// is-tebrigi
	register(
		Spec{
			ID: ModernCorporateCongrats, Name: "Modern Corporate Congrats", Family: "is-tebrigi",
			Fields: []FieldSpec{
				recipient("Başarılı Profesyonel"),
				text("newPosition", "Yeni Operasyon Direktörü"),
				text("companyName", "Atlas Teknoloji"),
				text("highlightMessage", "Yeni görevinizde parlamaya hazırsınız."),
				message("mainMessage", "Yeni pozisyonunda başarılarının katlanarak artmasını diliyoruz. Liderlik vizyonunla ekibini ileri taşıyacağına inanıyoruz."),
				text("leadershipLabel", "Takım Liderliği"),
				text("leadershipDesc", "Yüksek performans"),
				text("strategyLabel", "Strateji"),
				text("strategyDesc", "Güçlü vizyon"),
				text("ctaLabel", "Teşekkürler"),
			},
			Theme: corporateTheme,
		},
		Spec{
			ID: ClassicPrestigeCertificate, Name: "Classic Prestige Certificate", Family: "is-tebrigi",
			Fields: []FieldSpec{
				recipient("Sayın Profesyonel"),
				text("certificateLabel", "Resmi Tebrik Sertifikası"),
				text("certificateTitle", "Tebrikler! Yeni Görevinizde Başarılar"),
				text("newPosition", "Bölüm Direktörü"),
				text("companyName", "Atlas Teknoloji"),
				message("mainMessage", "Yeni görevinizdeki liderliğiniz ve vizyonunuzla ilham vermeye devam edeceğinize inanıyoruz. Başarılarınızın daim olmasını dileriz."),
				text("footerMessage", "Takımınız ve yol arkadaşlarınız adına..."),
				text("visionLabel", "Vizyon"),
				text("visionDesc", "Yeni ufuklar"),
			},
			Theme: goldTheme,
		},
		Spec{
			ID: MinimalistProfessionalCard, Name: "Minimalist Professional Card", Family: "is-tebrigi",
			Fields: []FieldSpec{
				recipient("Sevgili İş Ortağımız"),
				text("minimalTitle", "Yeni Göreviniz Hayırlı Olsun"),
				text("newPosition", "Operasyon Direktörü"),
				text("companyName", "Atlas Teknoloji"),
				text("startDate", "Hemen"),
				message("mainMessage", "Profesyonel yolculuğunuzun bu yeni adımında başarılarınızın devamını diliyoruz."),
				text("supplementMessage", "Takım arkadaşlarınız sizinle gurur duyuyor."),
				text("messageButtonLabel", "Mesaj Gönder"),
			},
			Theme: minimalTheme,
		},
		Spec{
			ID: PremiumDynamicCelebration, Name: "Premium Dynamic Celebration", Family: "is-tebrigi",
			Fields: []FieldSpec{
				recipient("Sevgili Liderimiz"),
				greeting("headline", "Tebrikler {name}!", "Tebrikler Sevgili Liderimiz!"),
				text("subHeadline", "Yeni görevinde başarılar diliyoruz"),
				text("newPosition", "Growth Direktörü"),
				text("companyName", "Atlas Teknoloji"),
				text("teamName", "Strateji ve Analiz"),
				message("mainMessage", "Takımın ve tüm şirketin ilham kaynağı olmaya devam edeceğine inanıyoruz. Enerjin ve vizyonunla yeni başarılara imza atacaksın."),
				text("secondaryMessage", "Yeni takım ruhu: İnovasyon ve cesaret"),
				text("celebrationButtonLabel", "Teşekkürler"),
			},
			Behavior: reveal("celebrationButtonLabel", "secondaryMessage"),
			Theme:    corporateTheme,
		},
	)

	// kandil-tebrigi
	kandil := func(id ID, name, title, sub string, theme Theme) Spec {
		return Spec{
			ID: id, Name: name, Family: "kandil-tebrigi",
			Fields: []FieldSpec{
				text("mainTitle", title),
				message("subMessage", sub),
				creator("creatorName", ""),
			},
			Theme: theme,
		}
	}
	register(
		kandil(KlasikAltinIsikli, "Klasik Altın Işıklı", "Mübarek Kandiliniz Kutlu Olsun", "Bu mübarek gecede dualarınız kabul olsun.", goldTheme),
		kandil(ModernSoftGlow, "Modern Soft Glow", "Hayırlı Kandiller 🌙", "Gönlünüz nurla, ömrünüz huzurla dolsun.", nightTheme),
		kandil(MinimalistGeceNur, "Minimalist Gece Nur", "Bu Kandil Gecesi Size Huzur Getirsin", "Geceniz mübarek, gönlünüz ferah olsun.", minimalTheme),
		kandil(SanatsalGoldInk, "Sanatsal Gold Ink", "Mübarek Kandil Geceniz Hayırlara Vesile Olsun", "Allah'ın rahmeti üzerinizde olsun.", goldTheme),
	)

	// yil-donumu
	register(
		Spec{
			ID: ModernTimelineAnniversary, Name: "Modern Timeline", Family: "yil-donumu",
			Fields: []FieldSpec{
				text("headlineMessage", "Zamanda Yolculuk"),
				message("mainMessage", "Birlikte geçirdiğimiz her an, hikayemizin en güzel sayfası."),
				text("timelineCta", "Birlikte Geçen Yıllarımız"),
				text("timelineFinalMessage", "Geçmişten geleceğe uzanan bu yolculukta her adımımız birlikte."),
				text("timelineClosing", "Mutlu Yıl Dönümü"),
			},
			Behavior: reveal("timelineCta", "timelineFinalMessage"),
			Theme:    pastelTheme,
		},
		Spec{
			ID: ClassicMemoryBox, Name: "Classic Memory Box", Family: "yil-donumu",
			Fields: []FieldSpec{
				text("hatiraHeadline", "Klasik Hatıra Kutusu"),
				text("hatiraSubtitle", "Mutlu Yıl Dönümü"),
				message("mainMessage", "Sevgili aşkım, birlikte biriktirdiğimiz her hatıra bu kutuda saklı."),
				text("hatiraButtonLabel", "Hatıraları Gör"),
				photo("hatiraBackgroundUrl", "https://images.unsplash.com/photo-1520854221050-0f4caff449fb?w=1280&q=80&auto=format&fit=crop"),
			},
			Behavior: reveal("hatiraButtonLabel", "mainMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: MinimalistSecretMessage, Name: "Minimalist Secret Message", Family: "yil-donumu",
			Fields: []FieldSpec{
				text("minimalistTitle", "Mutlu Yıl Dönümü"),
				text("minimalistSubtitle", "Şifreli Hatıra"),
				text("minimalistLockMessage", "Sırlarımızı hatırlıyor musun? Kilidi aç ve birlikte yazdığımız hikayeyi tekrar yaşa."),
				message("mainMessage", "İlk gülüşünden beri kalbime çizdiğin kavis hiç değişmedi."),
				text("minimalistFooter", "Açığa çıkan her sır bizi biraz daha yakınlaştırıyor."),
				text("unlockLabel", "Kilidi Aç 🔓"),
			},
			Behavior: reveal("unlockLabel", "mainMessage"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: InteractiveQuizCelebration, Name: "Interactive Quiz", Family: "yil-donumu",
			Fields: []FieldSpec{
				text("quizHeadline", "Mutlu Yıl Dönümü"),
				message("mainMessage", "Mini bir aşk quizine hazır mısın? Her doğru cevap yeni bir hatırayı açıyor."),
				text("quizButtonLabel", "Kutlamayı Başlat"),
				text("quizCompletionTitle", "Harikasın!"),
				text("quizCompletionMessage", "Soruların hepsini yanıtladın ve hatıra kutumuz parladı!"),
				text("quizReplay", "Tekrar Oyna"),
			},
			Behavior: game(3, "quizButtonLabel", "quizCompletionMessage"),
			Theme:    partyTheme,
		},
		Spec{
			ID: AnniversaryLuxe, Name: "Anniversary Luxe", Family: "yil-donumu-luxe",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("title", "Mutlu Yıl Dönümü"),
				text("eventDate", "14 Şubat 2024"),
				message("mainMessage", "Bugün, bizim hikayemizin en sevdiğim sayfası."),
				text("subtitle", "Bu özel gün, camın içinden süzülen ışık gibi zarifçe parlasın."),
				text("funButtonLabel", "Kutlamayı Gör"),
				text("funCelebrationTitle", "Parti Başlıyor!"),
				text("footerMessage", "Birlikte nice senelere!"),
			},
			Behavior: reveal("funButtonLabel", "funCelebrationTitle"),
			Theme:    goldTheme,
		},
	)
}
