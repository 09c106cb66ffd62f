package components

func init() {
	register(
		// dogum-gunu-kutlama
		Spec{
			ID: PastelGradientCelebration, Name: "Pastel Gradient Celebration", Family: "dogum-gunu-kutlama",
			Fields: []FieldSpec{
				text("pastelTitle", "Doğum Günün Kutlu Olsun 🎉"),
				message("pastelSubtitle", "Bugün senin günün! Tüm dileklerin gerçek olsun 🎂"),
				text("pastelButtonLabel", "Kutlamayı Başlat 🎂"),
				text("pastelWishText", "Dileğini Tut! ✨"),
				text("pastelPhotoHint", "Özel Anıyı Gör"),
				photo("pastelPhotoUrl", samplePhoto),
			},
			Behavior: autoHide("pastelButtonLabel", "pastelWishText"),
			Theme:    pastelTheme,
		},
		Spec{
			ID: ElegantGoldInvitation, Name: "Elegant Gold Invitation", Family: "dogum-gunu-kutlama",
			Fields: []FieldSpec{
				text("klasikTitle", "Doğum Günün Kutlu Olsun"),
				text("klasikSubtitle", "Bugün senin günün 💫"),
				text("klasikButtonLabel", "Sürprizi Gör ✨"),
				message("klasikModalMessage", "Nice mutlu senelere! Hayatın hep güzel sürprizlerle dolu olsun. 🎂✨"),
				text("klasikPhotoHint", "Hatırayı Gör"),
				photo("klasikPhotoUrl", samplePhoto),
			},
			Behavior: reveal("klasikButtonLabel", "klasikModalMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: SimpleJoyCard, Name: "Simple Joy Card", Family: "dogum-gunu-kutlama",
			Fields: []FieldSpec{
				text("minimalTitle", "Doğum Günün Kutlu Olsun 🎂"),
				message("minimalSubtitle", "Mutlu yıllar dilerim!"),
				text("minimalButtonLabel", "🎈"),
				text("minimalWishText", "Dileğini tuttun mu?"),
				text("minimalPhotoHint", "Fotoğraf"),
				photo("minimalPhotoUrl", samplePhoto),
			},
			Behavior: autoHide("minimalButtonLabel", "minimalWishText"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: InteractivePartyMode, Name: "Interactive Party Mode", Family: "dogum-gunu-kutlama",
			Fields: []FieldSpec{
				text("partyTitle", "Sürprizini Aç 🎁"),
				text("partySubtitle", "Kutunun içinde seni bekleyen bir mesaj var!"),
				text("partyButtonLabel", "Kutuyu Aç 🎉"),
				message("partyRevealMessage", "Doğum Günün Kutlu Olsun!"),
				text("partyPhotoHint", "Sürpriz Fotoğraf"),
				photo("partyPhotoUrl", samplePhoto),
			},
			Behavior: reveal("partyButtonLabel", "partyRevealMessage"),
			Theme:    partyTheme,
		},

		// single birthday cards
		Spec{
			ID: DogumGunuStandard, Name: "Doğum Günü", Family: "dogum-gunu",
			Fields: []FieldSpec{
				recipient("Doğum Günü Sahibi"),
				text("title", "İyi ki Doğdun! 🎂"),
				message("mainMessage", "Doğum günün kutlu olsun! Yeni yaşın sana sağlık, mutluluk ve bol kahkaha getirsin."),
				text("buttonLabel", "Mumları Üfle 🕯️"),
				text("wishMessage", "Dileğin kabul olsun! ✨"),
			},
			Behavior: reveal("buttonLabel", "wishMessage"),
			Theme:    pastelTheme,
		},
		Spec{
			ID: DogumGunuFun, Name: "Eğlenceli Doğum Günü", Family: "dogum-gunu-fun",
			Fields: []FieldSpec{
				recipient("Doğum Günü Sahibi"),
				text("age", ""),
				message("mainMessage", "Doğum günün kutlu olsun! Bu özel günde sana en güzel dilekleri gönderiyorum. Yeni yaşın sana sağlık, mutluluk ve başarı getirsin! 🎉🎂"),
				text("buttonLabel", "Konfeti Patlat 🎊"),
				text("wishMessage", "Tüm hayallerin gerçek olsun! 🌟"),
				text("footerMessage", "Nice mutlu yıllara! 🎈🎊"),
			},
			Behavior: autoHide("buttonLabel", "wishMessage"),
			Theme:    partyTheme,
		},

		// mutlu-yillar-celebration
		Spec{
			ID: HolographicCelebration, Name: "Holographic Celebration", Family: "mutlu-yillar-celebration",
			Fields: []FieldSpec{
				text("holoTitle", "Mutlu Yıllar 🎆"),
				text("holoSubtitle", "Yeni yılın ışıkları umutlarını parıldatsın."),
				text("holoButtonLabel", "Yeni Yıla Başla ✨"),
				text("holoAfterMessage", "Harika bir yıl seni bekliyor"),
				message("holoBodyMessage", "Bu yıl gökyüzündeki her yıldız senin için parlasın. Dileklerin holografik ışıklar gibi hayatına yansısın."),
				photo("holoPhotoUrl", samplePhoto),
			},
			Behavior: reveal("holoButtonLabel", "holoAfterMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: GoldenMidnight, Name: "Golden Midnight", Family: "mutlu-yillar-celebration",
			Fields: []FieldSpec{
				text("goldTitle", "Yeni Yılın Kutlu Olsun 🥂"),
				text("goldSubtitle", "Yeni yılın zarif ışıltısı hep seninle olsun."),
				text("goldButtonLabel", "Sürprizi Aç 🎁"),
				text("goldAfterMessage", "Nice Mutlu Senelere!"),
				message("goldBodyMessage", "Gece yarısının altın saatinde, tüm dileklerin yıldız tozuyla gerçek olsun. Yeni başlangıçlara birlikte kadeh kaldıralım."),
				photo("goldPhotoUrl", ""),
			},
			Behavior: reveal("goldButtonLabel", "goldAfterMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: PureNewBeginning, Name: "Pure New Beginning", Family: "mutlu-yillar-celebration",
			Fields: []FieldSpec{
				text("minimalTitle", "Mutlu Yıllar!"),
				text("minimalSubtitle", "Yeni yıl sana huzur, denge ve taze başlangıçlar getirsin."),
				text("minimalButtonLabel", "Yeni Yılı Kutla 🎈"),
				text("minimalAfterMessage", "Yeni bir sayfa başladı ✨"),
				message("minimalBodyMessage", "Geçmişin ağırlığını geride bırakıp, umut dolu bir yılın kapısını aralıyoruz. Her yeni gün, hafif bir nefes ve sıcak bir tebessüm getirsin."),
				photo("minimalPhotoUrl", ""),
			},
			Behavior: reveal("minimalButtonLabel", "minimalAfterMessage"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: FireworkParty, Name: "Firework Party", Family: "mutlu-yillar-celebration",
			Fields: []FieldSpec{
				text("partyTitle", "Mutlu Yıllar 🎇"),
				text("partySubtitle", "Yeni yılın ilk dakikalarında seninle kutlamak bir harika!"),
				text("partyButtonLabel", "Ateşle Gösteriyi 🎆"),
				text("partyAfterMessage", "Harika Bir Yıl Seninle!"),
				message("partyBodyMessage", "Gökyüzü patlayan renklerle doluyor; dileklerin anında ışığa dönüşüyor. Yeni yılın her günü, bu an kadar eğlenceli ve renkli olsun!"),
				photo("partyPhotoUrl", ""),
			},
			Behavior: reveal("partyButtonLabel", "partyAfterMessage"),
			Theme:    partyTheme,
		},
	)

	newYearFields := func(wish, footer string) []FieldSpec {
		return []FieldSpec{
			recipient("Sevgili Dostum"),
			message("mainMessage", "Yeni yılın sana sağlık, mutluluk ve başarı getirmesini diliyorum! Bu yıl tüm hayallerin gerçek olsun. Mutlu yıllar! 🎉✨"),
			text("wishMessage", wish),
			text("footerMessage", footer),
			text("buttonLabel", "Kutlamayı Başlat 🎉"),
		}
	}

	// mutlu-yillar-fun
	register(
		Spec{
			ID: PremiumModernNewYear, Name: "Premium Modern", Family: "mutlu-yillar-fun",
			Fields:   newYearFields("Yeni yılda tüm dileklerin gerçek olsun! 🌟", "Nice mutlu yıllara! 🥂"),
			Behavior: reveal("buttonLabel", "wishMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: KlasikElegansNewYear, Name: "Klasik Elegans", Family: "mutlu-yillar-fun",
			Fields:   newYearFields("Huzur ve bereket dolu bir yıl dilerim.", "Sevgi ve saygılarımla"),
			Behavior: reveal("buttonLabel", "wishMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: MinimalistNeonNewYear, Name: "Minimalist Neon", Family: "mutlu-yillar-fun",
			Fields:   newYearFields("> yeni_yil.init() ✨", "> mutlu_yillar"),
			Behavior: reveal("buttonLabel", "wishMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: EglenceliInteraktifNewYear, Name: "Eğlenceli İnteraktif", Family: "mutlu-yillar-fun",
			Fields:   newYearFields("Tüm yıldızları topladın, dileğin kabul! ⭐", "Yeni yıl, yeni maceralar! 🎈"),
			Behavior: game(5, "buttonLabel", "wishMessage"),
			Theme:    partyTheme,
		},
	)
}
