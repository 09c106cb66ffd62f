package components

const heartOwner = "Kalbimin Sahibi"

func init() {
	register(
		// romantik-mesaj-elegant
		Spec{
			ID: NeonGlowLove, Name: "Neon Glow Love", Family: "romantik-mesaj-elegant",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("headline", "Seninle her şey daha anlamlı ❤️"),
				message("mainMessage", "Şehrin ışıkları sönse bile kalbimdeki ışık hep senin için yanacak."),
				text("subtext", "Şehrin ışıkları arasında bile senin gülüşün en parlak olanı."),
				text("ctaText", "Birlikte Parlıyoruz ✨"),
			},
			Theme: neonTheme,
		},
		Spec{
			ID: RomanticLetterScene, Name: "Romantic Letter Scene", Family: "romantik-mesaj-elegant",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("letterTitle", "Seni Seviyorum"),
				message("letterBody", "Bu mektubu yazarken kalbim yine seninle atıyor. İyi ki hayatımdasın."),
				creator("letterSignature", "Sevgiyle"),
				text("letterButtonLabel", "Mektubu Kapat"),
			},
			Behavior: reveal("letterButtonLabel", "letterBody"),
			Theme:    roseTheme,
		},
		Spec{
			ID: PureLoveMinimal, Name: "Pure Love Minimal", Family: "romantik-mesaj-elegant",
			Fields: []FieldSpec{
				recipient(heartOwner),
				message("minimalMessage", "Sen olunca her şey tamam."),
				text("minimalAlternate", "Seni Seviyorum"),
				text("minimalSignature", "Kalbimin en saf köşesi seninle."),
				text("minimalTagline", "Pure Love"),
				long("minimalNote", "Sessiz bir mutluluk ve kalbimden düşen sade bir ışık... her şey seninle tamamlanıyor."),
				text("minimalToggleIcon", "❤️"),
			},
			Behavior: reveal("minimalToggleIcon", "minimalAlternate"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: HeartAdventureInteractive, Name: "Heart Adventure", Family: "romantik-mesaj-elegant",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("gameIntro", "Beni Bulabilir misin?"),
				message("gameWinMessage", "Seni Seviyorum"),
				text("gameButtonText", "Kalp Avını Başlat ❤️"),
				text("gameHelper", "Uçuşan kalpleri yakala, sonuncu seni bekliyor!"),
			},
			Behavior: game(heartCount, "gameButtonText", "gameWinMessage"),
			Theme:    roseTheme,
		},

		// seni-seviyorum family of single cards
		Spec{
			ID: SeniSeviyorum, Name: "Seni Seviyorum", Family: "seni-seviyorum",
			Fields: []FieldSpec{
				recipient(heartOwner),
				message("mainMessage", "Sen benim hayatımın en güzel parçasısın. Seninle geçirdiğim her an bir hayal gibi. Seni ne kadar sevdiğimi kelimelerle anlatmak mümkün değil. Her gün seni daha çok seviyorum. 💕"),
				text("footerMessage", "Sen benim her şeyimsin! 💝"),
				text("buttonLabel", "Kalbimi Aç 💖"),
			},
			Behavior: reveal("buttonLabel", "mainMessage"),
			Theme:    roseTheme,
		},
		Spec{
			ID: EglenceliSeniSeviyorum, Name: "Eğlenceli Seni Seviyorum", Family: "seni-seviyorum-teen",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("question", "Beni seviyor musun? 💭"),
				text("waitingMessage", "Çok merak ediyorum... Lütfen dürüst ol! 💭"),
				message("mainMessage", "Hey! Sen gerçekten çok özelsin ve seni ne kadar sevdiğimi bilmeni istiyorum. Seninle geçirdiğim her an harika! Sen benim için çok değerlisin. 💕✨"),
				text("yesMessage", "Bu kadar mutlu olmamıştım! Seni çok ama çok seviyorum! 💕"),
				text("footerMessage", "Sen harikasın! 🌟💝"),
			},
			Behavior: reveal("question", "yesMessage"),
			Theme:    partyTheme,
		},
		Spec{
			ID: SeniSeviyorumPremium, Name: "Seni Seviyorum Premium", Family: "seni-seviyorum-premium",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("heroTitle", "Seni Seviyorum"),
				text("heroSubtitle", "Kalbimin her ritmindesin."),
				message("mainMessage", "Kalbimin her ritmindesin."),
				text("ctaLabel", "Kalbimi Kabul Et 💘"),
				text("readLabel", "Seni Okuyorum ❤️"),
				text("signature", "Daima Aşk ile"),
			},
			Behavior: reveal("ctaLabel", "mainMessage"),
			Theme:    roseTheme,
		},
		Spec{
			ID: EvlilikTeklifi, Name: "Evlilik Teklifi", Family: "evlilik-teklifi-elegant",
			Fields: []FieldSpec{
				recipient(heartOwner),
				message("mainMessage", "Seninle geçirdiğim her an hayatımın en güzel anları. Artık hayatımın geri kalanını da seninle geçirmek istiyorum. Benimle evlenir misin?"),
				long("specialMessage", "Sen benim hayatımın aşkısın, ruhuma dokunduğun ilk günden beri seni seviyorum."),
				text("footerMessage", "Seni sonsuza kadar seviyorum! 💍💕"),
				text("buttonLabel", "Yüzüğü Gör 💍"),
			},
			Behavior: reveal("buttonLabel", "specialMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: CikmaTeklifi, Name: "Çıkma Teklifi", Family: "cikma-teklifi",
			Fields: []FieldSpec{
				recipient(heartOwner),
				text("proposalQuestion", "Benimle çıkar mısın?"),
				message("mainMessage", "Kalbim her gün seninle daha da hızlanıyor. Bu anı birlikte büyülü kılmak için sana kalbimin en içten sorusunu soruyorum..."),
				text("secondaryMessage", "Bu anı sonsuza dek hatırlayalım. 💫"),
				text("acceptLabel", "Evet! 💖"),
			},
			Behavior: reveal("acceptLabel", "secondaryMessage"),
			Theme:    roseTheme,
		},

		// surpriz-randevu-daveti
		Spec{
			ID: SoftGlassInvitation, Name: "Soft Glass Invitation", Family: "surpriz-randevu-daveti",
			Fields: []FieldSpec{
				text("modernTitle", "Birlikte Olmak İster misin?"),
				text("modernSubtitle", "Lavanta tonlarında bir akşam planladım. 14 Şubat 19.30, favori kafemizde buluşalım mı?"),
				text("modernButtonLabel", "Detayları Gör 💫"),
				text("modernPanelTitle", "Cam Panelin Ardındaki Sürpriz"),
				message("modernPanelMessage", "Önce seni mor ışıklarla karşılayacak ufak bir galeriye götürüyorum. Sonra gizli terasta senin için hazırladığım menü var."),
				text("modernPanelSecondary", "Dress code: Lavanta & beyaz. Rahat ayakkabı getir."),
				text("modernPhotoHint", "Fotoğrafı Görüntüle"),
				photo("modernPhotoUrl", samplePhoto),
				creator("modernSignatureLabel", "Sevgilerle,"),
			},
			Behavior: reveal("modernButtonLabel", "modernPanelMessage"),
			Theme:    pastelTheme,
		},
		Spec{
			ID: RomantikAksamInvitation, Name: "Romantik Akşam Invitation", Family: "surpriz-randevu-daveti",
			Fields: []FieldSpec{
				text("classicTitle", "Seni Özel Bir Akşama Davet Ediyorum 🌙"),
				text("classicSubtitle", "18 Şubat Cumartesi | 20.00 | Galata'da buluşma noktası"),
				text("classicButtonLabel", "Davetiyeyi Aç ✨"),
				text("classicEnvelopeHeading", "Altın Zarfı Aç"),
				message("classicEnvelopeMessage", "Seni zarif bir akşam yemeğine davet ediyorum. Şehrin ışıkları altında yalnızca ikimizin paylaşacağı bir masa ayırttım. Gecenin her detayı seninle daha da güzel olacak."),
				text("classicEnvelopeFooter", "El ele yıldızları izlemeye ne dersin?"),
				text("classicPhotoHint", "Fotoğrafı Gör"),
				photo("classicPhotoUrl", samplePhoto),
				creator("classicSignatureLabel", "Kalpten davetle,"),
			},
			Behavior: reveal("classicButtonLabel", "classicEnvelopeMessage"),
			Theme:    goldTheme,
		},
		Spec{
			ID: CleanRomanticPlan, Name: "Clean Romantic Plan", Family: "surpriz-randevu-daveti",
			Fields: []FieldSpec{
				text("minimalTitle", "Küçük Bir Planım Var 💙"),
				text("minimalSubtitle", "Cumartesi seni şaşırtacağım... Rahat bir şeyler giy lütfen."),
				text("minimalButtonLabel", "Spoiler Verme 🙈"),
				message("minimalBubbleText", "Sadece küçük bir ipucu: kısa bir yürüyüş ve ardından sıcak bir kahve molası."),
				text("minimalPhotoHint", "Polaroidi Aç"),
				photo("minimalPhotoUrl", samplePhoto),
				creator("minimalSignatureLabel", "Buluşma ortağın:"),
			},
			Behavior: reveal("minimalButtonLabel", "minimalBubbleText"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: HiddenSurpriseGame, Name: "Hidden Surprise Game", Family: "surpriz-randevu-daveti",
			Fields: []FieldSpec{
				text("funTitle", "Sürprizi Bulabilir misin? 🎁"),
				text("funSubtitle", "Kutulardan biri akşamki planı saklıyor. Hazır mısın?"),
				text("funButtonOneLabel", "1️⃣"),
				text("funButtonTwoLabel", "2️⃣"),
				text("funButtonThreeLabel", "3️⃣"),
				text("funButtonOneMessage", "Bu kutu sıcak bir hazırlık ipucu veriyor: çikolata molası!"),
				text("funButtonTwoMessage", "Yaklaştın! Rahat ayakkabıları hazırlamayı unutma."),
				message("funButtonThreeMessage", "Doğru kutu! Rooftop'ta senin için sakladığım bir masa var."),
				text("funSuccessMessage", "Tebrikler! Yarın akşam buluşuyoruz ❤️"),
				text("funPhotoHint", "Sürpriz Fotoğrafı Gör"),
				photo("funPhotoUrl", ""),
				creator("funSignatureLabel", "Planın kahramanı:"),
			},
			Behavior: game(3, "funTitle", "funSuccessMessage"),
			Theme:    partyTheme,
		},

		// tesekkur-ederim-askim
		Spec{
			ID: NeonSoftGlowThanks, Name: "Neon Soft Glow Thanks", Family: "tesekkur-ederim-askim",
			Fields: []FieldSpec{
				text("modernTitle", "Teşekkür Ederim Aşkım 💜"),
				greeting("modernSubtitle", "{name}, Neon ışıklar kadar büyülü bir minnet.", "Neon ışıklar kadar büyülü bir minnet."),
				text("modernButtonLabel", "Söylemek İstediklerim 💬"),
				message("modernDrawerMessage", "Seninle paylaştığım her an, mor neon ışıklar gibi kalbimde yumuşacık bir iz bırakıyor. Her gülüşün geceyi aydınlatan bir parıltı gibi. İyi ki varsın."),
				text("modernSecondaryLine", "Birlikte parlamaya devam edelim 💫"),
				photo("modernPhotoUrl", ""),
			},
			Behavior: reveal("modernButtonLabel", "modernDrawerMessage"),
			Theme:    neonTheme,
		},
		Spec{
			ID: LetterRoseThanks, Name: "Letter Rose Thanks", Family: "tesekkur-ederim-askim",
			Fields: []FieldSpec{
				text("classicTitle", "Teşekkür Ederim Aşkım"),
				text("classicSubtitle", "Kalbimin en zarif mektubunu sana gönderiyorum."),
				text("classicButtonLabel", "Mektubu Aç ✉️"),
				message("classicLetterMessage", "Sevgili aşkım, seninle geçen her an bana hayatın en güzel armağanı gibi geliyor. Nazik gülüşünü, sabrını ve sevgini her hissettiğimde kalbim yeniden çiçek açıyor. İyi ki varsın, iyi ki kalbimin ortağısın."),
				text("classicLetterSignature", "Sonsuz sevgiyle 💌"),
				photo("classicPhotoUrl", ""),
			},
			Behavior: reveal("classicButtonLabel", "classicLetterMessage"),
			Theme:    roseTheme,
		},
		Spec{
			ID: PureLoveMinimalThanks, Name: "Pure Love Minimal Thanks", Family: "tesekkur-ederim-askim",
			Fields: []FieldSpec{
				text("minimalMainText", "Teşekkür Ederim"),
				{Key: "minimalAccentText", Default: "Aşkım", Role: RoleRecipient},
				text("minimalButtonLabel", "❤️"),
				message("minimalPopupText", "Sen her şeyin en güzeline layıksın"),
				text("minimalBodyText", "Sıradan bir gün, seninle olağanüstü bir ana dönüşüyor."),
			},
			Behavior: reveal("minimalButtonLabel", "minimalPopupText"),
			Theme:    minimalTheme,
		},
		Spec{
			ID: HeartBubblesThanks, Name: "Heart Bubbles Thanks", Family: "tesekkur-ederim-askim",
			Fields: []FieldSpec{
				text("funTitle", "Teşekkür Ederim Aşkım!"),
				text("funSubtitle", "Kalbimi rengârenk baloncuklarla doldurduğun için."),
				text("funButtonLabel", "Balonları Patlat 🎈"),
				text("funBubbleMessage1", "İyi ki varsın!"),
				text("funBubbleMessage2", "Her günün kahramanı sensin 💖"),
				text("funBubbleMessage3", "Sevgin her şeyi güzelleştiriyor ✨"),
				message("funBubbleMessage4", "Sonsuz teşekkürler!"),
				photo("funPhotoUrl", ""),
			},
			Behavior: game(4, "funButtonLabel", "funBubbleMessage4"),
			Theme:    partyTheme,
		},
	)
}
