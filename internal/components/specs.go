package components

const samplePhoto = "https://i.hizliresim.com/mojpwcv.png"

func text(key, def string) FieldSpec { return FieldSpec{Key: key, Default: def} }

func long(key, def string) FieldSpec {
	return FieldSpec{Key: key, Default: def, Multiline: true}
}

func message(key, def string) FieldSpec {
	return FieldSpec{Key: key, Default: def, Role: RoleMain, Multiline: true}
}

func recipient(def string) FieldSpec {
	return FieldSpec{Key: "recipientName", Default: def, Role: RoleRecipient}
}

func creator(key, def string) FieldSpec {
	return FieldSpec{Key: key, Default: def, Role: RoleCreator}
}

func photo(key, def string) FieldSpec {
	return FieldSpec{Key: key, Default: def, Role: RolePhoto}
}

func greeting(key, tmpl, def string) FieldSpec {
	return FieldSpec{Key: key, Default: def, Greeting: tmpl}
}

func reveal(trigger, revealed string) Behavior {
	return Behavior{Kind: RevealBehavior, TriggerKey: trigger, RevealKey: revealed}
}

func autoHide(trigger, revealed string) Behavior {
	return Behavior{Kind: AutoHideBehavior, TriggerKey: trigger, RevealKey: revealed}
}

func game(targets int, trigger, revealed string) Behavior {
	return Behavior{Kind: GameBehavior, Targets: targets, TriggerKey: trigger, RevealKey: revealed}
}

// styled builds one of the generic cards that take their theme from the
// requested design style.
func styled(id ID, name, recipientDefault, subtitle, body string) Spec {
	return Spec{
		ID:   id,
		Name: name,
		Fields: []FieldSpec{
			creator("creatorName", ""),
			greeting("recipientName", "{name},", recipientDefault),
			text("subtitle", subtitle),
			message("message", body),
		},
		UsesStyleTheme: true,
	}
}

func init() {
	register(
		Spec{
			ID:   DefaultTemplate,
			Name: "Varsayılan",
			Fields: []FieldSpec{
				creator("creatorName", ""),
				greeting("recipientName", "{name},", "Sevgili İnsan,"),
				{Key: "title", Role: RoleTitle},
				message("message", "Bu özel mesaj sizin için hazırlandı."),
			},
			UsesStyleTheme: true,
		},
		styled(Tesekkur, "Teşekkür", "Değerli İnsan,", "Teşekkür Ederim 🌟",
			"Bana gösterdiğin destek ve anlayış için çok teşekkür ederim. Senin gibi değerli insanların varlığı hayatımı çok daha anlamlı kılıyor."),
		styled(MutluYillar, "Mutlu Yıllar", "Sevgili Dostum,", "Mutlu Yıllar! ✨",
			"Yeni yıl yeni umutlar, yeni başlangıçlar demek. Bu yıl sana sağlık, mutluluk ve başarı getirsin. Mutlu yıllar!"),
		styled(RomantikMesaj, "Romantik Mesaj", "Aşkım,", "Sana Özel Bir Mesaj 💖",
			"Sen benim hayatımın en güzel parçasısın. Seninle geçirdiğim her an bir hayal gibi. Seni ne kadar sevdiğimi kelimelerle anlatmak mümkün değil."),
	)
}
