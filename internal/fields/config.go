package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// InputType selects the form control used to edit a field.
type InputType string

const (
	InputText     InputType = "input"
	InputTextarea InputType = "textarea"
)

// Config describes one editable field on a template's order form.
type Config struct {
	Key          string
	Label        string
	Placeholder  string
	Type         InputType
	Required     bool
	MaxLength    int
	DefaultValue string
}

const (
	labelRecipient  = "Gönderilecek Kişi Adı"
	placeRecipient  = "Mesajı alacak kişinin adını girin"
	labelMusic      = "YouTube Müzik Linki (İsteğe Bağlı)"
	placeMusic      = "https://www.youtube.com/watch?v=... veya video ID"
	apologyMessage  = "Biliyorum ki seni üzdüm ve bunun için çok pişmanım. Yaptığım hatalar için senden özür diliyorum. Sen benim için çok değerlisin ve seni kaybetmek istemiyorum. Lütfen beni affet. 🙏💕"
	apologySubtitle = "🌹 Affet Beni 🌹"
	apologyFooter   = "Seni çok seviyorum ve özür diliyorum! 💝"
	apologyQuote    = "\"Gerçek aşk, hatalarımızı kabul etmek ve affedilmeyi umut etmektir.\""
	loveMainMessage = "Sen benim hayatımın en güzel parçasısın. Seninle geçirdiğim her an bir hayal gibi. Seni ne kadar sevdiğimi kelimelerle anlatmak mümkün değil. Her gün seni daha çok seviyorum. 💕"
	teenMainMessage = "Hey! Sen gerçekten çok özelsin ve seni ne kadar sevdiğimi bilmeni istiyorum. Seninle geçirdiğim her an harika! Sen benim için çok değerlisin. 💕✨"
	thanksMainAdult = "Hayatımda olduğun için çok şanslıyım. Bana verdiğin destek, sevgi ve anlayış için sana ne kadar teşekkür etsem az. Sen gerçekten çok özelsin ve seni ne kadar takdir ettiğimi bilmeni istiyorum. 🙏💕"
	newYearMain     = "Yeni yılın sana sağlık, mutluluk ve başarı getirmesini diliyorum! Bu yıl tüm hayallerin gerçek olsun. Mutlu yıllar! 🎉✨"
	birthdayFunMain = "Doğum günün kutlu olsun! Bu özel günde sana en güzel dilekleri gönderiyorum. Yeni yaşın sana sağlık, mutluluk ve başarı getirsin! 🎉🎂"
	proposalMain    = "Seninle geçirdiğim her an hayatımın en güzel anları. Artık hayatımın geri kalanını da seninle geçirmek istiyorum. Benimle evlenir misin?"
	proposalSpecial = "Sen benim hayatımın aşkısın, ruhuma dokunduğun ilk günden beri seni seviyorum."
	askOutMain      = "Kalbim her gün seninle daha da hızlanıyor. Bu anı birlikte büyülü kılmak için sana kalbimin en içten sorusunu soruyorum..."
	askOutQuestion  = "Benimle çıkar mısın?"
	askOutSecondary = "Bu anı sonsuza dek hatırlayalım. 💫"
)

func recipientField(label string) Config {
	if label == "" {
		label = labelRecipient
	}
	return Config{Key: "recipientName", Label: label, Placeholder: placeRecipient, Type: InputText, Required: true, MaxLength: 50}
}

func musicField() Config {
	return Config{Key: "musicUrl", Label: labelMusic, Placeholder: placeMusic, Type: InputText, MaxLength: 200}
}

func apologyFields() []Config {
	return []Config{
		recipientField(""),
		{Key: "subtitle", Label: "Alt Başlık", Placeholder: "Başlığın altında görünecek metin", Type: InputText, MaxLength: 100, DefaultValue: apologySubtitle},
		{Key: "mainMessage", Label: "Ana Mesajınız", Placeholder: "Özür mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: apologyMessage},
		{Key: "footerMessage", Label: "Alt Mesaj", Placeholder: "Sayfanın altında görünecek mesaj", Type: InputText, MaxLength: 150, DefaultValue: apologyFooter},
		{Key: "quoteMessage", Label: "Alıntı Mesajı", Placeholder: "En altta görünecek alıntı mesajı", Type: InputText, MaxLength: 200, DefaultValue: apologyQuote},
		musicField(),
	}
}

// configs holds the order-form fields for templates that declare them.
// Templates without an entry accept free-form text fields.
var configs = map[string][]Config{
	"seni-seviyorum": {
		recipientField(""),
		{Key: "mainMessage", Label: "Ana Mesajınız", Placeholder: "Sevdiklerinize iletmek istediğiniz ana mesajı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: loveMainMessage},
		{Key: "footerMessage", Label: "Alt Mesaj", Placeholder: "Sayfanın altında görünecek kısa mesaj", Type: InputText, MaxLength: 100, DefaultValue: "Sen benim her şeyimsin! 💝"},
		musicField(),
	},
	"affet-beni":         apologyFields(),
	"affet-beni-classic": apologyFields(),
	"seni-seviyorum-teen": {
		recipientField(""),
		{Key: "mainMessage", Label: "Ana Mesajınız", Placeholder: "Sevdiklerinize iletmek istediğiniz ana mesajı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: teenMainMessage},
		{Key: "footerMessage", Label: "Alt Mesaj", Placeholder: "Sayfanın altında görünecek kısa mesaj", Type: InputText, MaxLength: 100, DefaultValue: "Sen harikasın! 🌟💝"},
		musicField(),
	},
	"evlilik-teklifi-elegant": {
		recipientField(""),
		{Key: "mainMessage", Label: "Ana Mesajınız", Placeholder: "Evlilik teklifi mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: proposalMain},
		{Key: "footerMessage", Label: "Alt Mesaj", Placeholder: "Sayfanın altında görünecek mesaj", Type: InputText, MaxLength: 150, DefaultValue: "Seni sonsuza kadar seviyorum! 💍💕"},
		{Key: "specialMessage", Label: "Özel Mesaj", Placeholder: "Ek bir özel mesaj eklemek isterseniz...", Type: InputTextarea, MaxLength: 300, DefaultValue: proposalSpecial},
		musicField(),
	},
	"ozur-dilerim-classic": {
		recipientField(""),
		{Key: "mainMessage", Label: "Özür Mesajınız", Placeholder: "Özür mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: apologyMessage},
		musicField(),
	},
	"dogum-gunu-fun": {
		recipientField("Doğum Günü Sahibinin Adı"),
		{Key: "age", Label: "Yaş", Placeholder: "Kaç yaşına girdiğini yazın (ör: 25)", Type: InputText, MaxLength: 3},
		{Key: "mainMessage", Label: "Doğum Günü Mesajınız", Placeholder: "Doğum günü mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: birthdayFunMain},
		{Key: "wishMessage", Label: "Dilek Mesajı", Placeholder: "Özel bir dileğiniz varsa yazın...", Type: InputText, MaxLength: 150, DefaultValue: "Tüm hayallerin gerçek olsun! 🌟"},
		{Key: "footerMessage", Label: "Alt Mesaj", Placeholder: "Sayfanın altında görünecek mesaj", Type: InputText, MaxLength: 100, DefaultValue: "Nice mutlu yıllara! 🎈🎊"},
		musicField(),
	},
	"tesekkur-adult": {
		recipientField(""),
		{Key: "mainMessage", Label: "Teşekkür Mesajınız", Placeholder: "Teşekkür mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: thanksMainAdult},
		musicField(),
	},
	"mutlu-yillar-fun": {
		recipientField(""),
		{Key: "mainMessage", Label: "Yeni Yıl Mesajınız", Placeholder: "Yeni yıl mesajınızı yazın...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: newYearMain},
		musicField(),
	},
	"cikma-teklifi": {
		recipientField(""),
		{Key: "proposalQuestion", Label: "Teklif Sorusu", Placeholder: "Örn: Benimle çıkar mısın?", Type: InputText, Required: true, MaxLength: 80, DefaultValue: askOutQuestion},
		{Key: "mainMessage", Label: "Ana Mesajınız", Placeholder: "Duygularınızı paylaşmak için özel mesajınız...", Type: InputTextarea, Required: true, MaxLength: 500, DefaultValue: askOutMain},
		{Key: "secondaryMessage", Label: "Ek Mesaj", Placeholder: "Örn: Bu anı sonsuza dek hatırlayalım.", Type: InputText, MaxLength: 120, DefaultValue: askOutSecondary},
		musicField(),
	},
}

// ConfigFor returns the order-form fields for slug, or nil when the
// template does not declare any.
func ConfigFor(slug string) []Config {
	return configs[slug]
}

// DefaultTextFields collects the non-empty default values declared for slug.
// Unknown slugs yield an empty map.
func DefaultTextFields(slug string) Map {
	out := Map{}
	for _, c := range configs[slug] {
		if c.DefaultValue != "" {
			out[c.Key] = c.DefaultValue
		}
	}
	return out
}

// maxFreeFieldLength bounds values for templates without declared fields.
const maxFreeFieldLength = 1000

// Validate checks values against the declared configs for slug and returns
// a user-facing message per offending key. Empty result means valid.
// Templates without configs accept any key up to maxFreeFieldLength runes.
func Validate(slug string, values Map) map[string]string {
	problems := map[string]string{}
	cfgs := configs[slug]

	if cfgs == nil {
		for k, v := range values {
			if utf8.RuneCountInString(v) > maxFreeFieldLength {
				problems[k] = fmt.Sprintf("En fazla %d karakter olabilir.", maxFreeFieldLength)
			}
		}
		return problems
	}

	for _, c := range cfgs {
		v := strings.TrimSpace(values.Get(c.Key))
		if c.Required && v == "" && c.DefaultValue == "" {
			problems[c.Key] = c.Label + " zorunludur."
			continue
		}
		if c.MaxLength > 0 && utf8.RuneCountInString(v) > c.MaxLength {
			problems[c.Key] = fmt.Sprintf("%s en fazla %d karakter olabilir.", c.Label, c.MaxLength)
		}
	}
	return problems
}
