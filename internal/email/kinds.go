package email

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Kind names an email template.
type Kind string

const (
	KindWelcome           Kind = "welcome"
	KindOrderConfirmation Kind = "order-confirmation"
	KindPaymentSuccess    Kind = "payment-success"
	KindPaymentFailed     Kind = "payment-failed"
	KindMessage           Kind = "message-notification"
	KindButtonClick       Kind = "button-click-notification"
)

// Data carries the template variables of one email.
type Data map[string]any

// Str returns key formatted as text. Missing keys yield "".
func (d Data) Str(key string) string {
	switch v := d[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func (d Data) withDefaults(siteURL string) Data {
	out := make(Data, len(d)+1)
	for k := range d {
		out[k] = d.Str(k)
	}
	out["siteUrl"] = siteURL
	return out
}

// DataError reports missing template variables. Message is shown to the
// caller as is.
type DataError struct {
	Message string
}

func (e *DataError) Error() string { return e.Message }

type kindSpec struct {
	required []string
	missing  string
	subject  func(Data) string
	body     *template.Template
}

func (k kindSpec) check(d Data) error {
	for _, key := range k.required {
		if v := d.Str(key); v == "" || v == "0" {
			return &DataError{Message: k.missing}
		}
	}
	return nil
}

// Kinds lists every supported email kind.
func Kinds() []Kind {
	return []Kind{KindWelcome, KindOrderConfirmation, KindPaymentSuccess, KindPaymentFailed, KindMessage, KindButtonClick}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

var kinds = map[Kind]kindSpec{
	KindWelcome: {
		required: []string{"name"},
		missing:  "İsim gerekli.",
		subject:  func(Data) string { return "Bir Mesaj Mutluluk'a Hoş Geldiniz! 🎉" },
		body: page("welcome", `<h1>Hoş geldin {{.name}}!</h1>
<p>Sevdiklerine özel mesaj sayfaları hazırlamaya hemen başlayabilirsin.</p>
<p><a class="btn" href="{{.siteUrl}}/templates">Şablonları keşfet</a></p>`),
	},
	KindOrderConfirmation: {
		required: []string{"orderId", "templateTitle", "amount", "recipientName"},
		missing:  "Sipariş detayları eksik.",
		subject:  func(d Data) string { return "Siparişiniz Alındı - #" + d.Str("orderId") },
		body: page("order", `<h1>Siparişiniz alındı</h1>
<p><strong>{{.recipientName}}</strong> için hazırladığınız <strong>{{.templateTitle}}</strong> siparişi oluşturuldu.</p>
<p>Sipariş no: #{{.orderId}}<br>Tutar: {{.amount}} ₺</p>`),
	},
	KindPaymentSuccess: {
		required: []string{"orderId", "templateTitle", "amount", "personalPageUrl"},
		missing:  "Ödeme detayları eksik.",
		subject:  func(d Data) string { return "Ödemeniz Başarılı - #" + d.Str("orderId") },
		body: page("payment-success", `<h1>Ödemeniz başarılı 🎉</h1>
<p><strong>{{.templateTitle}}</strong> sayfanız hazır. Sipariş no: #{{.orderId}}, tutar: {{.amount}} ₺.</p>
<p><a class="btn" href="{{.personalPageUrl}}">Sayfanı görüntüle</a></p>
<p>{{.personalPageUrl}}</p>`),
	},
	KindPaymentFailed: {
		required: []string{"orderId", "templateTitle"},
		missing:  "Ödeme detayları eksik.",
		subject:  func(d Data) string { return "Ödemeniz Tamamlanamadı - #" + d.Str("orderId") },
		body: page("payment-failed", `<h1>Ödemeniz tamamlanamadı</h1>
<p><strong>{{.templateTitle}}</strong> siparişiniz (#{{.orderId}}) için ödeme alınamadı. Hesabınızdan çekim yapılmadı.</p>
<p><a class="btn" href="{{.siteUrl}}/payment/{{.orderId}}">Tekrar dene</a></p>`),
	},
	KindMessage: {
		required: []string{"senderName", "recipientName", "messageUrl"},
		missing:  "Mesaj detayları eksik.",
		subject:  func(d Data) string { return d.Str("senderName") + " size özel bir mesaj gönderdi! 💌" },
		body: page("message", `<h1>Merhaba {{.recipientName}},</h1>
<p><strong>{{.senderName}}</strong> senin için özel bir sayfa hazırladı.</p>
<p><a class="btn" href="{{.messageUrl}}">Mesajı aç</a></p>`),
	},
	KindButtonClick: {
		required: []string{"recipientName", "senderName", "buttonType", "templateTitle", "personalPageUrl"},
		missing:  "Tıklama detayları eksik.",
		subject:  func(d Data) string { return d.Str("recipientName") + " mesajınızla etkileşime geçti! 🎉" },
		body: page("button-click", `<h1>Merhaba {{.senderName}},</h1>
<p><strong>{{.recipientName}}</strong>, <strong>{{.templateTitle}}</strong> sayfandaki "{{.buttonType}}" butonuna tıkladı{{with .clickedAt}} ({{.}}){{end}}.</p>
<p><a class="btn" href="{{.personalPageUrl}}">Sayfayı görüntüle</a></p>`),
	},
}

const layout = `<!DOCTYPE html>
<html lang="tr"><head><meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<style>body{margin:0;padding:32px 0;background:#fdf2f8;font-family:Arial,Helvetica,sans-serif;color:#374151}
.card{max-width:520px;margin:0 auto;background:#fff;border-radius:12px;padding:32px}
h1{color:#db2777;font-size:22px}.btn{display:inline-block;background:#ec4899;color:#fff;padding:12px 28px;border-radius:8px;text-decoration:none}
.foot{font-size:12px;color:#9ca3af;margin-top:32px}</style></head>
<body><div class="card">{{template "content" .}}
<p class="foot">Bir Mesaj Mutluluk · <a href="{{.siteUrl}}">{{.siteUrl}}</a></p></div></body></html>`

func page(name, content string) *template.Template {
	t := template.Must(template.New(name).Parse(layout))
	return template.Must(t.New("content").Parse(content)).Lookup(name)
}
