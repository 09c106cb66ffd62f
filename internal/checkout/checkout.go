// Package checkout prices AI credit packages and turns a chosen package
// into a pending order.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/shortid"
)

// Quote is the price breakdown shown before payment.
type Quote struct {
	BaseCents  int64
	TaxCents   int64
	TotalCents int64
}

// NewQuote adds tax to a base price in kuruş.
func NewQuote(baseCents int64) Quote {
	tax := taxOn(baseCents)
	return Quote{BaseCents: baseCents, TaxCents: tax, TotalCents: baseCents + tax}
}

func (q Quote) Base() string  { return Lira(q.BaseCents) }
func (q Quote) Tax() string   { return Lira(q.TaxCents) }
func (q Quote) Total() string { return Lira(q.TotalCents) }

type uiConfig struct {
	icon     string
	gradient string
	features []string
}

var baseFeatures = []string{
	"AI template oluşturma/düzenleme",
	"Sınırsız taslak saklama",
	"Generate + Refine aynı havuzdan",
	"Kredi asla bitmesin",
	"İstediğiniz zaman kullanın",
}

const fallbackPackage = "credits-10"

var uiConfigs = map[string]uiConfig{
	"credits-10": {icon: "sparkles", gradient: "from-blue-500 to-cyan-500", features: baseFeatures},
	"credits-30": {icon: "star", gradient: "from-purple-500 to-pink-500",
		features: append(append([]string(nil), baseFeatures...), "33% daha avantajlı!")},
	"credits-100": {icon: "crown", gradient: "from-amber-500 to-orange-500",
		features: append(append([]string(nil), baseFeatures...), "50% daha avantajlı!", "Öncelikli AI üretimi")},
}

// Summary is everything the checkout page shows about a package.
type Summary struct {
	PackageID string
	Name      string
	Subtitle  string
	Credits   int
	Icon      string
	Gradient  string
	Features  []string
	Quote     Quote
}

// Summarize builds the checkout summary of pkg. Packages without their own
// presentation borrow the credits-10 one.
func Summarize(pkg models.CreditPackage) Summary {
	ui, ok := uiConfigs[pkg.ID]
	if !ok {
		ui = uiConfigs[fallbackPackage]
	}
	features := make([]string, len(ui.features))
	for i, f := range ui.features {
		features[i] = fields.ReplaceFirstNumber(f, pkg.Credits)
	}
	// Whole lira, as the package list shows it.
	base := (pkg.PriceCents + 50) / 100 * 100
	return Summary{
		PackageID: pkg.ID,
		Name:      pkg.Name,
		Subtitle:  fmt.Sprintf("%d AI Kullanım Hakkı", pkg.Credits),
		Credits:   pkg.Credits,
		Icon:      ui.icon,
		Gradient:  ui.gradient,
		Features:  features,
		Quote:     NewQuote(base),
	}
}

// OrderCreator persists a new order.
type OrderCreator interface {
	Create(ctx context.Context, o *models.Order) (*models.Order, error)
}

// Buyer is the signed-in user paying for credits.
type Buyer struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Service creates credit purchase orders.
type Service struct {
	orders OrderCreator
	now    func() time.Time
}

// NewService returns a Service backed by orders.
func NewService(orders OrderCreator) *Service {
	return &Service{orders: orders, now: time.Now}
}

// CreateOrder inserts a pending credit order for pkg and returns it along
// with the payment page the buyer is sent to.
func (s *Service) CreateOrder(ctx context.Context, buyer Buyer, pkg models.CreditPackage) (*models.Order, string, error) {
	sum := Summarize(pkg)
	ref, err := shortid.Credit(s.now())
	if err != nil {
		return nil, "", err
	}
	uid := buyer.ID
	order := &models.Order{
		ShortID:          ref,
		Type:             models.OrderCreditPurchase,
		UserID:           &uid,
		BuyerEmail:       buyer.Email,
		SenderName:       buyer.Name,
		RecipientName:    sum.Name,
		Message:          fmt.Sprintf("%d AI Kredisi Satın Alımı", pkg.Credits),
		DesignStyle:      "modern",
		TotalCents:       sum.Quote.TotalCents,
		Status:           models.OrderPending,
		PaymentProvider:  "paytr",
		PaymentReference: ref,
		TextFields: fields.Map{
			"package_id":   pkg.ID,
			"package_name": sum.Name,
			"credits":      strconv.Itoa(pkg.Credits),
			"base_price":   Decimal(sum.Quote.BaseCents),
			"tax":          Decimal(sum.Quote.TaxCents),
			"order_type":   string(models.OrderCreditPurchase),
		},
	}
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("create credit order: %w", err)
	}
	return created, "/payment/" + created.ID.String(), nil
}
