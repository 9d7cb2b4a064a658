package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"orderlookup/internal/config"
	"orderlookup/internal/entity"
)

const zero = "0"

var currencySymbols = map[string]string{
	"RUB": "₽",
	"USD": "$",
	"EUR": "€",
	"KZT": "₸",
	"GBP": "£",
	"CNY": "¥",
	"JPY": "¥",
	"UAH": "₴",
	"BYN": "Br",
}

// Accepted date_created layouts, tried in order.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

type Options struct {
	Locale   string
	Location *time.Location
	// Currency is the suffix used when the payment does not name a currency.
	Currency string
}

func OptionsFromConfig(cfg config.Display) (Options, error) {
	const op = "render.OptionsFromConfig"

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return Options{}, fmt.Errorf("%s: load time zone %q: %w", op, cfg.TimeZone, err)
	}

	return Options{Locale: cfg.Locale, Location: loc, Currency: cfg.Currency}, nil
}

type (
	Field struct {
		Label string
		Value string
	}

	ItemRow struct {
		Name       string
		Price      string
		Sale       string
		Size       string
		TotalPrice string
		Brand      string
	}

	// OrderView holds every display string of an order card.
	OrderView struct {
		Title   string
		Summary []Field

		HasDelivery   bool
		DeliveryTitle string
		Delivery      []Field

		HasPayment   bool
		PaymentTitle string
		Payment      []Field

		HasItems   bool
		ItemsTitle string
		Columns    []string
		Items      []ItemRow
		NoItems    string
	}
)

// BuildView maps order to display strings. It never fails: every missing
// value is replaced by a placeholder or a zero.
func BuildView(order *entity.Order, l Localizer, opts Options) OrderView {
	if order == nil {
		order = &entity.Order{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	na := l.T("not specified")
	text := func(o entity.Optional[string]) string { return valueOr(o, na, identity) }

	view := OrderView{
		Title: l.T("Order"),
		Summary: []Field{
			{l.T("Order UID"), text(order.OrderUID)},
			{l.T("Track number"), text(order.TrackNumber)},
			{l.T("Entry"), text(order.Entry)},
			{l.T("Created"), formatDate(order.DateCreated, l.DateLayout(), opts.Location, na)},
			{l.T("Locale"), text(order.Locale)},
			{l.T("Customer ID"), text(order.CustomerID)},
			{l.T("Delivery service"), text(order.DeliveryService)},
			{l.T("Internal signature"), text(order.InternalSignature)},
			{l.T("Shard key"), text(order.Shardkey)},
			{l.T("SM ID"), valueOr(order.SmID, na, json.Number.String)},
			{l.T("OOF shard"), text(order.OofShard)},
		},
		DeliveryTitle: l.T("Delivery"),
		PaymentTitle:  l.T("Payment"),
		ItemsTitle:    l.T("Items (%d)", len(order.Items)),
		Columns: []string{
			l.T("Title"), l.T("Price"), l.T("Discount"), l.T("Size"), l.T("Total price"), l.T("Brand"),
		},
		NoItems: l.T("No items in the order"),
	}

	if d := order.Delivery; d != nil {
		view.HasDelivery = true
		view.Delivery = []Field{
			{l.T("Name"), text(d.Name)},
			{l.T("Phone"), text(d.Phone)},
			{l.T("Zip"), text(d.Zip)},
			{l.T("City"), text(d.City)},
			{l.T("Address"), text(d.Address)},
			{l.T("Region"), text(d.Region)},
			{l.T("Email"), text(d.Email)},
		}
	}

	suffix := currencySuffix(order.Payment, opts.Currency)
	money := func(o entity.Optional[json.Number], fallback string) string {
		return valueOr(o, fallback, func(n json.Number) string { return withSuffix(n.String(), suffix) })
	}

	if p := order.Payment; p != nil {
		view.HasPayment = true
		view.Payment = []Field{
			{l.T("Transaction"), text(p.Transaction)},
			{l.T("Request ID"), text(p.RequestID)},
			{l.T("Currency"), text(p.Currency)},
			{l.T("Provider"), text(p.Provider)},
			{l.T("Amount"), money(p.Amount, na)},
			{l.T("Payment time"), valueOr(p.PaymentDt, na, json.Number.String)},
			{l.T("Bank"), text(p.Bank)},
			{l.T("Delivery cost"), money(p.DeliveryCost, na)},
			{l.T("Goods total"), money(p.GoodsTotal, na)},
			{l.T("Custom fee"), money(p.CustomFee, na)},
		}
	}

	if len(order.Items) > 0 {
		view.HasItems = true
		view.Items = make([]ItemRow, 0, len(order.Items))
		zeroMoney := withSuffix(zero, suffix)

		for _, item := range order.Items {
			view.Items = append(view.Items, ItemRow{
				Name:       text(item.Name),
				Price:      money(item.Price, zeroMoney),
				Sale:       valueOr(item.Sale, zero, json.Number.String),
				Size:       valueOr(item.Size, zero, identity),
				TotalPrice: money(item.TotalPrice, zeroMoney),
				Brand:      text(item.Brand),
			})
		}
	}

	return view
}

// valueOr is the placeholder-or-value combinator: a set value is always
// formatted, including zero and empty values.
func valueOr[T any](o entity.Optional[T], fallback string, format func(T) string) string {
	v, ok := o.Get()
	if !ok {
		return fallback
	}
	return format(v)
}

func identity(s string) string { return s }

func withSuffix(value, suffix string) string {
	if suffix == "" {
		return value
	}
	return value + " " + suffix
}

func currencySuffix(p *entity.Payment, fallback string) string {
	if p == nil {
		return fallback
	}

	code := strings.ToUpper(strings.TrimSpace(p.Currency.OrElse("")))
	if code == "" {
		return fallback
	}
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

func formatDate(raw entity.Optional[string], layout string, loc *time.Location, fallback string) string {
	s, ok := raw.Get()
	if !ok {
		return fallback
	}

	for _, in := range dateInputLayouts {
		if t, err := time.ParseInLocation(in, strings.TrimSpace(s), loc); err == nil {
			return t.In(loc).Format(layout)
		}
	}
	return fallback
}
