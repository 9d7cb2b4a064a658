package render_test

import (
	"encoding/json"
	"testing"
	"time"

	"orderlookup/internal/config"
	"orderlookup/internal/entity"
	"orderlookup/internal/render"

	"github.com/stretchr/testify/require"
)

var moscow = time.FixedZone("MSK", 3*60*60)

func decodeOrder(t *testing.T, body string) *entity.Order {
	t.Helper()

	var order entity.Order
	require.NoError(t, json.Unmarshal([]byte(body), &order))
	return &order
}

func fieldValue(t *testing.T, fields []render.Field, label string) string {
	t.Helper()

	for _, f := range fields {
		if f.Label == label {
			return f.Value
		}
	}
	t.Fatalf("no field %q in %v", label, fields)
	return ""
}

func TestBuildView_EmptyOrder(t *testing.T) {
	view := render.BuildView(decodeOrder(t, `{}`), render.NewLocalizer("en"), render.Options{Currency: "₽"})

	for _, f := range view.Summary {
		require.Equal(t, "not specified", f.Value, f.Label)
	}
	require.False(t, view.HasDelivery)
	require.False(t, view.HasPayment)
	require.False(t, view.HasItems)
	require.Equal(t, "No items in the order", view.NoItems)
}

func TestBuildView_NilOrder(t *testing.T) {
	view := render.BuildView(nil, render.NewLocalizer("en"), render.Options{})
	require.False(t, view.HasItems)
}

func TestBuildView_NullsAreUnset(t *testing.T) {
	view := render.BuildView(
		decodeOrder(t, `{"order_uid": null, "delivery": null, "payment": null, "items": null}`),
		render.NewLocalizer("en"),
		render.Options{},
	)

	require.Equal(t, "not specified", fieldValue(t, view.Summary, "Order UID"))
	require.False(t, view.HasDelivery)
	require.False(t, view.HasPayment)
	require.False(t, view.HasItems)
}

func TestBuildView_EmptyItemsShowsMessage(t *testing.T) {
	view := render.BuildView(decodeOrder(t, `{"items": []}`), render.NewLocalizer("en"), render.Options{})
	require.False(t, view.HasItems)
	require.Empty(t, view.Items)
}

func TestBuildView_ZeroValuesRenderAsZero(t *testing.T) {
	order := decodeOrder(t, `{
		"payment": {"currency": "RUB", "amount": 0, "delivery_cost": 0, "custom_fee": 0},
		"items": [{"name": "Mascaras", "price": 0, "sale": 0, "total_price": 0}]
	}`)

	view := render.BuildView(order, render.NewLocalizer("en"), render.Options{Currency: "₽"})

	require.Equal(t, "0 ₽", fieldValue(t, view.Payment, "Amount"))
	require.Equal(t, "0 ₽", fieldValue(t, view.Payment, "Delivery cost"))
	require.Equal(t, "not specified", fieldValue(t, view.Payment, "Goods total"))
	require.Equal(t, []render.ItemRow{{
		Name:       "Mascaras",
		Price:      "0 ₽",
		Sale:       "0",
		Size:       "0",
		TotalPrice: "0 ₽",
		Brand:      "not specified",
	}}, view.Items)
}

func TestBuildView_ItemDefaults(t *testing.T) {
	view := render.BuildView(decodeOrder(t, `{"items": [{}]}`), render.NewLocalizer("en"), render.Options{Currency: "₽"})

	require.True(t, view.HasItems)
	require.Equal(t, []render.ItemRow{{
		Name:       "not specified",
		Price:      "0 ₽",
		Sale:       "0",
		Size:       "0",
		TotalPrice: "0 ₽",
		Brand:      "not specified",
	}}, view.Items)
}

func TestBuildView_ItemsKeepInputOrder(t *testing.T) {
	order := decodeOrder(t, `{"items": [{"name": "c"}, {"name": "a"}, {"name": "b"}]}`)

	view := render.BuildView(order, render.NewLocalizer("en"), render.Options{})

	require.Len(t, view.Items, 3)
	require.Equal(t, "c", view.Items[0].Name)
	require.Equal(t, "a", view.Items[1].Name)
	require.Equal(t, "b", view.Items[2].Name)
	require.Equal(t, "Items (3)", view.ItemsTitle)
}

func TestBuildView_CurrencySuffix(t *testing.T) {
	testCases := []struct {
		desc     string
		body     string
		fallback string
		want     string
	}{
		{desc: "KnownCode", body: `{"payment": {"currency": "usd", "amount": 12}}`, fallback: "₽", want: "12 $"},
		{desc: "UnknownCode", body: `{"payment": {"currency": "CHF", "amount": 12}}`, fallback: "₽", want: "12 CHF"},
		{desc: "NoCurrency", body: `{"payment": {"amount": 12}}`, fallback: "₽", want: "12 ₽"},
		{desc: "NoSuffixAtAll", body: `{"payment": {"amount": 12.5}}`, fallback: "", want: "12.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			view := render.BuildView(decodeOrder(t, tc.body), render.NewLocalizer("en"), render.Options{Currency: tc.fallback})
			require.Equal(t, tc.want, fieldValue(t, view.Payment, "Amount"))
		})
	}
}

func TestBuildView_DateCreated(t *testing.T) {
	testCases := []struct {
		desc   string
		locale string
		raw    string
		want   string
	}{
		{desc: "EnglishUTC", locale: "en", raw: "2021-11-26T06:22:19Z", want: "11/26/2021, 9:22:19 AM"},
		{desc: "RussianUTC", locale: "ru", raw: "2021-11-26T06:22:19Z", want: "26.11.2021, 09:22:19"},
		{desc: "Fractional", locale: "ru", raw: "2021-11-26T06:22:19.123456+03:00", want: "26.11.2021, 06:22:19"},
		{desc: "NoZone", locale: "ru", raw: "2021-11-26T06:22:19", want: "26.11.2021, 06:22:19"},
		{desc: "Malformed", locale: "en", raw: "yesterday", want: "not specified"},
		{desc: "MalformedRussian", locale: "ru", raw: "", want: "Не указано"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			raw, err := json.Marshal(tc.raw)
			require.NoError(t, err)

			l := render.NewLocalizer(tc.locale)
			view := render.BuildView(
				decodeOrder(t, `{"date_created": `+string(raw)+`}`),
				l,
				render.Options{Location: moscow},
			)
			require.Equal(t, tc.want, view.Summary[3].Value)
		})
	}
}

func TestBuildView_DeliveryBlock(t *testing.T) {
	view := render.BuildView(
		decodeOrder(t, `{"delivery": {"name": "Test Testov", "city": ""}}`),
		render.NewLocalizer("en"),
		render.Options{},
	)

	require.True(t, view.HasDelivery)
	require.Equal(t, "Test Testov", fieldValue(t, view.Delivery, "Name"))
	require.Equal(t, "", fieldValue(t, view.Delivery, "City"))
	require.Equal(t, "not specified", fieldValue(t, view.Delivery, "Phone"))
	require.False(t, view.HasPayment)
}

func TestOptionsFromConfig_BadZone(t *testing.T) {
	_, err := render.OptionsFromConfig(config.Display{Locale: "en", TimeZone: "Mars/Olympus"})
	require.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	opts, err := render.OptionsFromConfig(config.Display{Locale: "ru", TimeZone: "UTC", Currency: "₽"})
	require.NoError(t, err)
	require.Equal(t, "UTC", opts.Location.String())
	require.Equal(t, "ru", opts.Locale)
	require.Equal(t, "₽", opts.Currency)
}
