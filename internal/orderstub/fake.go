package orderstub

import (
	"encoding/json"
	"strconv"
	"time"

	"orderlookup/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
)

const _percent = 100

// FakeOrder builds a fully populated order. Item totals apply the sale discount and
// the payment sums are consistent with the items.
func FakeOrder(f *gofakeit.Faker) entity.Order {
	trackNumber := "WBIL" + f.LetterN(10)
	itemsCount := f.Number(1, 5)

	items := make([]entity.Item, 0, itemsCount)
	var goodsTotal uint64
	for range itemsCount {
		item, total := fakeItem(f, trackNumber)
		items = append(items, item)
		goodsTotal += total
	}

	deliveryCost := uint64(f.UintRange(100, 1500))
	customFee := uint64(f.UintRange(0, 50))
	created := f.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).UTC()

	address := f.Address()
	return entity.Order{
		OrderUID:    entity.Some(f.LetterN(16) + "test"),
		TrackNumber: entity.Some(trackNumber),
		Entry:       entity.Some("WBIL"),
		Delivery: &entity.Delivery{
			Name:    entity.Some(f.Name()),
			Phone:   entity.Some("+" + f.Numerify("##########")),
			Zip:     entity.Some(address.Zip),
			City:    entity.Some(address.City),
			Address: entity.Some(address.Street),
			Region:  entity.Some(address.State),
			Email:   entity.Some(f.Email()),
		},
		Payment: &entity.Payment{
			Transaction:  entity.Some(f.UUID()),
			RequestID:    entity.Some(""),
			Currency:     entity.Some(f.RandomString([]string{"RUB", "USD", "EUR"})),
			Provider:     entity.Some(f.RandomString([]string{"wbpay", "visa", "mir"})),
			Amount:       entity.Some(number(goodsTotal + deliveryCost + customFee)),
			PaymentDt:    entity.Some(json.Number(strconv.FormatInt(created.Unix(), 10))),
			Bank:         entity.Some(f.Company()),
			DeliveryCost: entity.Some(number(deliveryCost)),
			GoodsTotal:   entity.Some(number(goodsTotal)),
			CustomFee:    entity.Some(number(customFee)),
		},
		Items:             items,
		Locale:            entity.Some(f.RandomString([]string{"en", "ru"})),
		InternalSignature: entity.Some(""),
		CustomerID:        entity.Some(f.Username()),
		DeliveryService:   entity.Some(f.RandomString([]string{"meest", "cdek", "boxberry"})),
		Shardkey:          entity.Some(strconv.Itoa(f.Number(1, 10))),
		SmID:              entity.Some(number(uint64(f.Number(1, 100)))),
		DateCreated:       entity.Some(created.Format(time.RFC3339)),
		OofShard:          entity.Some(strconv.Itoa(f.Number(1, 3))),
	}
}

func fakeItem(f *gofakeit.Faker, trackNumber string) (entity.Item, uint64) {
	price := uint64(f.UintRange(100, 10000))
	sale := uint64(f.UintRange(0, 90))
	total := price * (_percent - sale) / _percent

	return entity.Item{
		ChrtID:      entity.Some(number(uint64(f.UintRange(1000000, 9999999)))),
		TrackNumber: entity.Some(trackNumber),
		Price:       entity.Some(number(price)),
		Rid:         entity.Some(f.LetterN(19) + "test"),
		Name:        entity.Some(f.ProductName()),
		Sale:        entity.Some(number(sale)),
		Size:        entity.Some(f.RandomString([]string{"0", "S", "M", "L", "XL"})),
		TotalPrice:  entity.Some(number(total)),
		NmID:        entity.Some(number(uint64(f.UintRange(1000000, 9999999)))),
		Brand:       entity.Some(f.Company()),
		Status:      entity.Some(json.Number("202")),
	}, total
}

func number(v uint64) json.Number {
	return json.Number(strconv.FormatUint(v, 10))
}
