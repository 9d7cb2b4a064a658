package render

import (
	"errors"

	"orderlookup/internal/entity"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

var dateLayouts = map[language.Tag]string{
	language.English: "1/2/2006, 3:04:05 PM",
	language.Russian: "02.01.2006, 15:04:05",
}

// Messages are keyed by their English text; English needs no entries.
var russian = map[string]string{
	"not specified":                      "Не указано",
	"Order":                              "Информация о заказе",
	"Order UID":                          "Order UID",
	"Track number":                       "Трек-номер",
	"Entry":                              "Entry",
	"Created":                            "Дата создания",
	"Locale":                             "Локаль",
	"Customer ID":                        "ID покупателя",
	"Delivery service":                   "Служба доставки",
	"Internal signature":                 "Внутренняя подпись",
	"Shard key":                          "Shard key",
	"SM ID":                              "SM ID",
	"OOF shard":                          "OOF shard",
	"Delivery":                           "Доставка",
	"Name":                               "Имя",
	"Phone":                              "Телефон",
	"Zip":                                "Индекс",
	"City":                               "Город",
	"Address":                            "Адрес",
	"Region":                             "Регион",
	"Email":                              "Email",
	"Payment":                            "Оплата",
	"Transaction":                        "Транзакция",
	"Request ID":                         "ID запроса",
	"Currency":                           "Валюта",
	"Provider":                           "Провайдер",
	"Amount":                             "Сумма",
	"Payment time":                       "Время оплаты",
	"Bank":                               "Банк",
	"Delivery cost":                      "Стоимость доставки",
	"Goods total":                        "Стоимость товаров",
	"Custom fee":                         "Пошлина",
	"Items (%d)":                         "Товары (%d)",
	"Title":                              "Название",
	"Price":                              "Цена",
	"Discount":                           "Скидка",
	"Size":                               "Размер",
	"Total price":                        "Общая цена",
	"Brand":                              "Бренд",
	"No items in the order":              "Нет товаров в заказе",
	"Enter an order UID and press Find.": "Введите order_uid и нажмите «Найти».",
	"Searching for order %s...":          "Поиск заказа %s...",
	"Order lookup":                       "Поиск заказа",
	"Find":                               "Найти",
	"identifier required":                "Пожалуйста, введите order_uid.",
	"order not found":                    "Заказ не найден",
	"server error: %d":                   "Ошибка сервера: %d",
}

var uiCatalog = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			panic(err)
		}
	}
	return b
}

// Localizer formats user-facing text for one of the supported languages.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocalizer picks the closest supported language for locale. Unknown or
// malformed locales fall back to English.
func NewLocalizer(locale string) Localizer {
	tag := language.English
	if requested, err := language.Parse(locale); err == nil {
		_, index, confidence := matcher.Match(requested)
		if confidence != language.No {
			tag = supported[index]
		}
	}

	return Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(uiCatalog)),
	}
}

func (l Localizer) Language() language.Tag {
	return l.tag
}

func (l Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

func (l Localizer) DateLayout() string {
	return dateLayouts[l.tag]
}

// ErrorText translates the known error kinds. Transport failures keep the
// underlying description.
func (l Localizer) ErrorText(err error) string {
	var serverErr *entity.ServerError

	switch {
	case errors.Is(err, entity.ErrIdentifierRequired):
		return l.T("identifier required")
	case errors.Is(err, entity.ErrOrderNotFound):
		return l.T("order not found")
	case errors.As(err, &serverErr):
		return l.T("server error: %d", serverErr.Status)
	default:
		return entity.Describe(err)
	}
}
