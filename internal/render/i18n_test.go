package render_test

import (
	"errors"
	"fmt"
	"testing"

	"orderlookup/internal/entity"
	"orderlookup/internal/render"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewLocalizer_Matching(t *testing.T) {
	testCases := []struct {
		locale string
		want   language.Tag
	}{
		{locale: "en", want: language.English},
		{locale: "en-GB", want: language.English},
		{locale: "ru", want: language.Russian},
		{locale: "ru-RU", want: language.Russian},
		{locale: "ja", want: language.English},
		{locale: "not a tag!", want: language.English},
		{locale: "", want: language.English},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			require.Equal(t, tc.want, render.NewLocalizer(tc.locale).Language())
		})
	}
}

func TestLocalizer_ErrorText(t *testing.T) {
	transport := &entity.TransportError{Op: "decode", Err: errors.New("invalid character '<' looking for beginning of value")}

	testCases := []struct {
		desc   string
		locale string
		err    error
		want   string
	}{
		{desc: "RequiredEn", locale: "en", err: entity.ErrIdentifierRequired, want: "identifier required"},
		{desc: "NotFoundEn", locale: "en", err: fmt.Errorf("op: %w", entity.ErrOrderNotFound), want: "order not found"},
		{desc: "ServerEn", locale: "en", err: &entity.ServerError{Status: 500}, want: "server error: 500"},
		{desc: "TransportEn", locale: "en", err: transport, want: "invalid character '<' looking for beginning of value"},
		{desc: "NotFoundRu", locale: "ru", err: entity.ErrOrderNotFound, want: "Заказ не найден"},
		{desc: "ServerRu", locale: "ru", err: &entity.ServerError{Status: 503}, want: "Ошибка сервера: 503"},
		{desc: "TransportRu", locale: "ru", err: transport, want: "invalid character '<' looking for beginning of value"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, render.NewLocalizer(tc.locale).ErrorText(tc.err))
		})
	}
}

func TestLocalizer_Translations(t *testing.T) {
	ru := render.NewLocalizer("ru")
	require.Equal(t, "Товары (2)", ru.T("Items (%d)", 2))
	require.Equal(t, "Найти", ru.T("Find"))

	en := render.NewLocalizer("en")
	require.Equal(t, "Items (2)", en.T("Items (%d)", 2))
	require.Equal(t, "02.01.2006, 15:04:05", ru.DateLayout())
	require.Equal(t, "1/2/2006, 3:04:05 PM", en.DateLayout())
}
