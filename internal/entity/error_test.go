package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"orderlookup/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestParseOrderID(t *testing.T) {
	testCases := []struct {
		desc     string
		input    string
		expected entity.OrderID
		err      error
	}{
		{desc: "Plain", input: "b563feb7b2b84b6test", expected: "b563feb7b2b84b6test"},
		{desc: "Trimmed", input: "  \tb563feb7\n", expected: "b563feb7"},
		{desc: "InnerSpacesKept", input: " a b ", expected: "a b"},
		{desc: "Empty", input: "", err: entity.ErrIdentifierRequired},
		{desc: "WhitespaceOnly", input: " \t\r\n ", err: entity.ErrIdentifierRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			id, err := entity.ParseOrderID(tc.input)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.expected, id)
		})
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected string
	}{
		{desc: "Validation", err: entity.ErrIdentifierRequired, expected: "identifier required"},
		{
			desc:     "NotFoundWrapped",
			err:      fmt.Errorf("orderapi.FetchOrder: %w", entity.ErrOrderNotFound),
			expected: "order not found",
		},
		{desc: "Server", err: &entity.ServerError{Status: 500}, expected: "server error: 500"},
		{
			desc:     "Transport",
			err:      &entity.TransportError{Op: "do", Err: errors.New("connect: connection refused")},
			expected: "connect: connection refused",
		},
		{desc: "Other", err: errors.New("boom"), expected: "boom"},
		{desc: "Nil", err: nil, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, entity.Describe(tc.err))
		})
	}
}

func TestDescribe_NotFoundDistinctFromServerError(t *testing.T) {
	require.NotEqual(t,
		entity.Describe(entity.ErrOrderNotFound),
		entity.Describe(&entity.ServerError{Status: 404}),
	)
}
