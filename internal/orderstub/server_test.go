package orderstub_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderlookup/internal/entity"
	"orderlookup/internal/orderstub"
	"orderlookup/pkg/logger"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFakeOrder_Consistent(t *testing.T) {
	order := orderstub.FakeOrder(gofakeit.New(42))

	require.True(t, order.OrderUID.IsSet())
	require.NotNil(t, order.Delivery)
	require.NotNil(t, order.Payment)
	require.NotEmpty(t, order.Items)

	var goods int64
	for _, item := range order.Items {
		price, err := item.Price.OrElse("0").Int64()
		require.NoError(t, err)
		sale, err := item.Sale.OrElse("0").Int64()
		require.NoError(t, err)
		total, err := item.TotalPrice.OrElse("0").Int64()
		require.NoError(t, err)

		require.Equal(t, price*(100-sale)/100, total)
		goods += total
	}

	goodsTotal, err := order.Payment.GoodsTotal.OrElse("0").Int64()
	require.NoError(t, err)
	require.Equal(t, goods, goodsTotal)
}

func TestServer_GetOrder(t *testing.T) {
	store := orderstub.NewStore()
	ids := store.Seed(gofakeit.New(7), 3)
	require.Len(t, ids, 3)

	srv := httptest.NewServer(orderstub.NewServer(store, logger.NewFromZap(zaptest.NewLogger(t))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/" + ids[1])
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var order entity.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&order))

	want, _ := store.Get(ids[1])
	require.Equal(t, want.OrderUID, order.OrderUID)
	require.Equal(t, want.Payment.Amount, order.Payment.Amount)
	require.Equal(t, want.Items, order.Items)
}

func TestServer_NotFound(t *testing.T) {
	srv := httptest.NewServer(orderstub.NewServer(orderstub.NewStore(), logger.NewFromZap(zaptest.NewLogger(t))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ListIDs(t *testing.T) {
	store := orderstub.NewStore()
	ids := store.Seed(gofakeit.New(1), 2)

	srv := httptest.NewServer(orderstub.NewServer(store, logger.NewFromZap(zaptest.NewLogger(t))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ids")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, ids, got)
}

func TestStore_AddRequiresUID(t *testing.T) {
	_, err := orderstub.NewStore().Add(entity.Order{})
	require.Error(t, err)
}
