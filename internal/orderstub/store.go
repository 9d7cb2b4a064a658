package orderstub

import (
	"errors"
	"sync"

	"orderlookup/internal/entity"

	"github.com/brianvoe/gofakeit/v7"
)

var errMissingUID = errors.New("order has no order_uid")

// Store keeps orders in memory, keyed by order_uid, in insertion order.
type Store struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
	ids    []string
}

func NewStore() *Store {
	return &Store{orders: make(map[string]entity.Order)}
}

func (s *Store) Add(order entity.Order) (string, error) {
	uid, ok := order.OrderUID.Get()
	if !ok || uid == "" {
		return "", errMissingUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[uid]; !exists {
		s.ids = append(s.ids, uid)
	}
	s.orders[uid] = order
	return uid, nil
}

func (s *Store) Get(uid string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[uid]
	return order, ok
}

func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.ids...)
}

// Seed fills the store with n generated orders and returns their ids.
func (s *Store) Seed(f *gofakeit.Faker, n int) []string {
	ids := make([]string, 0, n)
	for range n {
		uid, err := s.Add(FakeOrder(f))
		if err == nil {
			ids = append(ids, uid)
		}
	}
	return ids
}
