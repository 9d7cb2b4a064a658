package entity

import "strings"

// OrderID is the identifier typed by the user. Its format is only checked by the remote service.
type OrderID string

func ParseOrderID(raw string) (OrderID, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrIdentifierRequired
	}
	return OrderID(id), nil
}

func (id OrderID) String() string {
	return string(id)
}
