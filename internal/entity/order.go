package entity

import "encoding/json"

// Order mirrors the JSON document returned by GET /orders/{id}.
// Every field is optional; numbers stay json.Number so they can be shown verbatim.
type Order struct {
	OrderUID          Optional[string]      `json:"order_uid"`
	TrackNumber       Optional[string]      `json:"track_number"`
	Entry             Optional[string]      `json:"entry"`
	Delivery          *Delivery             `json:"delivery"`
	Payment           *Payment              `json:"payment"`
	Items             []Item                `json:"items"`
	Locale            Optional[string]      `json:"locale"`
	InternalSignature Optional[string]      `json:"internal_signature"`
	CustomerID        Optional[string]      `json:"customer_id"`
	DeliveryService   Optional[string]      `json:"delivery_service"`
	Shardkey          Optional[string]      `json:"shardkey"`
	SmID              Optional[json.Number] `json:"sm_id"`
	DateCreated       Optional[string]      `json:"date_created"`
	OofShard          Optional[string]      `json:"oof_shard"`
}
