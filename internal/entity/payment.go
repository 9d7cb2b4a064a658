package entity

import "encoding/json"

type Payment struct {
	Transaction  Optional[string]      `json:"transaction"`
	RequestID    Optional[string]      `json:"request_id"`
	Currency     Optional[string]      `json:"currency"`
	Provider     Optional[string]      `json:"provider"`
	Amount       Optional[json.Number] `json:"amount"`
	PaymentDt    Optional[json.Number] `json:"payment_dt"`
	Bank         Optional[string]      `json:"bank"`
	DeliveryCost Optional[json.Number] `json:"delivery_cost"`
	GoodsTotal   Optional[json.Number] `json:"goods_total"`
	CustomFee    Optional[json.Number] `json:"custom_fee"`
}
