package entity

import "encoding/json"

type Item struct {
	ChrtID      Optional[json.Number] `json:"chrt_id"`
	TrackNumber Optional[string]      `json:"track_number"`
	Price       Optional[json.Number] `json:"price"`
	Rid         Optional[string]      `json:"rid"`
	Name        Optional[string]      `json:"name"`
	Sale        Optional[json.Number] `json:"sale"`
	Size        Optional[string]      `json:"size"`
	TotalPrice  Optional[json.Number] `json:"total_price"`
	NmID        Optional[json.Number] `json:"nm_id"`
	Brand       Optional[string]      `json:"brand"`
	Status      Optional[json.Number] `json:"status"`
}
