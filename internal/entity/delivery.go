package entity

type Delivery struct {
	Name    Optional[string] `json:"name"`
	Phone   Optional[string] `json:"phone"`
	Zip     Optional[string] `json:"zip"`
	City    Optional[string] `json:"city"`
	Address Optional[string] `json:"address"`
	Region  Optional[string] `json:"region"`
	Email   Optional[string] `json:"email"`
}
