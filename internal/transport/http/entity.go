package httpt

type searchRequest struct {
	OrderID string `form:"order_id" json:"order_id"`
}

// resultResponse is the polling view of a session region.
type resultResponse struct {
	State    string `json:"state"`
	Revision uint64 `json:"revision"`
	HTML     string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}
