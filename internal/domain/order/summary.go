package order

// Summary reports the result of a submit or finalize call. ExternalSync
// is how callers distinguish full success from "persisted but not
// forwarded": the HTTP status stays 201 either way.
type Summary struct {
	OrderDate     string `json:"order_date"`
	TotalDishes   int    `json:"total_dishes"`
	ItemsCount    int    `json:"items_count"`
	ExternalSync  bool   `json:"external_sync"`
	ExternalError string `json:"external_error,omitempty"`
}
