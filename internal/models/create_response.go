package models

// CreateResponse carries the store-generated identifier of a new document.
type CreateResponse struct {
	ID string `json:"id"`
}
