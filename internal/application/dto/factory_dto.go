package dto

import "time"

// CreateFactoryRequest body for POST /factories.
type CreateFactoryRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address,omitempty"`
}

// FactoryResponse factory in responses.
type FactoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
