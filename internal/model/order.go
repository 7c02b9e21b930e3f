package model

import "time"

// Order is the kiosk's in-memory representation of a customer's request.
// It lives for one session only; nothing writes it anywhere.
type Order struct {
	ID        string    `json:"id" validate:"required,len=9,alphanum,uppercase"`
	Items     []string  `json:"items" validate:"dive,required"`
	Total     int       `json:"total" validate:"min=5,max=24"`
	Status    Status    `json:"status" validate:"oneof=pending preparing ready"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	Language  Language  `json:"language" validate:"oneof=en hi ko"`
}

// QRPayload is the string encoded into the pickup QR pattern.
func (o Order) QRPayload() string { return "BREWBUDDY-" + o.ID }
