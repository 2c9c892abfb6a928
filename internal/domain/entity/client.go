package entity

import "time"

// Client is a customer of the painting business (intake record). Estimates
// and invoices may reference a client but can also stand alone.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
