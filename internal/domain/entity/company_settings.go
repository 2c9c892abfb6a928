package entity

import "time"

// CompanySettings is the business profile printed on estimates and invoices.
// One row per deployment: created on the first save, updated afterwards,
// never deleted.
type CompanySettings struct {
	ID             string
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	LogoURL        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
