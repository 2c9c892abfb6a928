package dto

// SaveSettingsRequest body for POST /api/company-settings. The logo URL
// comes from a prior POST /api/upload-logo; sending it empty clears the logo.
type SaveSettingsRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
	LogoURL        string `json:"logo_url,omitempty"`
}

// SettingsResponse stored company settings.
type SettingsResponse struct {
	ID             string `json:"id"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyPhone   string `json:"company_phone"`
	CompanyEmail   string `json:"company_email"`
	LogoURL        string `json:"logo_url,omitempty"`
	UpdatedAt      string `json:"updated_at"`
}
