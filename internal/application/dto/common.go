package dto

// Response is the envelope every /api endpoint answers with. Success
// reports whether the operation worked; exactly one of Data or Error is
// set. The logo upload endpoint is the one exception (see UploadLogoResponse).
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error message in a failed envelope.
func Fail(msg string) Response {
	return Response{Success: false, Error: msg}
}

// UploadLogoResponse is the flat body of POST /api/upload-logo. Kept
// un-enveloped for compatibility with existing consumers.
type UploadLogoResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// PageRequest paginates searchable listings (?page=&limit=&search=).
type PageRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
}

// DefaultPage applies defaults when Page/Limit are absent or out of range.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset translates the one-based page into a row offset.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination page metadata included next to listed items.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives page metadata from the request and total match count.
func NewPagination(req PageRequest, total int) Pagination {
	pages := total / req.Limit
	if total%req.Limit != 0 {
		pages++
	}
	return Pagination{Page: req.Page, Limit: req.Limit, Total: total, TotalPages: pages}
}
