package companies

// CreateCompanyRequest is the body of POST /companies. Code is normalized to a
// slug before insertion.
type CreateCompanyRequest struct {
	Code        string  `json:"code" validate:"required,max=255"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the body of PUT /companies/{code}.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}
