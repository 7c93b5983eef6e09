package industries

// CreateIndustryRequest is the body of POST /companies/industries. Code is
// stored as given.
type CreateIndustryRequest struct {
	Code     string `json:"code" validate:"required,max=255"`
	Industry string `json:"industry" validate:"required,max=255"`
}

// AssociateRequest is the body of POST /companies/addIndustry.
type AssociateRequest struct {
	CompanyCode  string `json:"company_code" validate:"required,max=255"`
	IndustryCode string `json:"industry_code" validate:"required,max=255"`
}
