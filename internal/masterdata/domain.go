// Package masterdata holds the company directory entities and the pure
// aggregation that turns joined rows into nested response shapes.
package masterdata

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company represents a company entity. Code is the canonical slug.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Industry represents an industry entity.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Association links a company to an industry.
type Association struct {
	ID           int64  `json:"id"`
	CompanyCode  string `json:"company_code"`
	IndustryCode string `json:"industry_code"`
}

// Invoice is a row of the invoices table, read-only here.
type Invoice struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amount   decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// CompanyDetail is the denormalized company view.
type CompanyDetail struct {
	Company
	Invoices   []Invoice `json:"invoices"`
	Industries []string  `json:"industries"`
}

// CompanyIndustryRow is one row of companies LEFT JOIN industries_companies
// LEFT JOIN industries. Industry is nil when the company has no association.
type CompanyIndustryRow struct {
	Company  Company
	Industry *string
}

// MembershipRow is one row of industries LEFT JOIN industries_companies
// RIGHT JOIN companies. Industry is nil for companies with no industry.
type MembershipRow struct {
	CompanyCode string
	Industry    *string
}
