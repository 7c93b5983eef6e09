package industries

import (
	"context"
	"fmt"

	"github.com/biztime/biztime/internal/masterdata"
	"github.com/biztime/biztime/internal/platform/db"
)

const (
	createIndustrySQL = `INSERT INTO industries (code, industry)
VALUES ($1, $2)
RETURNING code, industry`

	// Right join anchored on companies: companies without an industry yield
	// one row with a NULL label. Industries without companies are absent.
	industryMembershipSQL = `SELECT c.code, i.industry
FROM industries AS i
    LEFT JOIN industries_companies AS ic ON i.code = ic.industry_code
    RIGHT JOIN companies AS c ON ic.company_code = c.code`

	createAssociationSQL = `INSERT INTO industries_companies (company_code, industry_code)
VALUES ($1, $2)
RETURNING id, company_code, industry_code`
)

var (
	industryMessages = db.Messages{
		Conflict: "an industry with this code already exists",
		Constraints: map[string]string{
			"industries_industry_key": "an industry with this name already exists",
		},
	}
	associationMessages = db.Messages{
		Conflict:  "company is already associated with this industry",
		Integrity: "company code or industry code does not exist",
	}
)

// Repository persists industries and lists them with their companies.
type Repository interface {
	Create(ctx context.Context, industry masterdata.Industry) (masterdata.Industry, error)
	ListWithCompanies(ctx context.Context) (masterdata.IndustryGroups, error)
}

// AssociationRepository persists company-industry links.
type AssociationRepository interface {
	Create(ctx context.Context, companyCode, industryCode string) (masterdata.Association, error)
}

type repository struct {
	db db.DBTX
}

// NewRepository constructs a PostgreSQL backed industry repository.
func NewRepository(q db.DBTX) Repository {
	return &repository{db: q}
}

func (r *repository) Create(ctx context.Context, industry masterdata.Industry) (masterdata.Industry, error) {
	var created masterdata.Industry
	err := r.db.QueryRow(ctx, createIndustrySQL, industry.Code, industry.Industry).
		Scan(&created.Code, &created.Industry)
	if err != nil {
		return masterdata.Industry{}, db.Classify(err, industryMessages)
	}
	return created, nil
}

// ListWithCompanies groups every company code under its industry labels.
func (r *repository) ListWithCompanies(ctx context.Context) (masterdata.IndustryGroups, error) {
	rows, err := r.db.Query(ctx, industryMembershipSQL)
	if err != nil {
		return masterdata.IndustryGroups{}, db.Classify(err, industryMessages)
	}
	defer rows.Close()

	var memberships []masterdata.MembershipRow
	for rows.Next() {
		var m masterdata.MembershipRow
		if err := rows.Scan(&m.CompanyCode, &m.Industry); err != nil {
			return masterdata.IndustryGroups{}, db.Classify(fmt.Errorf("scan membership: %w", err), industryMessages)
		}
		memberships = append(memberships, m)
	}
	if err := rows.Err(); err != nil {
		return masterdata.IndustryGroups{}, db.Classify(err, industryMessages)
	}
	return masterdata.GroupByIndustry(memberships), nil
}

type associationRepository struct {
	db db.DBTX
}

// NewAssociationRepository constructs a PostgreSQL backed association repository.
func NewAssociationRepository(q db.DBTX) AssociationRepository {
	return &associationRepository{db: q}
}

// Create links the two codes. Pair uniqueness is left to the store.
func (r *associationRepository) Create(ctx context.Context, companyCode, industryCode string) (masterdata.Association, error) {
	var a masterdata.Association
	err := r.db.QueryRow(ctx, createAssociationSQL, companyCode, industryCode).
		Scan(&a.ID, &a.CompanyCode, &a.IndustryCode)
	if err != nil {
		return masterdata.Association{}, db.Classify(err, associationMessages)
	}
	return a, nil
}
