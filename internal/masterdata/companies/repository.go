package companies

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/biztime/biztime/internal/masterdata"
	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

const (
	listCompaniesSQL = `SELECT code, name, description FROM companies`

	companyIndustriesSQL = `SELECT c.code, c.name, c.description, i.industry
FROM companies AS c
    LEFT JOIN industries_companies AS ic ON c.code = ic.company_code
    LEFT JOIN industries AS i ON ic.industry_code = i.code
WHERE c.code = $1`

	companyInvoicesSQL = `SELECT id, comp_code, amt, paid, add_date, paid_date
FROM invoices
WHERE comp_code = $1
ORDER BY id`

	createCompanySQL = `INSERT INTO companies (code, name, description)
VALUES ($1, $2, $3)
RETURNING code, name, description`

	updateCompanySQL = `UPDATE companies SET name = $1, description = $2
WHERE code = $3
RETURNING code, name, description`

	deleteCompanySQL = `DELETE FROM companies WHERE code = $1`
)

var companyMessages = db.Messages{
	NotFound:  "company code not found",
	Conflict:  "a company with this code already exists",
	Integrity: "company is still referenced by invoices or industries",
	Constraints: map[string]string{
		"companies_name_key": "a company with this name already exists",
	},
}

// Repository persists companies.
type Repository interface {
	List(ctx context.Context) ([]masterdata.Company, error)
	Detail(ctx context.Context, code string) (masterdata.CompanyDetail, error)
	Create(ctx context.Context, company masterdata.Company) (masterdata.Company, error)
	Update(ctx context.Context, company masterdata.Company) (masterdata.Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	db db.Executor
}

// NewRepository constructs a PostgreSQL backed repository over exec.
func NewRepository(exec db.Executor) Repository {
	return &repository{db: exec}
}

// List returns every company in store order.
func (r *repository) List(ctx context.Context) ([]masterdata.Company, error) {
	rows, err := r.db.Query(ctx, listCompaniesSQL)
	if err != nil {
		return nil, db.Classify(err, companyMessages)
	}
	defer rows.Close()

	companies := []masterdata.Company{}
	for rows.Next() {
		var c masterdata.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, db.Classify(err, companyMessages)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Classify(err, companyMessages)
	}
	return companies, nil
}

// Detail reads the company, its industry labels and its invoices from one
// read-only snapshot.
func (r *repository) Detail(ctx context.Context, code string) (masterdata.CompanyDetail, error) {
	var detail masterdata.CompanyDetail
	err := db.WithReadTx(ctx, r.db, func(tx pgx.Tx) error {
		joined, err := companyIndustryRows(ctx, tx, code)
		if err != nil {
			return err
		}
		if len(joined) == 0 {
			return pgx.ErrNoRows
		}
		invoices, err := companyInvoices(ctx, tx, code)
		if err != nil {
			return err
		}
		detail, _ = masterdata.BuildCompanyDetail(joined, invoices)
		return nil
	})
	if err != nil {
		return masterdata.CompanyDetail{}, db.Classify(err, companyMessages)
	}
	return detail, nil
}

func companyIndustryRows(ctx context.Context, q db.DBTX, code string) ([]masterdata.CompanyIndustryRow, error) {
	rows, err := q.Query(ctx, companyIndustriesSQL, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []masterdata.CompanyIndustryRow
	for rows.Next() {
		var row masterdata.CompanyIndustryRow
		if err := rows.Scan(&row.Company.Code, &row.Company.Name, &row.Company.Description, &row.Industry); err != nil {
			return nil, fmt.Errorf("scan company industry: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func companyInvoices(ctx context.Context, q db.DBTX, code string) ([]masterdata.Invoice, error) {
	rows, err := q.Query(ctx, companyInvoicesSQL, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []masterdata.Invoice
	for rows.Next() {
		var inv masterdata.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amount, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// Create inserts company as given; the caller supplies the canonical code.
func (r *repository) Create(ctx context.Context, company masterdata.Company) (masterdata.Company, error) {
	var created masterdata.Company
	err := r.db.QueryRow(ctx, createCompanySQL, company.Code, company.Name, company.Description).
		Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		return masterdata.Company{}, db.Classify(err, companyMessages)
	}
	return created, nil
}

// Update overwrites name and description of the company whose code matches exactly.
func (r *repository) Update(ctx context.Context, company masterdata.Company) (masterdata.Company, error) {
	var updated masterdata.Company
	err := r.db.QueryRow(ctx, updateCompanySQL, company.Name, company.Description, company.Code).
		Scan(&updated.Code, &updated.Name, &updated.Description)
	if err != nil {
		return masterdata.Company{}, db.Classify(err, companyMessages)
	}
	return updated, nil
}

// Delete removes the company whose code matches exactly.
func (r *repository) Delete(ctx context.Context, code string) error {
	tag, err := r.db.Exec(ctx, deleteCompanySQL, code)
	if err != nil {
		return db.Classify(err, companyMessages)
	}
	if tag.RowsAffected() == 0 {
		return shared.NewError(shared.ErrNotFound, companyMessages.NotFound, nil)
	}
	return nil
}
