package industries

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/masterdata"
	"github.com/biztime/biztime/internal/shared"
)

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO industries \(code, industry\)`).
		WithArgs("Tech", "Technology").
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).AddRow("Tech", "Technology"))
	repo := NewRepository(mock)

	got, err := repo.Create(context.Background(), masterdata.Industry{Code: "Tech", Industry: "Technology"})

	require.NoError(t, err)
	assert.Equal(t, masterdata.Industry{Code: "Tech", Industry: "Technology"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateDuplicate(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		message    string
	}{
		{"duplicate code", "industries_pkey", "an industry with this code already exists"},
		{"duplicate label", "industries_industry_key", "an industry with this name already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(`INSERT INTO industries`).
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})
			repo := NewRepository(mock)

			_, err := repo.Create(context.Background(), masterdata.Industry{Code: "tech", Industry: "Technology"})

			assert.ErrorIs(t, err, shared.ErrConflict)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestRepositoryListWithCompanies(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`RIGHT JOIN companies AS c ON ic.company_code = c.code`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).
			AddRow("x", ptr("A")).
			AddRow("y", ptr("A")).
			AddRow("y", ptr("B")).
			AddRow("z", nil))
	repo := NewRepository(mock)

	groups, err := repo.ListWithCompanies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, groups.Companies("A"))
	assert.Equal(t, []string{"y"}, groups.Companies("B"))
	assert.Equal(t, []string{"z"}, groups.Unassigned(), "a NULL label lands in the unassigned group")

	raw, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Equal(t, `{"A":["x","y"],"B":["y"],"null":["z"]}`, string(raw))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListWithCompaniesFailure(t *testing.T) {
	mock := newMock(t)
	cause := errors.New("relation \"industries\" does not exist")
	mock.ExpectQuery(`FROM industries AS i`).WillReturnError(cause)
	repo := NewRepository(mock)

	_, err := repo.ListWithCompanies(context.Background())

	assert.ErrorIs(t, err, cause)
}

func TestAssociationRepositoryCreate(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO industries_companies \(company_code, industry_code\)`).
		WithArgs("apple", "tech").
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_code", "industry_code"}).
			AddRow(int64(7), "apple", "tech"))
	repo := NewAssociationRepository(mock)

	got, err := repo.Create(context.Background(), "apple", "tech")

	require.NoError(t, err)
	assert.Equal(t, masterdata.Association{ID: 7, CompanyCode: "apple", IndustryCode: "tech"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociationRepositoryCreateErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		kind error
		msg  string
	}{
		{"missing reference", "23503", shared.ErrReferentialIntegrity, "company code or industry code does not exist"},
		{"duplicate pair", "23505", shared.ErrConflict, "company is already associated with this industry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(`INSERT INTO industries_companies`).WillReturnError(&pgconn.PgError{Code: tt.code})
			repo := NewAssociationRepository(mock)

			_, err := repo.Create(context.Background(), "ghost", "tech")

			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}
