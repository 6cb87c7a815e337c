package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeforms/internal/app/models"
)

var formColumns = []string{"id", "name", "age", "department", "email"}

func newMockRepository(t *testing.T) (*CollegeFormRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCollegeFormRepository(mock), mock
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestCollegeFormRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO CollegeForm (name,age,department,email) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Ada", 20, "Mathematics", "ada@example.edu").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Create(context.Background(), &models.CollegeForm{
		Name: "Ada", Age: 20, Department: "Mathematics", Email: "ada@example.edu",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_CreateStorageError(t *testing.T) {
	repo, mock := newMockRepository(t)
	pgErr := &pgconn.PgError{Code: "23502", Message: `null value in column "email"`}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO CollegeForm")).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), &models.CollegeForm{Name: "Ada", Age: 20, Department: "Math"})

	require.Error(t, err)
	var got *pgconn.PgError
	assert.True(t, errors.As(err, &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, age, department, email FROM CollegeForm ORDER BY id ASC")).
		WillReturnRows(pgxmock.NewRows(formColumns).
			AddRow(int64(1), "Ada", 20, "Mathematics", "ada@example.edu").
			AddRow(int64(2), "Alan", 22, "Computing", "alan@example.edu"))

	forms, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, forms, 2)
	assert.Equal(t, &models.CollegeForm{ID: 1, Name: "Ada", Age: 20, Department: "Mathematics", Email: "ada@example.edu"}, forms[0])
	assert.Equal(t, int64(2), forms[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_GetAllEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM CollegeForm")).
		WillReturnRows(pgxmock.NewRows(formColumns))

	forms, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, forms)
	assert.Empty(t, forms)
}

func TestCollegeFormRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, age, department, email FROM CollegeForm WHERE id = $1 LIMIT 1")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(formColumns).AddRow(int64(3), "Grace", 30, "Physics", "grace@example.edu"))

	form, err := repo.GetByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Grace", form.Name)
	assert.Equal(t, 30, form.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_GetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(99999)).
		WillReturnRows(pgxmock.NewRows(formColumns))

	_, err := repo.GetByID(context.Background(), 99999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollegeFormRepository_UpdateOnlySuppliedFields(t *testing.T) {
	tests := []struct {
		name   string
		update models.CollegeFormUpdate
		sql    string
		args   []any
	}{
		{
			name:   "age only",
			update: models.CollegeFormUpdate{Age: intPtr(21)},
			sql:    "UPDATE CollegeForm SET age = $1 WHERE id = $2",
			args:   []any{21, int64(5)},
		},
		{
			name:   "name and email",
			update: models.CollegeFormUpdate{Name: strPtr("Ada L."), Email: strPtr("ada@uni.edu")},
			sql:    "UPDATE CollegeForm SET name = $1, email = $2 WHERE id = $3",
			args:   []any{"Ada L.", "ada@uni.edu", int64(5)},
		},
		{
			name:   "explicitly cleared department",
			update: models.CollegeFormUpdate{Department: strPtr("")},
			sql:    "UPDATE CollegeForm SET department = $1 WHERE id = $2",
			args:   []any{"", int64(5)},
		},
		{
			name: "all fields",
			update: models.CollegeFormUpdate{
				Name: strPtr("A"), Age: intPtr(1), Department: strPtr("D"), Email: strPtr("E"),
			},
			sql:  "UPDATE CollegeForm SET name = $1, age = $2, department = $3, email = $4 WHERE id = $5",
			args: []any{"A", 1, "D", "E", int64(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			mock.ExpectExec(regexp.QuoteMeta(tt.sql)).
				WithArgs(tt.args...).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			require.NoError(t, repo.Update(context.Background(), 5, tt.update))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCollegeFormRepository_UpdateWithoutFields(t *testing.T) {
	repo, mock := newMockRepository(t)

	err := repo.Update(context.Background(), 5, models.CollegeFormUpdate{})

	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_UpdateMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE CollegeForm")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), 5, models.CollegeFormUpdate{Age: intPtr(2)})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollegeFormRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM CollegeForm WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeFormRepository_DeleteMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM CollegeForm")).
		WithArgs(int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrNotFound)
}
