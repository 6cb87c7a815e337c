package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegeforms/internal/app/models"
	"github.com/yigit/collegeforms/internal/pkg/dberrors"
	"github.com/yigit/collegeforms/internal/pkg/logger"
)

const collegeFormTable = "CollegeForm"

var collegeFormColumns = []string{"id", "name", "age", "department", "email"}

// ErrNoFieldsToUpdate is returned when an update carries no fields
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// CollegeFormRepository handles college form database operations
type CollegeFormRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCollegeFormRepository creates a new CollegeFormRepository
func NewCollegeFormRepository(db DBTX) *CollegeFormRepository {
	return &CollegeFormRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a college form and returns the id assigned by storage
func (r *CollegeFormRepository) Create(ctx context.Context, form *models.CollegeForm) (int64, error) {
	sql, args, err := r.sb.Insert(collegeFormTable).
		Columns("name", "age", "department", "email").
		Values(form.Name, form.Age, form.Department, form.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create college form SQL")
		return 0, fmt.Errorf("failed to build create college form query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsConstraintViolation(err) {
			logger.Warn().Err(err).Msg("College form rejected by constraint")
		} else {
			logger.Error().Err(err).Msg("Error executing create college form query")
		}
		return 0, fmt.Errorf("error creating college form: %w", err)
	}

	return id, nil
}

// GetAll returns every college form ordered by id
func (r *CollegeFormRepository) GetAll(ctx context.Context) ([]*models.CollegeForm, error) {
	sql, args, err := r.sb.Select(collegeFormColumns...).
		From(collegeFormTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all college forms SQL")
		return nil, fmt.Errorf("failed to build get all college forms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all college forms query")
		return nil, fmt.Errorf("error querying college forms: %w", err)
	}
	defer rows.Close()

	forms := []*models.CollegeForm{}
	for rows.Next() {
		form := &models.CollegeForm{}
		if err := rows.Scan(&form.ID, &form.Name, &form.Age, &form.Department, &form.Email); err != nil {
			logger.Error().Err(err).Msg("Error scanning college form row during get all")
			return nil, fmt.Errorf("error scanning college form row: %w", err)
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating college form rows")
		return nil, fmt.Errorf("error iterating college form rows: %w", err)
	}

	return forms, nil
}

// GetByID returns the college form with the given id, or ErrNotFound
func (r *CollegeFormRepository) GetByID(ctx context.Context, id int64) (*models.CollegeForm, error) {
	sql, args, err := r.sb.Select(collegeFormColumns...).
		From(collegeFormTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get college form by ID SQL")
		return nil, fmt.Errorf("failed to build get college form query: %w", err)
	}

	form := &models.CollegeForm{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&form.ID, &form.Name, &form.Age, &form.Department, &form.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("collegeFormID", id).Msg("Error scanning college form row")
		return nil, fmt.Errorf("error getting college form by ID: %w", err)
	}

	return form, nil
}

// Update writes the supplied fields of a college form. Only non-nil fields
// appear in the SET clause; an update with no fields is rejected with
// ErrNoFieldsToUpdate before any SQL is built.
func (r *CollegeFormRepository) Update(ctx context.Context, id int64, update models.CollegeFormUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	builder := r.sb.Update(collegeFormTable)
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Age != nil {
		builder = builder.Set("age", *update.Age)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}

	sql, args, err := builder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update college form SQL")
		return fmt.Errorf("failed to build update college form query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeFormID", id).Msg("Error executing update college form query")
		return fmt.Errorf("error updating college form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a college form by id
func (r *CollegeFormRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(collegeFormTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete college form SQL")
		return fmt.Errorf("failed to build delete college form query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("collegeFormID", id).Msg("Error executing delete college form query")
		return fmt.Errorf("error deleting college form: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Deleted between the existence check and this statement
		return ErrNotFound
	}

	return nil
}
