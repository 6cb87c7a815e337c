package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/collegeforms/internal/app/models"
	"github.com/yigit/collegeforms/internal/app/repositories"
	"github.com/yigit/collegeforms/internal/pkg/apperrors"
	"github.com/yigit/collegeforms/internal/pkg/logger"
)

// CollegeFormService defines the data functions behind the HTTP routes
type CollegeFormService interface {
	Create(ctx context.Context, form *models.CollegeForm) (int64, error)
	GetAll(ctx context.Context) ([]*models.CollegeForm, error)
	GetByID(ctx context.Context, id int64) (*models.CollegeForm, error)
	Update(ctx context.Context, id int64, update models.CollegeFormUpdate) (*models.CollegeForm, error)
	Delete(ctx context.Context, id int64) error
}

type collegeFormServiceImpl struct {
	repo *repositories.CollegeFormRepository
}

// NewCollegeFormService creates a new college form service instance
func NewCollegeFormService(repo *repositories.CollegeFormRepository) CollegeFormService {
	return &collegeFormServiceImpl{repo: repo}
}

// Create inserts a new college form and returns its id
func (s *collegeFormServiceImpl) Create(ctx context.Context, form *models.CollegeForm) (int64, error) {
	id, err := s.repo.Create(ctx, form)
	if err != nil {
		return 0, err
	}
	logger.Debug().Int64("id", id).Msg("Created college form")
	return id, nil
}

// GetAll returns every college form
func (s *collegeFormServiceImpl) GetAll(ctx context.Context) ([]*models.CollegeForm, error) {
	return s.repo.GetAll(ctx)
}

// GetByID returns a college form or a not-found error naming the id
func (s *collegeFormServiceImpl) GetByID(ctx context.Context, id int64) (*models.CollegeForm, error) {
	form, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, id)
	}
	return form, nil
}

// Update checks the record exists, writes the supplied fields and returns
// the record as stored afterwards. With no fields supplied the record is
// returned untouched.
func (s *collegeFormServiceImpl) Update(ctx context.Context, id int64, update models.CollegeFormUpdate) (*models.CollegeForm, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.IsEmpty() {
		logger.Debug().Int64("id", id).Msg("Update without fields, leaving college form unchanged")
		return current, nil
	}

	if err := s.repo.Update(ctx, id, update); err != nil {
		return nil, notFoundOr(err, id)
	}
	logger.Debug().Int64("id", id).Msg("Updated college form")

	return s.GetByID(ctx, id)
}

// Delete checks the record exists and removes it
func (s *collegeFormServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, id)
	}
	logger.Debug().Int64("id", id).Msg("Deleted college form")
	return nil
}

func notFoundOr(err error, id int64) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewRecordNotFoundError(id)
	}
	return fmt.Errorf("college form %d: %w", id, err)
}
