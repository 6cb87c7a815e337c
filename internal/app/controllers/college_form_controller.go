package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/collegeforms/internal/app/models"
	"github.com/yigit/collegeforms/internal/app/models/dto"
	"github.com/yigit/collegeforms/internal/app/services"
	"github.com/yigit/collegeforms/internal/middleware"
	"github.com/yigit/collegeforms/internal/pkg/apperrors"
)

// CollegeFormController handles the college form routes
type CollegeFormController struct {
	service services.CollegeFormService
}

// NewCollegeFormController creates a new CollegeFormController
func NewCollegeFormController(service services.CollegeFormService) *CollegeFormController {
	return &CollegeFormController{service: service}
}

// GetByID handles GET /get?id=<int>.
// An unparsable id is answered with 400 and no body; every data-layer
// outcome, not-found included, is 200.
func (c *CollegeFormController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx.Query("id"))
	if err != nil {
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	form, err := c.service.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, form)
}

// List handles GET /list
func (c *CollegeFormController) List(ctx *gin.Context) {
	forms, err := c.service.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, forms)
}

// Create handles POST /create
func (c *CollegeFormController) Create(ctx *gin.Context) {
	var req dto.CreateCollegeFormRequest
	if err := bindForm(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.Logger(ctx).Debug().Interface("form", req).Msg("Received data for creation")

	age, err := parseInt("age", req.Age)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	form := &models.CollegeForm{
		Name:       req.Name,
		Age:        age,
		Department: req.Department,
		Email:      req.Email,
	}

	id, err := c.service.Create(ctx, form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateCollegeFormResponse{
		Message: "Record inserted",
		ID:      id,
	})
}

// Update handles POST /update. Keys absent from the body leave the
// corresponding column untouched.
func (c *CollegeFormController) Update(ctx *gin.Context) {
	var req dto.UpdateCollegeFormRequest
	if err := bindForm(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.Logger(ctx).Debug().Interface("form", req).Msg("Received data for update")

	id, err := parseID(req.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	update := models.CollegeFormUpdate{
		Name:       req.Name,
		Department: req.Department,
		Email:      req.Email,
	}
	if req.Age != nil {
		age, err := parseInt("age", *req.Age)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		update.Age = &age
	}

	form, err := c.service.Update(ctx, id, update)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, form)
}

// Delete handles POST /delete
func (c *CollegeFormController) Delete(ctx *gin.Context) {
	var req dto.DeleteCollegeFormRequest
	if err := bindForm(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.Logger(ctx).Debug().Str("id", req.ID).Msg("Received data for deletion")

	id, err := parseID(req.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.service.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Message: fmt.Sprintf("Record deleted, ID: %d", id),
	})
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid integer for id: %q", value))
	}
	return id, nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid integer for %s: %q", field, value))
	}
	return n, nil
}

// bindForm decodes the whole request body as a URL-encoded form, whatever
// the Content-Type says, then applies the `binding` rules of obj.
func bindForm(ctx *gin.Context, obj any) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return apperrors.NewBadRequestError("failed to read request body")
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return apperrors.NewBadRequestError("malformed form body")
	}

	if err := binding.MapFormWithTag(obj, values, "form"); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return bindingError(err, values)
	}
	return nil
}

// bindingError turns a validation failure into a message naming the
// offending form keys, telling absent keys apart from empty values.
func bindingError(err error, values url.Values) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewBadRequestError(err.Error())
	}

	var missing, empty []string
	for _, fe := range verrs {
		key := strings.ToLower(fe.Field())
		if _, sent := values[key]; sent {
			empty = append(empty, key)
		} else {
			missing = append(missing, key)
		}
	}

	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, fieldList("missing required", missing))
	}
	if len(empty) > 0 {
		parts = append(parts, fieldList("empty required", empty))
	}
	return apperrors.NewValidationError(strings.Join(parts, "; "))
}

func fieldList(prefix string, fields []string) string {
	if len(fields) == 1 {
		return prefix + " field: " + fields[0]
	}
	return prefix + " fields: " + strings.Join(fields, ", ")
}
