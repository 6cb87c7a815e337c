package dto

// CreateCollegeFormRequest is the form body of POST /create.
// Age stays a string here so presence is checked before coercion.
type CreateCollegeFormRequest struct {
	Name       string `form:"name" binding:"required"`
	Age        string `form:"age" binding:"required"`
	Department string `form:"department" binding:"required"`
	Email      string `form:"email" binding:"required"`
}

// UpdateCollegeFormRequest is the form body of POST /update.
// Optional fields are pointers: nil means the key was absent.
type UpdateCollegeFormRequest struct {
	ID         string  `form:"id" binding:"required"`
	Name       *string `form:"name"`
	Age        *string `form:"age"`
	Department *string `form:"department"`
	Email      *string `form:"email"`
}

// DeleteCollegeFormRequest is the form body of POST /delete
type DeleteCollegeFormRequest struct {
	ID string `form:"id" binding:"required"`
}

// CreateCollegeFormResponse is returned after a successful insert
type CreateCollegeFormResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
