package models

// CollegeForm represents a college enrollment form
type CollegeForm struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// CollegeFormUpdate carries the fields of a partial update.
// A nil field is left untouched; a non-nil field is written, even if empty.
type CollegeFormUpdate struct {
	Name       *string
	Age        *int
	Department *string
	Email      *string
}

// IsEmpty reports whether no field was supplied
func (u CollegeFormUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Department == nil && u.Email == nil
}
