// Package services holds the data functions that sit between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
// - CollegeFormService: create, list, get, partial update and delete of college forms
package services
