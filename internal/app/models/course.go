package models

// Course represents a course students enroll in.
type Course struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Code       string  `json:"code" db:"code"`
	Credits    float64 `json:"credits" db:"credits"`
	Department string  `json:"department" db:"department"`
}
