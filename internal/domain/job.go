package domain

// Job represents a single job posting tied to a company.
type Job struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// JobUpdate carries a partial update for a job. Nil fields are left
// untouched. ID and CompanyHandle are immutable after creation and are
// deliberately absent.
type JobUpdate struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

// IsEmpty reports whether the update would change nothing.
func (u JobUpdate) IsEmpty() bool {
	return u.Title == nil && u.Salary == nil && u.Equity == nil
}
