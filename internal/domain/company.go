package domain

// Company represents an employer that job postings reference by handle.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyUpdate carries a partial update for a company. The handle is
// immutable after creation.
type CompanyUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// IsEmpty reports whether the update would change nothing.
func (u CompanyUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.NumEmployees == nil && u.LogoURL == nil
}
