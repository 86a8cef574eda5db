package domain

import "errors"

var ErrCompanyNotFound = errors.New("company not found")

// Company groups products under a single selling organisation.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Industry    string `json:"industry,omitempty"`
}
