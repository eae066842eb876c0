package models

import "time"

// Company is an employer organisation that owns job postings
// @Description Company
type Company struct {
	ID           string    `json:"id" firestore:"-"`
	Name         string    `json:"name" firestore:"name" example:"Acme Corp"`
	Industry     string    `json:"industry,omitempty" firestore:"industry" example:"Software"`
	Headquarters string    `json:"headquarters,omitempty" firestore:"headquarters" example:"Jakarta"`
	Description  string    `json:"description,omitempty" firestore:"description"`
	Website      string    `json:"website,omitempty" firestore:"website" example:"https://acme.example"`
	OwnerID      string    `json:"ownerId" firestore:"ownerId"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// CompanyRequest is the body of a company registration
// @Description Company registration request
type CompanyRequest struct {
	Name         string `json:"name" binding:"required" example:"Acme Corp"`
	Industry     string `json:"industry,omitempty" example:"Software"`
	Headquarters string `json:"headquarters,omitempty" example:"Jakarta"`
	Description  string `json:"description,omitempty"`
	Website      string `json:"website,omitempty" example:"https://acme.example"`
}
