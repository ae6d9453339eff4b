// internal/domain/models/registration.go
package models

// MonthlyCount is the number of users that registered in one calendar month.
type MonthlyCount struct {
	Year  int    `json:"year"`
	Month string `json:"month"`
	Count int    `json:"count"`
}
