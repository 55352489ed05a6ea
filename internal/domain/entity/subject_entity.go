package entity

const SubjectStatusActive = "Active"

// Subject is a course in the catalog. Seeded externally, read-only here.
type Subject struct {
	ID     int64
	Name   string
	Status string
}
