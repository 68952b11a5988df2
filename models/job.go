package models

// Job is the external job posting record an interview references.
type Job struct {
	ID         string `bson:"id" json:"id"`
	Title      string `bson:"title" json:"title"`
	Department string `bson:"department" json:"department"`
	Status     string `bson:"status" json:"status"`
}
