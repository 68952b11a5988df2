package models

// PersonalInfo is the slice of the candidate document this service reads.
type PersonalInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
}

// PipelineInfo tracks the candidate's position in the hiring pipeline.
type PipelineInfo struct {
	CurrentStage string `bson:"currentStage" json:"currentStage"`
}

// Candidate is the external candidate record, consulted for existence checks
// at creation time and for display enrichment on reads.
type Candidate struct {
	ID           string       `bson:"id" json:"id"`
	PersonalInfo PersonalInfo `bson:"personalInfo" json:"personalInfo"`
	PipelineInfo PipelineInfo `bson:"pipelineInfo" json:"pipelineInfo"`
}

// FullName joins the candidate's first and last names.
func (c Candidate) FullName() string {
	if c.PersonalInfo.FirstName == "" {
		return c.PersonalInfo.LastName
	}
	if c.PersonalInfo.LastName == "" {
		return c.PersonalInfo.FirstName
	}
	return c.PersonalInfo.FirstName + " " + c.PersonalInfo.LastName
}
