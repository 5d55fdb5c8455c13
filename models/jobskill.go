package models

// JobSkill is an entry of the fixed skill catalog. Profiles reference catalog
// entries by name; the catalog itself is seeded by migrations and never
// mutated through the API.
type JobSkill struct {
	// Code is the unique integer identifier of the skill.
	Code int64 `json:"code"`

	// Name is the unique display string of the skill. It is the lookup
	// key when a profile edit supplies skill names.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the JobSkill model.
func (j JobSkill) TableName() string {
	return "job_skills"
}
