package models

// ProfileUpdate is the resolved, ready-to-persist form of a profile
// modification. Skill names from the inbound request have already been
// resolved against the catalog; JobSkills carries the catalog entries in
// request order and fully replaces the user's previous skill list.
//
// All three fields follow partial-update semantics: a nil Introduction or
// Job pointer means "leave the column unchanged", and a nil JobSkills slice
// means "leave the skill rows unchanged". An empty non-nil JobSkills slice
// clears the skill list.
type ProfileUpdate struct {
	Introduction *string

	Job *string

	JobSkills []JobSkill
}
