package models

// LoginRequest is the body of POST /api/v1/adm/login.
type LoginRequest struct {
	// Email is the login identifier of the account.
	Email string `json:"email"`

	// Password is the plaintext password. It is verified against the
	// stored Argon2id hash and never persisted.
	Password string `json:"password"`
}

// JobSkillRequest references a catalog skill by its display name.
type JobSkillRequest struct {
	Name string `json:"name"`
}

// ModifyProfileRequest is the body of PATCH /api/v1/users/{id}.
//
// Introduction and Job are pointers so that an omitted field can be told
// apart from an explicitly supplied empty string. When JobSkills is present
// it is a FULL REPLACE of the profile's skill list: skills not named here
// are dropped, and the stored order matches the request order. An omitted
// jobSkills field (nil slice) leaves the stored list unchanged; an explicit
// empty array clears it.
type ModifyProfileRequest struct {
	Introduction *string `json:"introduction,omitempty"`

	Job *string `json:"job,omitempty"`

	JobSkills []JobSkillRequest `json:"jobSkills,omitempty"`
}

// SkillNames returns the requested skill names in request order.
func (r ModifyProfileRequest) SkillNames() []string {
	if len(r.JobSkills) == 0 {
		return nil
	}

	names := make([]string, 0, len(r.JobSkills))
	for _, skill := range r.JobSkills {
		names = append(names, skill.Name)
	}

	return names
}
