package model

// Activity is an extracurricular offering students can join by email.
//
// Name doubles as the registry key and is therefore excluded from the
// serialized record: the list endpoint keys its response object by it.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants"`
}

// Full reports whether the roster reached its configured capacity.
func (a *Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Registered reports whether email is already on the roster.
func (a *Activity) Registered(email string) bool {
	for _, participant := range a.Participants {
		if participant == email {
			return true
		}
	}
	return false
}
