package constant

const (
	RosterStreamName    = "mhs-roster"
	RosterSubjectAll    = "ROSTER.*"
	RosterSubjectSignup = "ROSTER.signup"
	RosterSubjectLeave  = "ROSTER.unregister"

	RosterActionSignup = "signup"
	RosterActionLeave  = "unregister"
)
