package test

// synthetics_const is for defining tests that requires constant values used
// from its internal packages.
// The reason to not directly use the constant values from the internal packages
// is to explicitly define the tests that depends on the constant values, so
// that if a constant value is changed unexpectedly, the tests will fail accordingly,
// and the developer will be aware of the change.
const (
	// StaticIndexPath is where GET / redirects browsers to.
	StaticIndexPath = "/static/index.html"

	// DetailActivityNotFound is the error detail rendered for an unknown activity.
	// Used by POST /activities/:name/signup and POST /activities/:name/unregister
	DetailActivityNotFound = "Activity not found"

	// SchoolEmailDomain is the domain all seeded participant emails live under.
	SchoolEmailDomain = "mergington.edu"
)
