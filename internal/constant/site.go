package constant

const (
	SiteName = "Mergington High School"

	// StaticIndexPath is where the bundled front-end entry lives. The root
	// route redirects here so browsers land on the signup page.
	StaticIndexPath = "/static/index.html"

	SchoolEmailDomain = "mergington.edu"
)
