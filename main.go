package main

import (
	"mergington.edu/activities-backend/cmd/app"
)

// @title          Mergington High School Activities API
// @version        1.0.0
// @description    View extracurricular activities and sign students up by email.
// @contact.name   Mergington High School IT
// @contact.email  it@mergington.edu
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @host           localhost:8000
// @BasePath       /
func main() {
	app.Run()
}
