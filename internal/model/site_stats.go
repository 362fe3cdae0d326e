package model

type SiteStats struct {
	TotalActivities    int `json:"total_activities"`
	TotalCapacity      int `json:"total_capacity"`
	TotalRegistrations int `json:"total_registrations"`
	UniqueStudents     int `json:"unique_students"`
	SpotsLeft          int `json:"spots_left"`
}
