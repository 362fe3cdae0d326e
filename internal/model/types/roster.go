package types

type RosterRequest struct {
	Email string `query:"email" validate:"required" example:"michael@mergington.edu"`
}

type RosterChangeResponse struct {
	Message string `json:"message" example:"Signed up michael@mergington.edu for Chess Club"`
}
