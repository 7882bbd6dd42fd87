package dto

// SummaryResponse holds entity totals for the dashboard.
type SummaryResponse struct {
	Users                int `json:"users" example:"4"`
	Students             int `json:"students" example:"120"`
	HighPriorityStudents int `json:"highPriorityStudents" example:"7"`
	Universities         int `json:"universities" example:"18"`
	Programs             int `json:"programs" example:"64"`
	Agents               int `json:"agents" example:"9"`
	Applications         int `json:"applications" example:"210"`
}
