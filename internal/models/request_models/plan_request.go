package request_models

type PlanTripRequest struct {
	Budget       string `json:"budget" binding:"required"`
	Destinations string `json:"destinations" binding:"required"`
	Days         string `json:"days" binding:"required,numeric"`
}

type ListSpotsQuery struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=100"`
}
