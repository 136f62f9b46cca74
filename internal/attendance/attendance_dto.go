package attendance

import "time"

type SwipeRequest struct {
	Type string `json:"type" binding:"required"`
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	Timestamp  string `json:"timestamp"`
}

type TotalHoursResponse struct {
	EmployeeID string  `json:"employee_id"`
	TotalHours float64 `json:"total_hours"`
}

func mapToResponse(e Event) EventResponse {
	return EventResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID.String(),
		Type:       e.Type,
		Timestamp:  e.Timestamp.Format(time.RFC3339),
	}
}
