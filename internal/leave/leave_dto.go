package leave

import "time"

// ApplyLeaveRequest deliberately carries no binding tags on the dates:
// presence and range are validated by the policy so the engine's error
// kinds reach the client unchanged.
type ApplyLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type RejectLeaveRequest struct {
	Feedback string `json:"feedback"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Duration     int     `json:"duration"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	Feedback     *string `json:"feedback,omitempty"`
	DecidedBy    *string `json:"decided_by,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

type BalanceResponse struct {
	EmployeeID string `json:"employee_id"`
	Allotment  int    `json:"allotment"`
	Remaining  int    `json:"remaining"`
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Duration:   l.Duration,
		Reason:     l.Reason,
		Status:     l.Status,
		Feedback:   l.Feedback,
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
