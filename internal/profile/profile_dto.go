package profile

import (
	"time"

	"leavedesk/internal/calendar"
)

type UpdateProfileRequest struct {
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"date_of_birth"`
	JoinDate         string `json:"join_date"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

type ProfileResponse struct {
	EmployeeID       string `json:"employee_id"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DateOfBirth      string `json:"date_of_birth"`
	JoinDate         string `json:"join_date"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		EmployeeID:       p.EmployeeID.String(),
		Phone:            p.Phone,
		Address:          p.Address,
		DateOfBirth:      formatDate(p.DateOfBirth),
		JoinDate:         formatDate(p.JoinDate),
		Department:       p.Department,
		Position:         p.Position,
		EmergencyContact: p.EmergencyContact,
		EmergencyPhone:   p.EmergencyPhone,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(calendar.DateLayout)
}
