package audit_test

import (
	"context"
	"testing"
	"time"

	"leavedesk/internal/audit"
	"leavedesk/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuditRepository struct {
	entries []*audit.Entry
	err     error
}

func (f *fakeAuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepository) FindByLeave(ctx context.Context, leaveID string) ([]audit.Entry, error) {
	return nil, nil
}

func TestRecordDecision(t *testing.T) {
	repo := &fakeAuditRepository{}
	svc := audit.NewService(repo)

	feedback := "need coverage during release week"
	event := events.LeaveDecidedEvent{
		EventType:  "leave.rejected",
		LeaveID:    uuid.NewString(),
		EmployeeID: uuid.NewString(),
		Status:     "REJECTED",
		Feedback:   &feedback,
		OccurredAt: time.Now().UTC(),
	}

	err := svc.RecordDecision(context.Background(), event)
	assert.NoError(t, err)
	assert.Len(t, repo.entries, 1)
	assert.Equal(t, "leave.rejected", repo.entries[0].EventType)
	assert.Equal(t, "REJECTED", repo.entries[0].Status)
	assert.NotNil(t, repo.entries[0].Feedback)
}

func TestRecordDecisionMalformedIDs(t *testing.T) {
	repo := &fakeAuditRepository{}
	svc := audit.NewService(repo)

	err := svc.RecordDecision(context.Background(), events.LeaveDecidedEvent{
		EventType:  "leave.approved",
		LeaveID:    "not-a-uuid",
		EmployeeID: uuid.NewString(),
		Status:     "APPROVED",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.entries)
}
