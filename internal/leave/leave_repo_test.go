package leave_test

import (
	"context"
	"testing"

	"leavedesk/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openRepoTestDB(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	return leave.NewRepository(gdb), mock
}

func TestLeaveRepository_WithTxRoutesThroughTransaction(t *testing.T) {
	repo, poolMock := openRepoTestDB(t)

	// Separate backing connection for the transaction. Queries landing on the
	// pool mock instead of this one would fail both mocks' expectations.
	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	id := uuid.New()
	txMock.ExpectQuery(`SELECT \* FROM "leave_requests" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "duration", "status"}).
			AddRow(id.String(), uuid.New().String(), 3, leave.StatusPending))

	got, err := repo.WithTx(tx).FindByID(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, leave.StatusPending, got.Status)

	assert.NoError(t, poolMock.ExpectationsWereMet())
	assert.NoError(t, txMock.ExpectationsWereMet())
}

func TestLeaveRepository_LockEmployeeKeyedByEmployee(t *testing.T) {
	repo, poolMock := openRepoTestDB(t)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txDB.Close()

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	employeeID := uuid.New().String()
	txMock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs(employeeID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.WithTx(tx).LockEmployee(context.Background(), employeeID)
	assert.NoError(t, err)

	assert.NoError(t, poolMock.ExpectationsWereMet())
	assert.NoError(t, txMock.ExpectationsWereMet())
}
