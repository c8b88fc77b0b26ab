package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteRemovesLedgerRows(t *testing.T) {
	svc, store := newTestService(t)
	writeAttendance(t, store, attendanceFixture)
	writeApprovals(t, store, "사원번호,날짜,상태\nE100,2024-01-05 08:30:00,승인\nE200,2024-01-05 08:50:00,승인\n")

	n, err := svc.Delete("E100", "2024-01-05 08:30:00")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := svc.loadAttendance()
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "사원번호,날짜,상태\nE200,2024-01-05 08:50:00,승인\n", readFile(t, store, ApprovalsFile))
}

func TestDeleteWithoutFiles(t *testing.T) {
	svc, store := newTestService(t)

	n, err := svc.Delete("E100", "2024-01-05")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, store.Exists(AttendanceFile))
	assert.False(t, store.Exists(ApprovalsFile))
}

func TestDeleteDepartment(t *testing.T) {
	svc, store := newTestService(t)
	writeAttendance(t, store, attendanceFixture)
	writeApprovals(t, store, "사원번호,날짜,상태\nE100,2024-01-05 08:30:00,승인\nE100,2024-01-09 08:30:00,승인\nE200,2024-01-05 08:50:00,승인\n")

	_, err := svc.DeleteDepartment("", "영업부")
	assert.ErrorIs(t, err, ErrScopeRequired)
	_, err = svc.DeleteDepartment("대전", "")
	assert.ErrorIs(t, err, ErrScopeRequired)

	n, err := svc.DeleteDepartment("대전", "영업부")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := svc.loadAttendance()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "E200", records[0].EmployeeID)
	assert.Equal(t, "E999", records[1].EmployeeID)

	assert.Equal(t, "사원번호,날짜,상태\nE100,2024-01-09 08:30:00,승인\nE200,2024-01-05 08:50:00,승인\n", readFile(t, store, ApprovalsFile))
}
