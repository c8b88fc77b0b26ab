package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrdesk.co.kr/hrdesk/attendance/model"
)

func TestViewOverlaysLedgerAndGroups(t *testing.T) {
	svc, store := newTestService(t)
	writeAttendance(t, store, attendanceFixture)
	writeApprovals(t, store, "사원번호,날짜,상태\nE100,2024-01-05 08:30:00,대기\nE100,2024-01-05 08:30:00,승인\n")

	view, err := svc.View(DateRange{})
	require.NoError(t, err)
	require.Len(t, view, 3)

	assert.Equal(t, "논산", view[0].Location)
	require.Len(t, view[0].Departments, 1)
	assert.Equal(t, "미등록", view[0].Departments[0].Department)
	filled := view[0].Departments[0].Records[0]
	assert.Equal(t, "E999", filled.EmployeeID)
	assert.Equal(t, "논산", filled.Workplace)
	assert.Equal(t, model.StatusPending, filled.Status)
	assert.Equal(t, model.RemarkNormal, filled.Remark)

	assert.Equal(t, "대전", view[1].Location)
	require.Len(t, view[1].Departments, 1)
	sales := view[1].Departments[0]
	assert.Equal(t, "영업부", sales.Department)
	require.Len(t, sales.Records, 2)
	assert.Equal(t, model.StatusApproved, sales.Records[0].Status)
	assert.Equal(t, model.StatusPending, sales.Records[1].Status)

	assert.Equal(t, "수원", view[2].Location)
	require.Len(t, view[2].Departments, 1)
	assert.Equal(t, "생산부", view[2].Departments[0].Department)
}

func TestViewDateRange(t *testing.T) {
	svc, store := newTestService(t)
	writeAttendance(t, store, attendanceFixture)

	view, err := svc.View(DateRange{Start: "2024-01-01", End: "2024-01-31"})
	require.NoError(t, err)

	daejeon := view[1].Departments[0]
	require.Len(t, daejeon.Records, 1)
	assert.Equal(t, "E100", daejeon.Records[0].EmployeeID)

	half, err := svc.View(DateRange{Start: "2024-01-01"})
	require.NoError(t, err)
	assert.Len(t, half[1].Departments[0].Records, 2, "a single bound does not filter")

	feb, err := svc.View(DateRange{Start: "2024-02-01", End: "2024-02-29"})
	require.NoError(t, err)
	require.Len(t, feb[2].Departments, 1, "emptied departments are kept")
	assert.Empty(t, feb[2].Departments[0].Records)
}

func TestViewWithoutFiles(t *testing.T) {
	svc, _ := newTestService(t)

	view, err := svc.View(DateRange{})
	require.NoError(t, err)
	require.Len(t, view, 3)
	for _, loc := range view {
		assert.Empty(t, loc.Departments)
	}
}

func TestDateRangeContains(t *testing.T) {
	dr := DateRange{Start: "2024-01-01", End: "2024-01-31"}
	assert.True(t, dr.Contains("2024-01-01 00:00:00"))
	assert.True(t, dr.Contains("2024-01-31 23:59:59"))
	assert.False(t, dr.Contains("2024-02-01 08:00:00"))
	assert.False(t, dr.Contains("2023-12-31"))
}
