package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	hrcore "hrdesk.co.kr/hrdesk/core"
)

var uploadHeader = []interface{}{"발생일자", "발생시각", "일시", "사원번호", "이름", "모드"}

func buildUpload(t *testing.T, header []interface{}, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func event(date, tm, id, name, mode string) []interface{} {
	return []interface{}{date, tm, date + " " + tm, id, name, mode}
}

func newTestService(t *testing.T) (*Service, *hrcore.FileStore) {
	t.Helper()
	store, err := hrcore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.WriteRows(hrcore.UsersFile, [][]string{
		{"admin", "관리자", "admin123", "관리팀", "논산", "팀장", "", ""},
		{"E100", "김철수", "pw", "영업부", "대전", "사원", "", ""},
		{"E200", "이영희", "pw", "생산부", "수원", "대리", "", ""},
		{"E300", "박민수", "pw", "영업부", "대전", "사원", "", ""},
	}))
	return NewService(store, hrcore.NewDirectory(store)), store
}

func readFile(t *testing.T, store *hrcore.FileStore, name string) string {
	t.Helper()
	b, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	return string(b)
}

func writeAttendance(t *testing.T, store *hrcore.FileStore, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(AttendanceFile), []byte(content), 0o644))
}

func writeApprovals(t *testing.T, store *hrcore.FileStore, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(ApprovalsFile), []byte(content), 0o644))
}

const attendanceFixture = `사원번호,이름,부서,출근시간,퇴근시간,날짜,결재상태,근무지,비고
E100,김철수,영업부,2024-01-05 08:30:00,2024-01-05 18:00:00,2024-01-05 08:30:00,대기,대전,정상
E200,이영희,생산부,2024-01-05 08:50:00,2024-01-05 17:40:00,2024-01-05 08:50:00,대기,수원,정상
E300,박민수,영업부,2024-02-01 09:00:00,,2024-02-01 09:00:00,대기,대전,정상
E999,미등록자,미등록,2024-01-10 09:00:00,,2024-01-10 09:00:00,,,
`
