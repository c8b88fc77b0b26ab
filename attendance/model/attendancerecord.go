package model

const (
	StatusPending  = "대기"
	StatusApproved = "승인"
)

// AttendanceRecord is one row of attendance.csv.
type AttendanceRecord struct {
	EmployeeID string `csv:"사원번호" json:"employeeId"`
	Name       string `csv:"이름" json:"name"`
	Department string `csv:"부서" json:"department"`
	ClockIn    string `csv:"출근시간" json:"clockIn"`
	ClockOut   string `csv:"퇴근시간" json:"clockOut"`
	Date       string `csv:"날짜" json:"date"`
	Status     string `csv:"결재상태" json:"status"`
	Workplace  string `csv:"근무지" json:"workplace"`
	Remark     string `csv:"비고" json:"remark"`
}

// AttendanceHeader is the column order of attendance.csv and of the approved export.
var AttendanceHeader = []string{"사원번호", "이름", "부서", "출근시간", "퇴근시간", "날짜", "결재상태", "근무지", "비고"}

func (r AttendanceRecord) Key() Key {
	return Key{EmployeeID: r.EmployeeID, Date: r.Date}
}

func (r AttendanceRecord) Row() []string {
	return []string{r.EmployeeID, r.Name, r.Department, r.ClockIn, r.ClockOut, r.Date, r.Status, r.Workplace, r.Remark}
}

// Key identifies an attendance day: employee id and the stored date string.
type Key struct {
	EmployeeID string
	Date       string
}
