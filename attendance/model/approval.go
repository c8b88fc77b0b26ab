package model

// Approval is one row of the append-only approvals.csv ledger.
type Approval struct {
	EmployeeID string `csv:"사원번호" json:"employeeId"`
	Date       string `csv:"날짜" json:"date"`
	Status     string `csv:"상태" json:"status"`
}

var ApprovalHeader = []string{"사원번호", "날짜", "상태"}

func (a Approval) Key() Key {
	return Key{EmployeeID: a.EmployeeID, Date: a.Date}
}

func (a Approval) Row() []string {
	return []string{a.EmployeeID, a.Date, a.Status}
}
