package core

import (
	"hrdesk.co.kr/hrdesk/attendance/model"
	coremodels "hrdesk.co.kr/hrdesk/core/models"
	"hrdesk.co.kr/hrdesk/utils"
)

type DepartmentGroup struct {
	Department string                   `json:"department"`
	Records    []model.AttendanceRecord `json:"records"`
}

type LocationGroup struct {
	Location    string            `json:"location"`
	Departments []DepartmentGroup `json:"departments"`
}

// DateRange filters on the first ten characters of the attendance date. It
// applies only when both bounds are set; both are inclusive.
type DateRange struct {
	Start string
	End   string
}

func (r DateRange) Active() bool {
	return r.Start != "" && r.End != ""
}

func (r DateRange) Contains(date string) bool {
	d := utils.DatePrefix(date)
	return r.Start <= d && d <= r.End
}

// effectiveRecords fills missing workplace, status and remark, then overlays
// the approval ledger's status.
func (s *Service) effectiveRecords() ([]model.AttendanceRecord, error) {
	records, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}
	approvals, err := s.loadApprovals()
	if err != nil {
		return nil, err
	}
	users, err := s.directory.Index()
	if err != nil {
		return nil, err
	}

	for i := range records {
		rec := &records[i]
		if rec.Workplace == "" {
			rec.Workplace = users.WorkplaceOf(rec.EmployeeID)
		}
		if rec.Status == "" {
			rec.Status = model.StatusPending
		}
		if rec.Remark == "" {
			rec.Remark = model.RemarkNormal
		}
		if status, ok := approvals[rec.Key()]; ok {
			rec.Status = status
		}
	}
	return records, nil
}

// View partitions the reconciled attendance into the fixed locations, then by
// department in first-appearance order. Records with any other workplace are
// left out. Departments emptied by the date filter are kept.
func (s *Service) View(dr DateRange) ([]LocationGroup, error) {
	records, err := s.effectiveRecords()
	if err != nil {
		return nil, err
	}

	view := make([]LocationGroup, 0, len(coremodels.Workplaces))
	for _, loc := range coremodels.Workplaces {
		atLoc := utils.Filter(records, func(r model.AttendanceRecord) bool { return r.Workplace == loc })
		depts, byDept := utils.GroupBy(atLoc, func(r model.AttendanceRecord) string { return r.Department })

		group := LocationGroup{Location: loc, Departments: make([]DepartmentGroup, 0, len(depts))}
		for _, dept := range depts {
			recs := byDept[dept]
			if dr.Active() {
				recs = utils.Filter(recs, func(r model.AttendanceRecord) bool { return dr.Contains(r.Date) })
			}
			group.Departments = append(group.Departments, DepartmentGroup{Department: dept, Records: recs})
		}
		view = append(view, group)
	}
	return view, nil
}
