package core

import (
	"fmt"
	"io"

	"hrdesk.co.kr/hrdesk/attendance/model"
	"hrdesk.co.kr/hrdesk/utils"
)

type ImportSummary struct {
	Success  bool `json:"success"`
	Imported int  `json:"imported"`
	Skipped  int  `json:"skipped"`
}

// Import merges an uploaded clock-event export into attendance.csv.
//
// A group is skipped when (employee id, first timestamp) already exists in the
// table. Only the first timestamp is compared, so a day whose first event
// changes between uploads is imported again.
func (s *Service) Import(filename string, r io.Reader) (*ImportSummary, error) {
	events, err := ParseUpload(filename, r)
	if err != nil {
		return nil, err
	}

	existing, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}
	existingKeys := make(map[model.Key]struct{}, len(existing))
	for _, rec := range existing {
		existingKeys[rec.Key()] = struct{}{}
	}

	users, err := s.directory.Index()
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{Success: true}
	var added []model.AttendanceRecord

	dates, byDate := utils.GroupBy(events, func(e model.ClockEvent) string { return e.EventDate })
	for _, date := range dates {
		day := utils.Filter(byDate[date], isClockMode)
		for i := range day {
			day[i].Department = users.DepartmentOf(day[i].EmployeeID)
		}

		for _, g := range GroupRecords(day) {
			key := model.Key{EmployeeID: g.EmployeeID, Date: g.FirstTimestamp()}
			if _, ok := existingKeys[key]; ok {
				summary.Skipped++
				continue
			}
			added = append(added, model.AttendanceRecord{
				EmployeeID: g.EmployeeID,
				Name:       g.Name,
				Department: g.Department,
				ClockIn:    g.GetClockIn(),
				ClockOut:   g.GetClockOut(),
				Date:       g.FirstTimestamp(),
				Status:     model.StatusPending,
				Workplace:  users.WorkplaceOf(g.EmployeeID),
				Remark:     model.ClassifyRemark(g.Mode),
			})
		}
	}

	if len(added) > 0 {
		if err := s.store.WriteTable(AttendanceFile, append(existing, added...)); err != nil {
			return nil, fmt.Errorf("save attendance: %w", err)
		}
	}
	if err := s.ensureApprovalLedger(); err != nil {
		return nil, err
	}

	summary.Imported = len(added)
	fmt.Printf("[INFO] attendance import %s: %d imported, %d skipped\n", filename, summary.Imported, summary.Skipped)
	return summary, nil
}

func (s *Service) loadAttendance() ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	if err := s.store.ReadTable(AttendanceFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) saveAttendance(records []model.AttendanceRecord) error {
	if err := s.store.WriteTable(AttendanceFile, records); err != nil {
		return fmt.Errorf("save attendance: %w", err)
	}
	return nil
}
