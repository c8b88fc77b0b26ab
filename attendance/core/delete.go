package core

import (
	"fmt"

	"hrdesk.co.kr/hrdesk/attendance/model"
	"hrdesk.co.kr/hrdesk/utils"
)

// Delete removes the attendance rows and ledger entries for (employeeID, date).
// It returns the number of attendance rows removed.
func (s *Service) Delete(employeeID, date string) (int, error) {
	key := model.Key{EmployeeID: employeeID, Date: date}
	removed, err := s.removeAttendance(func(r model.AttendanceRecord) bool { return r.Key() == key })
	if err != nil {
		return 0, err
	}
	if err := s.removeApprovals(map[model.Key]struct{}{key: {}}); err != nil {
		return 0, err
	}
	return len(removed), nil
}

// DeleteDepartment removes every attendance row of the department together with
// the ledger entries of the removed rows. Both location and department are required.
func (s *Service) DeleteDepartment(location, department string) (int, error) {
	if location == "" || department == "" {
		return 0, ErrScopeRequired
	}

	removed, err := s.removeAttendance(func(r model.AttendanceRecord) bool { return r.Department == department })
	if err != nil {
		return 0, err
	}
	keys := make(map[model.Key]struct{}, len(removed))
	for _, r := range removed {
		keys[r.Key()] = struct{}{}
	}
	if err := s.removeApprovals(keys); err != nil {
		return 0, err
	}

	fmt.Printf("[INFO] deleted %d attendance records of %s/%s\n", len(removed), location, department)
	return len(removed), nil
}

func (s *Service) removeAttendance(match func(model.AttendanceRecord) bool) ([]model.AttendanceRecord, error) {
	if !s.store.Exists(AttendanceFile) {
		return nil, nil
	}
	records, err := s.loadAttendance()
	if err != nil {
		return nil, err
	}
	removed := utils.Filter(records, match)
	kept := utils.Filter(records, func(r model.AttendanceRecord) bool { return !match(r) })
	if err := s.saveAttendance(kept); err != nil {
		return nil, err
	}
	return removed, nil
}

func (s *Service) removeApprovals(keys map[model.Key]struct{}) error {
	if !s.store.Exists(ApprovalsFile) {
		return nil
	}
	var entries []model.Approval
	if err := s.store.ReadTable(ApprovalsFile, &entries); err != nil {
		return err
	}
	kept := utils.Filter(entries, func(a model.Approval) bool {
		_, ok := keys[a.Key()]
		return !ok
	})
	if err := s.store.WriteTable(ApprovalsFile, kept); err != nil {
		return fmt.Errorf("save approvals: %w", err)
	}
	return nil
}
