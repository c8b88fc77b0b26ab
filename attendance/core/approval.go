package core

import (
	"fmt"

	"hrdesk.co.kr/hrdesk/attendance/model"
)

// loadApprovals scans the ledger top to bottom; the last entry per key wins.
func (s *Service) loadApprovals() (map[model.Key]string, error) {
	var entries []model.Approval
	if err := s.store.ReadTable(ApprovalsFile, &entries); err != nil {
		return nil, err
	}
	approvals := make(map[model.Key]string, len(entries))
	for _, a := range entries {
		approvals[a.Key()] = a.Status
	}
	return approvals, nil
}

// ensureApprovalLedger writes the header row when the ledger does not exist yet.
func (s *Service) ensureApprovalLedger() error {
	if s.store.Exists(ApprovalsFile) {
		return nil
	}
	if err := s.store.AppendRow(ApprovalsFile, model.ApprovalHeader); err != nil {
		return fmt.Errorf("create approval ledger: %w", err)
	}
	return nil
}

func (s *Service) appendApproval(a model.Approval) error {
	if err := s.ensureApprovalLedger(); err != nil {
		return err
	}
	if err := s.store.AppendRow(ApprovalsFile, a.Row()); err != nil {
		return fmt.Errorf("append approval %s %s: %w", a.EmployeeID, a.Date, err)
	}
	return nil
}

// needsApproval reports whether an approved entry may be appended for key.
func needsApproval(approvals map[model.Key]string, key model.Key) bool {
	status, ok := approvals[key]
	return !ok || status == model.StatusPending
}

// Approve appends an approved entry for (employeeID, date) unless the ledger
// already holds a non-pending status for it. It reports whether a row was appended.
func (s *Service) Approve(employeeID, date string) (bool, error) {
	approvals, err := s.loadApprovals()
	if err != nil {
		return false, err
	}
	key := model.Key{EmployeeID: employeeID, Date: date}
	if !needsApproval(approvals, key) {
		return false, nil
	}
	if err := s.appendApproval(model.Approval{EmployeeID: employeeID, Date: date, Status: model.StatusApproved}); err != nil {
		return false, err
	}
	return true, nil
}

// ApproveAll applies the Approve rule to every attendance row, restricted to
// department when both location and department are given. It returns the number
// of appended entries.
func (s *Service) ApproveAll(location, department string) (int, error) {
	records, err := s.loadAttendance()
	if err != nil {
		return 0, err
	}
	approvals, err := s.loadApprovals()
	if err != nil {
		return 0, err
	}

	appended := 0
	for _, rec := range records {
		if location != "" && department != "" && rec.Department != department {
			continue
		}
		key := rec.Key()
		if !needsApproval(approvals, key) {
			continue
		}
		if err := s.appendApproval(model.Approval{EmployeeID: rec.EmployeeID, Date: rec.Date, Status: model.StatusApproved}); err != nil {
			return appended, err
		}
		approvals[key] = model.StatusApproved
		appended++
	}

	fmt.Printf("[INFO] approved %d attendance records (location=%q department=%q)\n", appended, location, department)
	return appended, nil
}
