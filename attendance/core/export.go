package core

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"hrdesk.co.kr/hrdesk/attendance/model"
	"hrdesk.co.kr/hrdesk/utils"
)

const exportSheet = "Sheet1"

// ApprovedRecords returns the reconciled rows whose effective status is approved.
func (s *Service) ApprovedRecords() ([]model.AttendanceRecord, error) {
	rows, err := s.store.ReadRows(AttendanceFile)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoAttendance
	}

	records, err := s.effectiveRecords()
	if err != nil {
		return nil, err
	}
	approved := utils.Filter(records, func(r model.AttendanceRecord) bool { return r.Status == model.StatusApproved })
	if len(approved) == 0 {
		return nil, ErrNoApproved
	}
	return approved, nil
}

// ExportApproved writes the approved rows as an xlsx workbook and returns the row count.
func (s *Service) ExportApproved(w io.Writer) (int, error) {
	records, err := s.ApprovedRecords()
	if err != nil {
		return 0, err
	}

	f, err := ApprovedWorkbook(records)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("write workbook: %w", err)
	}
	fmt.Printf("[INFO] exported %d approved attendance records\n", len(records))
	return len(records), nil
}

// ApprovedWorkbook lays the records out under a bold header row, in attendance.csv column order.
func ApprovedWorkbook(records []model.AttendanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	header := utils.Map(model.AttendanceHeader, func(h string) interface{} { return h })
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := utils.Map(rec.Row(), func(v string) interface{} { return v })
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetColWidth(exportSheet, "D", "F", 20)
	return f, nil
}
