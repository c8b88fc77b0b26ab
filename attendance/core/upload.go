package core

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"hrdesk.co.kr/hrdesk/attendance/model"
	"hrdesk.co.kr/hrdesk/utils"
)

const maxXLSRows = 100000

// ParseUpload reads the first sheet of a clock-event export. The format is
// chosen by extension: .xlsx through excelize, legacy .xls through extrame/xls.
func ParseUpload(filename string, r io.Reader) ([]model.ClockEvent, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, ErrUnsupportedFile
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	var rows [][]string
	if ext == ".xls" {
		rows, err = readXLSRows(data)
	} else {
		rows, err = readXLSXRows(data)
	}
	if err != nil {
		return nil, err
	}
	return parseClockEvents(rows)
}

func readXLSXRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no worksheet found")
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readXLSRows(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}
	return wb.ReadAllCells(maxXLSRows), nil
}

func parseClockEvents(rows [][]string) ([]model.ClockEvent, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Missing: model.RequiredColumns}
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	get := func(row []string, col string) string {
		return strings.TrimSpace(utils.Field(row, index[col]))
	}

	var events []model.ClockEvent
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		events = append(events, model.ClockEvent{
			EventDate:  normalizeDate(get(row, model.ColumnEventDate)),
			EventTime:  normalizeTime(get(row, model.ColumnEventTime)),
			OccurredAt: get(row, model.ColumnOccurredAt),
			EmployeeID: get(row, model.ColumnEmployeeID),
			Name:       get(row, model.ColumnName),
			Mode:       get(row, model.ColumnMode),
		})
	}
	return events, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

var dateLayouts = []string{
	utils.DateLayout,
	"2006/01/02",
	"2006.01.02",
	"2006.1.2",
	"20060102",
	utils.DateTimeLayout,
}

// largest serial Excel can represent (9999-12-31)
const maxExcelSerial = 2958465

// normalizeDate turns Excel serials and common date spellings into YYYY-MM-DD.
// Anything else is kept verbatim.
func normalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(utils.DateLayout)
		}
	}
	if t, err := utils.ParseISOTime(s); err == nil {
		return t.Format(utils.DateLayout)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 1 && f <= maxExcelSerial {
		if t, err := excelize.ExcelDateToTime(math.Floor(f), false); err == nil {
			return t.Format(utils.DateLayout)
		}
	}
	return s
}

// normalizeTime turns a day fraction (or a full serial) into HH:MM:SS.
func normalizeTime(s string) string {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || (f >= 1 && !strings.Contains(s, ".")) {
		return s
	}
	secs := int(math.Round((f - math.Floor(f)) * 86400))
	if secs >= 86400 {
		secs = 86399
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
