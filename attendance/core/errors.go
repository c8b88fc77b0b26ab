package core

import (
	"errors"
	"strings"

	"hrdesk.co.kr/hrdesk/attendance/model"
)

var (
	ErrUnsupportedFile = errors.New("유효한 엑셀 파일을 업로드해주세요.")
	ErrMissingColumns  = errors.New("엑셀 형식이 올바르지 않습니다. 필요한 컬럼: " + strings.Join(model.RequiredColumns, ", "))
	ErrNoAttendance    = errors.New("출석 데이터가 없습니다.")
	ErrNoApproved      = errors.New("승인된 데이터가 없습니다.")
	ErrScopeRequired   = errors.New("근무지와 부서를 모두 지정해야 합니다.")
)

// MissingColumnsError names the absent columns; it matches ErrMissingColumns.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return ErrMissingColumns.Error()
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}
