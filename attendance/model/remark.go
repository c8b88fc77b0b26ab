package model

import "strings"

const (
	RemarkLocalTrip    = "출(시내)"
	RemarkOutdoorTrip  = "출(시외)"
	RemarkAnnualLeave  = "연차"
	RemarkHalfDayLeave = "반차"
	RemarkLeave        = "휴직"
	RemarkParental     = "육아"
	RemarkNormal       = "정상"
)

// ClassifyRemark maps a mode string to its remark label. The first matching
// category wins; 출장 without 시내 or 시외 stays normal.
func ClassifyRemark(mode string) string {
	m := strings.ToLower(mode)
	switch {
	case strings.Contains(m, "출장"):
		if strings.Contains(m, "시내") {
			return RemarkLocalTrip
		}
		if strings.Contains(m, "시외") {
			return RemarkOutdoorTrip
		}
		return RemarkNormal
	case strings.Contains(m, RemarkAnnualLeave):
		return RemarkAnnualLeave
	case strings.Contains(m, RemarkHalfDayLeave):
		return RemarkHalfDayLeave
	case strings.Contains(m, RemarkLeave):
		return RemarkLeave
	case strings.Contains(m, RemarkParental):
		return RemarkParental
	}
	return RemarkNormal
}
