package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRemark(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{mode: "출근", want: RemarkNormal},
		{mode: "퇴근", want: RemarkNormal},
		{mode: "출장(시내)", want: RemarkLocalTrip},
		{mode: "출장 시외", want: RemarkOutdoorTrip},
		{mode: "시내 시외 출장", want: RemarkLocalTrip},
		{mode: "출장", want: RemarkNormal},
		{mode: "출장 연차", want: RemarkNormal},
		{mode: "연차", want: RemarkAnnualLeave},
		{mode: "오전반차", want: RemarkHalfDayLeave},
		{mode: "연차 반차", want: RemarkAnnualLeave},
		{mode: "휴직", want: RemarkLeave},
		{mode: "육아휴직", want: RemarkLeave},
		{mode: "육아", want: RemarkParental},
		{mode: "", want: RemarkNormal},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRemark(tt.mode))
		})
	}
}

func TestClockEventTimestamp(t *testing.T) {
	e := ClockEvent{EventDate: "2024-01-05", EventTime: "08:30:00"}
	assert.Equal(t, "2024-01-05 08:30:00", e.Timestamp())
}
