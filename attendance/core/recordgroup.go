package core

import (
	"sort"
	"strings"

	"hrdesk.co.kr/hrdesk/attendance/model"
	"hrdesk.co.kr/hrdesk/utils"
)

// RecordGroup is one employee's clock events on a single event date.
type RecordGroup struct {
	EmployeeID string
	Name       string
	Department string
	Mode       string
	Timestamps []string
	Events     []model.ClockEvent
}

func (rg *RecordGroup) FirstTimestamp() string {
	if len(rg.Timestamps) == 0 {
		return ""
	}
	return rg.Timestamps[0]
}

// GetClockIn returns the first timestamp backed by an event whose mode contains 출근.
func (rg *RecordGroup) GetClockIn() string {
	return rg.firstWithMode(model.ModeClockIn)
}

// GetClockOut returns the first timestamp backed by an event whose mode contains 퇴근.
func (rg *RecordGroup) GetClockOut() string {
	return rg.firstWithMode(model.ModeClockOut)
}

func (rg *RecordGroup) firstWithMode(mode string) string {
	for _, ts := range rg.Timestamps {
		for _, e := range rg.Events {
			if e.Timestamp() == ts && strings.Contains(e.Mode, mode) {
				return ts
			}
		}
	}
	return ""
}

// GroupRecords groups one date's events by employee id in ascending id order.
// Name, department and mode come from the employee's first event.
func GroupRecords(events []model.ClockEvent) []*RecordGroup {
	ids, byID := utils.GroupBy(events, func(e model.ClockEvent) string { return e.EmployeeID })
	sort.Strings(ids)

	groups := make([]*RecordGroup, 0, len(ids))
	for _, id := range ids {
		evs := byID[id]
		groups = append(groups, &RecordGroup{
			EmployeeID: id,
			Name:       evs[0].Name,
			Department: evs[0].Department,
			Mode:       evs[0].Mode,
			Timestamps: utils.Map(evs, model.ClockEvent.Timestamp),
			Events:     evs,
		})
	}
	return groups
}

func isClockMode(e model.ClockEvent) bool {
	return e.Mode == model.ModeClockIn || e.Mode == model.ModeClockOut
}
