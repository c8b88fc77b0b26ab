package core

import (
	hrcore "hrdesk.co.kr/hrdesk/core"
)

const (
	AttendanceFile = "attendance.csv"
	ApprovalsFile  = "approvals.csv"
)

// Service owns attendance.csv and approvals.csv. Every call rereads both files
// and rewrites them in full; nothing is locked.
type Service struct {
	store     *hrcore.FileStore
	directory *hrcore.Directory
}

func NewService(store *hrcore.FileStore, directory *hrcore.Directory) *Service {
	return &Service{store: store, directory: directory}
}
