package core

import (
	"hrdesk.co.kr/hrdesk/core/models"
	"hrdesk.co.kr/hrdesk/utils"
)

// TripLedger is the append-only table for one trip kind.
type TripLedger struct {
	store *FileStore
	kind  models.TripKind
}

func NewTripLedger(store *FileStore, kind models.TripKind) *TripLedger {
	return &TripLedger{store: store, kind: kind}
}

func (l *TripLedger) Kind() models.TripKind {
	return l.kind
}

func (l *TripLedger) Append(t models.Trip) error {
	return l.store.AppendRow(l.kind.FileName(), t.Row())
}

func (l *TripLedger) List() ([]models.Trip, error) {
	rows, err := l.store.ReadRows(l.kind.FileName())
	if err != nil {
		return nil, err
	}
	return utils.Map(rows, models.TripFromRow), nil
}

// ListByUser returns the user's own trips; a non-empty filterDate must match the trip date exactly.
func (l *TripLedger) ListByUser(userID, filterDate string) ([]models.Trip, error) {
	trips, err := l.List()
	if err != nil {
		return nil, err
	}
	return utils.Filter(trips, func(t models.Trip) bool {
		if t.UserID != userID {
			return false
		}
		return filterDate == "" || t.TripDate == filterDate
	}), nil
}

// DeleteBySubmitTime removes every row whose submission time equals submittedAt
// and reports how many were removed.
func (l *TripLedger) DeleteBySubmitTime(submittedAt string) (int, error) {
	if !l.store.Exists(l.kind.FileName()) {
		return 0, nil
	}
	rows, err := l.store.ReadRows(l.kind.FileName())
	if err != nil {
		return 0, err
	}
	kept := utils.Filter(rows, func(row []string) bool { return utils.Field(row, 1) != submittedAt })
	if err := l.store.WriteRows(l.kind.FileName(), kept); err != nil {
		return 0, err
	}
	return len(rows) - len(kept), nil
}

// Views resolves every trip's submitter to a display name.
func (l *TripLedger) Views(dir *Directory) ([]models.TripView, error) {
	trips, err := l.List()
	if err != nil {
		return nil, err
	}
	users, err := dir.Index()
	if err != nil {
		return nil, err
	}
	return utils.Map(trips, func(t models.Trip) models.TripView {
		return models.TripView{
			Name:          users.NameOf(t.UserID),
			SubmittedAt:   t.SubmittedAt,
			TripDate:      t.TripDate,
			DepartureTime: t.DepartureTime,
			Origin:        t.Origin,
			Destination:   t.Destination,
			Purpose:       t.Purpose,
			CarNumber:     t.CarNumber,
			Distance:      t.Distance,
		}
	}), nil
}
