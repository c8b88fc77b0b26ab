package models

type TripKind string

const (
	LocalTrip   TripKind = "local"
	OutdoorTrip TripKind = "outdoor"
)

// FileName is the ledger file backing the trip kind.
func (k TripKind) FileName() string {
	if k == OutdoorTrip {
		return "outdoor_trips.csv"
	}
	return "local_trips.csv"
}

// Trip is one row of local_trips.csv or outdoor_trips.csv.
type Trip struct {
	UserID        string `json:"userId"`
	SubmittedAt   string `json:"submitTime"`
	TripDate      string `json:"tripDate"`
	DepartureTime string `json:"departureTime"`
	Origin        string `json:"origin"`
	CarNumber     string `json:"carNumber"`
	Purpose       string `json:"purpose"`
	Destination   string `json:"destination"`
	Distance      string `json:"distance"`
}

func (t Trip) Row() []string {
	return []string{t.UserID, t.SubmittedAt, t.TripDate, t.DepartureTime, t.Origin, t.CarNumber, t.Purpose, t.Destination, t.Distance}
}

func TripFromRow(row []string) Trip {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return Trip{
		UserID:        get(0),
		SubmittedAt:   get(1),
		TripDate:      get(2),
		DepartureTime: get(3),
		Origin:        get(4),
		CarNumber:     get(5),
		Purpose:       get(6),
		Destination:   get(7),
		Distance:      get(8),
	}
}

// TripView is the admin listing shape: the submitter shown by name.
type TripView struct {
	Name          string `json:"name"`
	SubmittedAt   string `json:"submitTime"`
	TripDate      string `json:"tripDate"`
	DepartureTime string `json:"departureTime"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Purpose       string `json:"purpose"`
	CarNumber     string `json:"carNumber"`
	Distance      string `json:"distance"`
}

func (v TripView) Row() []string {
	return []string{v.Name, v.SubmittedAt, v.TripDate, v.DepartureTime, v.Origin, v.Destination, v.Purpose, v.CarNumber, v.Distance}
}
