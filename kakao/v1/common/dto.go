package common

// Meta is the paging block returned by the Local search APIs.
type Meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

// Coordinate is a WGS84 point as Kakao transmits it, longitude first.
type Coordinate struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Param renders the "x,y" form used by the mobility APIs.
func (c Coordinate) Param() string {
	return c.X + "," + c.Y
}

func (c Coordinate) IsZero() bool {
	return c.X == "" || c.Y == ""
}
