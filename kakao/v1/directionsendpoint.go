package v1

import (
	"context"
	"encoding/json"

	"hrdesk.co.kr/hrdesk/kakao/v1/common"
)

type Priority string

const (
	PriorityRecommend Priority = "RECOMMEND"
	PriorityTime      Priority = "TIME"
	PriorityDistance  Priority = "DISTANCE"
)

type Fare struct {
	Taxi int `json:"taxi"`
	Toll int `json:"toll"`
}

type RouteSummary struct {
	Distance int  `json:"distance"` // metres
	Duration int  `json:"duration"` // seconds
	Fare     Fare `json:"fare"`
}

type Route struct {
	ResultCode int           `json:"result_code"`
	ResultMsg  string        `json:"result_msg"`
	Summary    *RouteSummary `json:"summary,omitempty"`
}

type DirectionsResponse struct {
	TransID string  `json:"trans_id"`
	Routes  []Route `json:"routes"`
}

type DirectionsEndpoint struct {
	transport *Transport
}

func (ep *DirectionsEndpoint) Get(ctx context.Context, origin, destination common.Coordinate, priority Priority) (*DirectionsResponse, error) {
	resp, err := ep.transport.Get(ctx, "/v1/directions", map[string]string{
		"origin":      origin.Param(),
		"destination": destination.Param(),
		"priority":    string(priority),
	})
	if err != nil {
		return nil, err
	}

	var result DirectionsResponse
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
