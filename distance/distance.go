package distance

import (
	"context"
	"fmt"
	"strings"

	kakao "hrdesk.co.kr/hrdesk/kakao/v1"
	"hrdesk.co.kr/hrdesk/kakao/v1/common"
)

// Failure strings are returned in place of a distance and shown to the submitter as is.
const (
	AddressFailure  = "주소 변환 실패"
	DistanceFailure = "거리 계산 실패"
)

// Interchanges are resolved locally without calling the geocoder. Keys are
// lower-cased with spaces removed.
var Interchanges = map[string]common.Coordinate{
	"논산ic": {X: "127.0896", Y: "36.2041"},
	"서울ic": {X: "127.1045", Y: "37.5997"},
}

type Geocoder interface {
	SearchAddress(ctx context.Context, query string) (*kakao.AddressSearchResponse, error)
}

type Router interface {
	Get(ctx context.Context, origin, destination common.Coordinate, priority kakao.Priority) (*kakao.DirectionsResponse, error)
}

type Service struct {
	geocoder Geocoder
	router   Router
}

func NewService(geocoder Geocoder, router Router) *Service {
	return &Service{geocoder: geocoder, router: router}
}

func NewKakaoService(client *kakao.KakaoClient) *Service {
	return NewService(client.Local, client.Directions)
}

func interchangeKey(address string) string {
	return strings.ReplaceAll(strings.ToLower(address), " ", "")
}

// Coordinates resolves an address. ok is false for an empty address, a geocoder
// error or an empty result.
func (s *Service) Coordinates(ctx context.Context, address string) (common.Coordinate, bool) {
	if strings.TrimSpace(address) == "" {
		fmt.Printf("[INFO] address is empty\n")
		return common.Coordinate{}, false
	}

	if c, ok := Interchanges[interchangeKey(address)]; ok {
		return c, true
	}

	res, err := s.geocoder.SearchAddress(ctx, address)
	if err != nil {
		fmt.Printf("[ERROR] geocode %s: %v\n", address, err)
		return common.Coordinate{}, false
	}
	if len(res.Documents) == 0 {
		fmt.Printf("[INFO] no documents found for address: %s\n", address)
		return common.Coordinate{}, false
	}
	c := res.Documents[0].Coordinate
	if c.IsZero() {
		return common.Coordinate{}, false
	}
	return c, true
}

// TollDistance returns the shortest-distance route length as "%.2f km", or one
// of the failure strings. Nothing is retried or cached.
func (s *Service) TollDistance(ctx context.Context, origin, destination string) string {
	from, ok := s.Coordinates(ctx, origin)
	if !ok {
		return AddressFailure
	}
	to, ok := s.Coordinates(ctx, destination)
	if !ok {
		return AddressFailure
	}

	res, err := s.router.Get(ctx, from, to, kakao.PriorityDistance)
	if err != nil {
		fmt.Printf("[ERROR] directions %s -> %s: %v\n", origin, destination, err)
		return DistanceFailure
	}
	if len(res.Routes) == 0 || res.Routes[0].Summary == nil {
		return DistanceFailure
	}

	km := float64(res.Routes[0].Summary.Distance) / 1000
	return fmt.Sprintf("%.2f km", km)
}

func IsFailure(result string) bool {
	return result == AddressFailure || result == DistanceFailure
}
