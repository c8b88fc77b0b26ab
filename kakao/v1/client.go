package v1

import "time"

const (
	DefaultLocalURL    = "https://dapi.kakao.com"
	DefaultMobilityURL = "https://apis-navi.kakaomobility.com"
)

type KakaoClient struct {
	Local      *LocalEndpoint
	Directions *DirectionsEndpoint
}

// NewKakaoClient builds a client for the Local and Mobility hosts sharing one REST key.
func NewKakaoClient(localURL, mobilityURL, apiKey string, timeout time.Duration) *KakaoClient {
	if localURL == "" {
		localURL = DefaultLocalURL
	}
	if mobilityURL == "" {
		mobilityURL = DefaultMobilityURL
	}
	return &KakaoClient{
		Local:      &LocalEndpoint{transport: NewTransport(localURL, apiKey, timeout)},
		Directions: &DirectionsEndpoint{transport: NewTransport(mobilityURL, apiKey, timeout)},
	}
}
