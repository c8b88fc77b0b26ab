package v1

import (
	"context"
	"encoding/json"

	"hrdesk.co.kr/hrdesk/kakao/v1/common"
)

type AddressDocument struct {
	common.Coordinate
	AddressName string `json:"address_name"`
	AddressType string `json:"address_type"`
}

type AddressSearchResponse struct {
	Meta      common.Meta       `json:"meta"`
	Documents []AddressDocument `json:"documents"`
}

type LocalEndpoint struct {
	transport *Transport
}

// SearchAddress resolves a free-form address.
func (ep *LocalEndpoint) SearchAddress(ctx context.Context, query string) (*AddressSearchResponse, error) {
	resp, err := ep.transport.Get(ctx, "/v2/local/search/address.json", map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	var result AddressSearchResponse
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
