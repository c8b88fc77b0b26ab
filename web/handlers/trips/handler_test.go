package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/core/models"
	"hrdesk.co.kr/hrdesk/distance"
	"hrdesk.co.kr/hrdesk/security"
	web "hrdesk.co.kr/hrdesk/web/common"
)

type routes map[string]string

func (r routes) TollDistance(ctx context.Context, origin, destination string) string {
	if d, ok := r[origin+">"+destination]; ok {
		return d
	}
	return distance.AddressFailure
}

func setup(t *testing.T, userID string) (*gin.Engine, *core.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := core.NewFileStore(t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	group := r.Group("/", func(c *gin.Context) {
		c.Set(web.ClaimsKey, &security.SessionClaims{Identity: security.Identity{UserID: userID}})
	})
	Register(group, store, routes{"논산IC>서울IC": "152.37 km", "A>B": distance.DistanceFailure})
	return r, store
}

func submit(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmit(t *testing.T) {
	r, store := setup(t, "E100")

	tests := []struct {
		name   string
		path   string
		form   url.Values
		status int
		errMsg string
	}{
		{
			name:   "local trip",
			path:   "/local_trip",
			form:   url.Values{"trip_date": {"2025-03-02"}, "origin": {"논산IC"}, "destination": {"서울IC"}, "car_number": {"12가3456"}},
			status: http.StatusCreated,
		},
		{
			name:   "missing destination",
			path:   "/outdoor_trip",
			form:   url.Values{"origin": {"논산IC"}},
			status: http.StatusBadRequest,
			errMsg: MissingEndpoints,
		},
		{
			name:   "geocode failure",
			path:   "/outdoor_trip",
			form:   url.Values{"origin": {"어딘가"}, "destination": {"서울IC"}},
			status: http.StatusUnprocessableEntity,
			errMsg: distance.AddressFailure,
		},
		{
			name:   "route failure",
			path:   "/outdoor_trip",
			form:   url.Values{"origin": {"A"}, "destination": {"B"}},
			status: http.StatusUnprocessableEntity,
			errMsg: distance.DistanceFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submit(r, tt.path, tt.form)
			require.Equal(t, tt.status, rec.Code)
			if tt.errMsg != "" {
				assert.Contains(t, rec.Body.String(), tt.errMsg)
			}
		})
	}

	local, err := core.NewTripLedger(store, models.LocalTrip).List()
	require.NoError(t, err)
	require.Len(t, local, 1)
	assert.Equal(t, "E100", local[0].UserID)
	assert.Equal(t, "152.37 km", local[0].Distance)
	assert.Len(t, local[0].SubmittedAt, len("2006-01-02 15:04:05"))

	outdoor, err := core.NewTripLedger(store, models.OutdoorTrip).List()
	require.NoError(t, err)
	assert.Empty(t, outdoor)
}

func TestListOwnTrips(t *testing.T) {
	r, store := setup(t, "E100")
	ledger := core.NewTripLedger(store, models.OutdoorTrip)
	for _, trip := range []models.Trip{
		{UserID: "E100", SubmittedAt: "2025-03-02 09:00:00", TripDate: "2025-03-02"},
		{UserID: "E200", SubmittedAt: "2025-03-02 09:10:00", TripDate: "2025-03-02"},
		{UserID: "E100", SubmittedAt: "2025-03-03 09:00:00", TripDate: "2025-03-03"},
	} {
		require.NoError(t, ledger.Append(trip))
	}

	tests := []struct {
		query string
		count int
	}{
		{query: "", count: 2},
		{query: "?filter_date=2025-03-03", count: 1},
		{query: "?filter_date=2025-03-09", count: 0},
	}
	for _, tt := range tests {
		t.Run("filter"+tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/outdoor_trip"+tt.query, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data       []models.Trip  `json:"data"`
				Pagination web.Pagination `json:"pagination"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body.Data, tt.count)
			assert.EqualValues(t, tt.count, body.Pagination.Total)
		})
	}
}
