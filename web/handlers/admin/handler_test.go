package admin

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
)

type staticReports []string

func (s staticReports) List(ctx context.Context, prefix string) ([]string, error) {
	return s, nil
}

func setup(t *testing.T, reports ReportLister) (*gin.Engine, *core.FileStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := core.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.WriteRows(core.UsersFile, [][]string{
		{"admin", "관리자", "admin123", "관리팀", "논산", "팀장", "", ""},
		{"E100", "김철수", "pw", "영업부", "대전", "사원", "", ""},
	}))
	local := core.NewTripLedger(store, models.LocalTrip)
	require.NoError(t, local.Append(models.Trip{UserID: "E100", SubmittedAt: "2025-03-02 09:00:00", Origin: "논산", Destination: "대전"}))
	require.NoError(t, local.Append(models.Trip{UserID: "E404", SubmittedAt: "2025-03-02 10:00:00"}))

	r := gin.New()
	Register(r.Group("/"), store, core.NewDirectory(store), reports)
	return r, store
}

func post(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTripsShowsSubmitterNames(t *testing.T) {
	r, _ := setup(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin_trips", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data TripsDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Users, 2)
	require.Len(t, body.Data.LocalTrips, 2)
	assert.Equal(t, "김철수", body.Data.LocalTrips[0].Name)
	assert.Equal(t, "E404", body.Data.LocalTrips[1].Name)
	assert.Empty(t, body.Data.OutdoorTrips)
	assert.NotContains(t, rec.Body.String(), "admin123")
}

func TestUserManagement(t *testing.T) {
	r, store := setup(t, nil)
	directory := core.NewDirectory(store)

	rec := post(r, "/admin_trips", url.Values{
		"user_id": {"E100"}, "username": {"김철수"}, "password": {"new"},
		"department": {"생산부"}, "workplace": {"수원"}, "email": {"kim@hrdesk.co.kr"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	user, err := directory.Find("E100")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "생산부", user.Department)
	assert.Equal(t, "new", user.Password)
	assert.NotEmpty(t, user.RegisteredAt)

	rec = post(r, "/admin_trips", url.Values{"user_id": {"E101"}, "email": {"not-an-email"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(r, "/delete_user", url.Values{"user_id": {"E100"}})
	require.Equal(t, http.StatusOK, rec.Code)
	user, err = directory.Find("E100")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestDeleteTrip(t *testing.T) {
	r, store := setup(t, nil)

	rec := post(r, "/delete_local_trip", url.Values{"submit_time": {"2025-03-02 09:00:00"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"deleted":1}}`, rec.Body.String())

	rec = post(r, "/delete_outdoor_trip", url.Values{"submit_time": {"2025-03-02 09:00:00"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"deleted":0}}`, rec.Body.String())

	rec = post(r, "/delete_local_trip", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	trips, err := core.NewTripLedger(store, models.LocalTrip).List()
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "E404", trips[0].UserID)
}

func TestDashboardAndReports(t *testing.T) {
	r, _ := setup(t, staticReports{"expense_report_E100_2025-03-02.xlsx"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin_dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"users":2,"localTrips":2,"outdoorTrips":0}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin_expense_reports", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["expense_report_E100_2025-03-02.xlsx"],"pagination":{"total":1}}`, rec.Body.String())
}
