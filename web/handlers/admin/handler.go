package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/core/models"
	web "hrdesk.co.kr/hrdesk/web/common"
)

// ReportLister lists archived expense reports.
type ReportLister interface {
	List(ctx context.Context, prefix string) ([]string, error)
}

type Endpoint struct {
	directory *core.Directory
	local     *core.TripLedger
	outdoor   *core.TripLedger
	reports   ReportLister
}

// Register mounts the user and trip administration routes. r must already be
// restricted to administrators. reports may be nil.
func Register(r *gin.RouterGroup, store *core.FileStore, directory *core.Directory, reports ReportLister) {
	endpoint := &Endpoint{
		directory: directory,
		local:     core.NewTripLedger(store, models.LocalTrip),
		outdoor:   core.NewTripLedger(store, models.OutdoorTrip),
		reports:   reports,
	}
	r.GET("/admin_dashboard", endpoint.Dashboard)
	r.GET("/admin_trips", endpoint.Trips)
	r.POST("/admin_trips", endpoint.SaveUser)
	r.POST("/delete_user", endpoint.DeleteUser)
	r.POST("/delete_local_trip", endpoint.deleteTrip(endpoint.local))
	r.POST("/delete_outdoor_trip", endpoint.deleteTrip(endpoint.outdoor))
	r.GET("/admin_expense_reports", endpoint.ExpenseReports)
}

type DashboardDTO struct {
	Users        int `json:"users"`
	LocalTrips   int `json:"localTrips"`
	OutdoorTrips int `json:"outdoorTrips"`
}

func (ep *Endpoint) Dashboard(c *gin.Context) {
	users, err := ep.directory.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	local, err := ep.local.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	outdoor, err := ep.outdoor.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(DashboardDTO{
		Users:        len(users),
		LocalTrips:   len(local),
		OutdoorTrips: len(outdoor),
	}))
}

type TripsDTO struct {
	Users        []models.User     `json:"users"`
	LocalTrips   []models.TripView `json:"localTrips"`
	OutdoorTrips []models.TripView `json:"outdoorTrips"`
}

func (ep *Endpoint) Trips(c *gin.Context) {
	users, err := ep.directory.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	local, err := ep.local.Views(ep.directory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	outdoor, err := ep.outdoor.Views(ep.directory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(TripsDTO{Users: users, LocalTrips: local, OutdoorTrips: outdoor}))
}

type UserDTO struct {
	UserID     string `form:"user_id" json:"user_id" binding:"required"`
	Name       string `form:"username" json:"username"`
	Password   string `form:"password" json:"password"`
	Department string `form:"department" json:"department"`
	Workplace  string `form:"workplace" json:"workplace"`
	Position   string `form:"position" json:"position"`
	Email      string `form:"email" json:"email" binding:"omitempty,email"`
}

func (ep *Endpoint) SaveUser(c *gin.Context) {
	var dto UserDTO
	if err := c.ShouldBind(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	user := models.User{
		ID:         dto.UserID,
		Name:       dto.Name,
		Password:   dto.Password,
		Department: dto.Department,
		Workplace:  dto.Workplace,
		Position:   dto.Position,
		Email:      dto.Email,
	}
	if err := ep.directory.Upsert(user); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	saved, err := ep.directory.Find(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(saved))
}

type DeleteUserDTO struct {
	UserID string `form:"user_id" json:"user_id" binding:"required"`
}

func (ep *Endpoint) DeleteUser(c *gin.Context) {
	var dto DeleteUserDTO
	if err := c.ShouldBind(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	if err := ep.directory.Delete(dto.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{}))
}

type DeleteTripDTO struct {
	SubmitTime string `form:"submit_time" json:"submit_time" binding:"required"`
}

func (ep *Endpoint) deleteTrip(ledger *core.TripLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto DeleteTripDTO
		if err := c.ShouldBind(&dto); err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
			return
		}

		count, err := ledger.DeleteBySubmitTime(dto.SubmitTime)
		if err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"deleted": count}))
	}
}

func (ep *Endpoint) ExpenseReports(c *gin.Context) {
	if ep.reports == nil {
		c.JSON(http.StatusOK, web.NewSearchResponse([]string{}, 0))
		return
	}

	keys, err := ep.reports.List(c.Request.Context(), "expense_report_")
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, web.NewSearchResponse(keys, int64(len(keys))))
}
