package trips

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/core/models"
	"hrdesk.co.kr/hrdesk/distance"
	"hrdesk.co.kr/hrdesk/utils"
	web "hrdesk.co.kr/hrdesk/web/common"
)

const MissingEndpoints = "출발지와 목적지를 모두 입력해주세요."

type DistanceCalculator interface {
	TollDistance(ctx context.Context, origin, destination string) string
}

type Endpoint struct {
	ledger   *core.TripLedger
	distance DistanceCalculator
}

// Register mounts /local_trip and /outdoor_trip.
func Register(r *gin.RouterGroup, store *core.FileStore, calculator DistanceCalculator) {
	for _, kind := range []models.TripKind{models.LocalTrip, models.OutdoorTrip} {
		endpoint := &Endpoint{ledger: core.NewTripLedger(store, kind), distance: calculator}
		path := "/" + string(kind) + "_trip"
		r.GET(path, endpoint.List)
		r.POST(path, endpoint.Submit)
	}
}

type ListParams struct {
	FilterDate string `form:"filter_date"`
}

func (ep *Endpoint) List(c *gin.Context) {
	var params ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	trips, err := ep.ledger.ListByUser(web.UserID(c), params.FilterDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(trips, int64(len(trips))))
}

type TripDTO struct {
	TripDate      string `form:"trip_date" json:"trip_date"`
	DepartureTime string `form:"departure_time" json:"departure_time"`
	Origin        string `form:"origin" json:"origin"`
	CarNumber     string `form:"car_number" json:"car_number"`
	Purpose       string `form:"purpose" json:"purpose"`
	Destination   string `form:"destination" json:"destination"`
}

func (ep *Endpoint) Submit(c *gin.Context) {
	var dto TripDTO
	if err := c.ShouldBind(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	if dto.Origin == "" || dto.Destination == "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(MissingEndpoints))
		return
	}

	result := ep.distance.TollDistance(c.Request.Context(), dto.Origin, dto.Destination)
	if distance.IsFailure(result) {
		c.JSON(http.StatusUnprocessableEntity, web.NewErrorResponse(result))
		return
	}

	trip := models.Trip{
		UserID:        web.UserID(c),
		SubmittedAt:   utils.SeoulNow().Format(utils.DateTimeLayout),
		TripDate:      dto.TripDate,
		DepartureTime: dto.DepartureTime,
		Origin:        dto.Origin,
		CarNumber:     dto.CarNumber,
		Purpose:       dto.Purpose,
		Destination:   dto.Destination,
		Distance:      result,
	}
	if err := ep.ledger.Append(trip); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(trip))
}
