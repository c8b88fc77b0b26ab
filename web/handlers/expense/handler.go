package expense

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/expense"
	web "hrdesk.co.kr/hrdesk/web/common"
)

type Endpoint struct {
	generator *expense.Generator
}

func Register(r *gin.RouterGroup, generator *expense.Generator) {
	endpoint := &Endpoint{generator: generator}
	r.GET("/expense_claim", endpoint.Claim)
	r.POST("/generate_expense_excel", endpoint.Generate)
}

type ClaimDTO struct {
	TripDate    string `form:"trip_date" json:"trip_date"`
	Origin      string `form:"origin" json:"origin"`
	Destination string `form:"destination" json:"destination"`
	CarNumber   string `form:"car_number" json:"car_number"`
	Purpose     string `form:"purpose" json:"purpose"`
	Location    string `form:"-" json:"location"`
}

// Claim echoes the prefill fields for the expense form. Location is left for the user.
func (ep *Endpoint) Claim(c *gin.Context) {
	var dto ClaimDTO
	if err := c.ShouldBindQuery(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	dto.Location = ""
	c.JSON(http.StatusOK, web.NewSuccessResponse(dto))
}

func (ep *Endpoint) Generate(c *gin.Context) {
	var req expense.Request
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Error during Excel generation: %s", web.FormatBindingError(err))
		return
	}
	req.UserID = web.UserID(c)

	report, err := ep.generator.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, expense.ErrInvalidRequest) {
			c.String(http.StatusBadRequest, "Error during Excel generation: %v", err)
			return
		}
		var notFound *expense.TemplateNotFoundError
		if errors.As(err, &notFound) {
			c.String(http.StatusInternalServerError, "Error: Template file '%s' not found at %s!", notFound.Name, notFound.Location)
			return
		}
		fmt.Printf("[ERROR] expense report for %s: %v\n", req.UserID, err)
		c.String(http.StatusInternalServerError, "Error during Excel generation: %v", err)
		return
	}

	c.Header("Content-Type", expense.ContentType)
	c.FileAttachment(report.Path, report.Filename)
}
