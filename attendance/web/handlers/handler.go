package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	attendance "hrdesk.co.kr/hrdesk/attendance/core"
	"hrdesk.co.kr/hrdesk/utils"
	web "hrdesk.co.kr/hrdesk/web/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Endpoint struct {
	service *attendance.Service
}

// Register mounts the attendance administration routes. r must already be
// restricted to administrators.
func Register(r *gin.RouterGroup, service *attendance.Service) {
	endpoint := &Endpoint{service: service}
	r.GET("/admin_attendance", endpoint.View)
	r.POST("/admin_attendance", endpoint.Upload)
	r.POST("/admin_attendance/approve", endpoint.Approve)
	r.POST("/admin_attendance/approve_all", endpoint.ApproveAll)
	r.POST("/admin_attendance/delete", endpoint.Delete)
	r.POST("/admin_attendance/delete_all", endpoint.DeleteAll)
	r.GET("/generate_attendance_excel", endpoint.Export)
}

type ViewParams struct {
	StartDate web.DateOnly `form:"start_date"`
	EndDate   web.DateOnly `form:"end_date"`
}

func (ep *Endpoint) View(c *gin.Context) {
	var params ViewParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	view, err := ep.service.View(attendance.DateRange{Start: params.StartDate.String(), End: params.EndDate.String()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(view))
}

func (ep *Endpoint) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(attendance.ErrUnsupportedFile.Error()))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		return
	}
	defer file.Close()

	summary, err := ep.service.Import(header.Filename, file)
	if err != nil {
		if errors.Is(err, attendance.ErrUnsupportedFile) || errors.Is(err, attendance.ErrMissingColumns) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, summary)
}

type RecordParams struct {
	EmployeeID string `form:"employee_id" json:"employee_id" binding:"required"`
	Date       string `form:"date" json:"date" binding:"required"`
}

type ScopeParams struct {
	Location   string `form:"loc" json:"loc"`
	Department string `form:"dept" json:"dept"`
}

func (ep *Endpoint) Approve(c *gin.Context) {
	var params RecordParams
	if err := c.ShouldBind(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	appended, err := ep.service.Approve(params.EmployeeID, params.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"approved": appended}))
}

func (ep *Endpoint) ApproveAll(c *gin.Context) {
	var params ScopeParams
	if err := c.ShouldBind(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	count, err := ep.service.ApproveAll(params.Location, params.Department)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"approved": count}))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	var params RecordParams
	if err := c.ShouldBind(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	count, err := ep.service.Delete(params.EmployeeID, params.Date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("데이터 삭제 실패: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"deleted": count}))
}

func (ep *Endpoint) DeleteAll(c *gin.Context) {
	var params ScopeParams
	if err := c.ShouldBind(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	count, err := ep.service.DeleteDepartment(params.Location, params.Department)
	if err != nil {
		if errors.Is(err, attendance.ErrScopeRequired) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("전체 삭제 실패: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"deleted": count}))
}

func (ep *Endpoint) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := ep.service.ExportApproved(&buf); err != nil {
		if errors.Is(err, attendance.ErrNoAttendance) || errors.Is(err, attendance.ErrNoApproved) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse("엑셀 생성 오류: "+err.Error()))
		return
	}

	filename := fmt.Sprintf("approved_attendance_%s.xlsx", utils.SeoulNow().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
