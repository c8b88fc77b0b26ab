package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"hrdesk.co.kr/hrdesk/core"
	"hrdesk.co.kr/hrdesk/security"
	web "hrdesk.co.kr/hrdesk/web/common"
	"hrdesk.co.kr/hrdesk/web/middlewares"
)

const LoginFailed = "로그인 실패"

type Endpoint struct {
	directory *core.Directory
	secret    []byte
	ttl       time.Duration
}

// Register mounts login and logout on public and the session probe on protected.
func Register(public *gin.RouterGroup, protected *gin.RouterGroup, directory *core.Directory, secret []byte, ttl time.Duration) {
	endpoint := &Endpoint{directory: directory, secret: secret, ttl: ttl}
	public.POST("/login", endpoint.Login)
	public.GET("/logout", endpoint.Logout)
	protected.GET("/", endpoint.Index)
}

type LoginDTO struct {
	UserID   string `form:"user_id" json:"user_id" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type SessionDTO struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"token,omitempty"`
	Redirect string `json:"redirect"`
}

func redirectFor(isAdmin bool) string {
	if isAdmin {
		return "/admin_dashboard"
	}
	return "/"
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBind(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	user, err := ep.directory.Authenticate(dto.UserID, dto.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if user == nil {
		fmt.Printf("[INFO] login failed for %s\n", dto.UserID)
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse(LoginFailed))
		return
	}

	token, err := security.CreateSessionToken(security.Identity{UserID: user.ID, RealName: user.Name}, ep.secret, ep.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, int(ep.ttl.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, web.NewSuccessResponse(SessionDTO{
		UserID:   user.ID,
		Name:     user.Name,
		IsAdmin:  user.IsAdmin(),
		Token:    token,
		Redirect: redirectFor(user.IsAdmin()),
	}))
}

func (ep *Endpoint) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"redirect": "/login"}))
}

func (ep *Endpoint) Index(c *gin.Context) {
	claims := web.Claims(c)
	c.JSON(http.StatusOK, web.NewSuccessResponse(SessionDTO{
		UserID:   claims.UserID,
		Name:     claims.RealName,
		IsAdmin:  claims.IsAdmin(),
		Redirect: redirectFor(claims.IsAdmin()),
	}))
}
