package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/yungbote/englishai-backend/internal/http/response"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
		return
	}
	user, err := ah.authService.RegisterUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, user)
}

// Token implements the OAuth2 password grant. The username field carries the email and
// may be sent as a form or as JSON.
func (ah *AuthHandler) Token(c *gin.Context) {
	var req struct {
		Username string `form:"username" json:"username" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}
	b := binding.Form
	if strings.HasPrefix(c.ContentType(), binding.MIMEJSON) {
		b = binding.JSON
	}
	if err := c.ShouldBindWith(&req, b); err != nil {
		response.RespondError(c, http.StatusBadRequest, apierr.CodeInvalidArgument, err)
		return
	}
	accessToken, err := ah.authService.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"access_token": accessToken,
		"token_type":   "bearer",
		"expires_in":   int(ah.authService.GetAccessTTL().Seconds()),
	})
}
