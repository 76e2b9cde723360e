package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
	"github.com/Timomoulin/Todo0/internal/adapter/http/mapper"
	"github.com/Timomoulin/Todo0/internal/adapter/http/middleware"
	"github.com/Timomoulin/Todo0/internal/adapter/http/validation"
	"github.com/Timomoulin/Todo0/internal/adapter/security"
	"github.com/Timomoulin/Todo0/internal/core/domain"
	"github.com/Timomoulin/Todo0/internal/core/ports"
	"github.com/Timomoulin/Todo0/pkg/apierrors"
)

const (
	ProfilePath       = "/todoapp/profil"
	AdminProfilePath  = "/todoapp/admin/profil"
	loginErrorPath    = middleware.LoginPath + "?error=true"
	logoutSuccessPath = middleware.LoginPath + "?logout=true"
)

type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
	sessions    *security.SessionCodec
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService, sessions *security.SessionCodec) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, sessions: sessions}
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	_, loginError := c.GetQuery("error")
	_, loggedOut := c.GetQuery("logout")

	render(c, http.StatusOK, "login.tmpl", "loginTitle", gin.H{
		"LoginError": loginError,
		"LoggedOut":  loggedOut,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, loginErrorPath)
		return
	}

	principal, err := h.authService.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			zap.L().Error("authentication failed", zap.Error(err))
		}
		c.Redirect(http.StatusFound, loginErrorPath)
		return
	}

	if err := middleware.StartSession(c, h.sessions, principal); err != nil {
		zap.L().Error("failed to start session", zap.Error(err))
		renderError(c, http.StatusInternalServerError, apierrors.MsgInternalError)
		return
	}

	c.Redirect(http.StatusFound, ProfilePath)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, logoutSuccessPath)
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.tmpl", "registerTitle", gin.H{
		"Form": dto.RegistrationForm{},
	})
}

// Register re-renders the form with every field error, or creates the
// account and sends the visitor to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, apierrors.MsgInvalidForm)
		return
	}

	_, err := h.userService.Register(c.Request.Context(), validation.BuildRegistration(form))
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			form.Password = ""
			form.PasswordConfirmation = ""
			render(c, http.StatusOK, "register.tmpl", "registerTitle", gin.H{
				"Form":   form,
				"Errors": mapper.ToFieldMessages(verrs, middleware.GetLang(c)),
			})
			return
		}
		handleServiceError(c, err, "failed to register user")
		return
	}

	redirectWithFlash(c, middleware.LoginPath, "registrationSucceeded", "")
}
