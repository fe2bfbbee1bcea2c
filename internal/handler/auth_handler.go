package handler

import (
	"net/http"
	"time"

	"gamewish/internal/dto"
	"gamewish/internal/middleware"
	"gamewish/internal/service"
	"gamewish/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	store       session.Store
	sessionTTL  time.Duration
}

func NewAuthHandler(authService service.AuthService, store session.Store, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		sessionTTL:  sessionTTL,
	}
}

// Main renders the landing page. The menu varies with the identity the
// optional session middleware may have attached.
func (h *AuthHandler) Main(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", gin.H{
		"username": c.GetString(middleware.CtxUsername),
		"isAdmin":  c.GetString(middleware.CtxRole) == "admin",
	})
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{"form": dto.RegisterForm{}})
}

// Register validates the registration form and creates an account with
// the default user role, then redirects to the main page.
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"error": "Please fill in all fields correctly.",
			"form":  form,
		})
		return
	}

	_, err := h.authService.Register(form.Username, form.Password, form.FirstName, form.LastName, form.Email)
	if err == service.ErrNameInUse || err == service.ErrEmailInUse {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"error": "Account creation failed",
			"form":  form,
		})
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "register.html", gin.H{
			"error": "Something went wrong, please try again.",
			"form":  form,
		})
		return
	}

	c.Redirect(http.StatusFound, "/main/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login verifies the credentials, establishes a session and sets the
// cookie. Any failure redirects back to the login form.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	user, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	sess, err := h.store.Create(c.Request.Context(), user.ID, user.Username, user.Role)
	if err != nil {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	c.SetCookie(middleware.CookieName, sess.Token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/main/")
}

// Logout destroys the active session and clears the cookie. The route
// sits behind RequireSession, so a logged-out visitor never reaches it.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if err := h.store.Destroy(c.Request.Context(), token); err != nil {
		c.HTML(http.StatusInternalServerError, "logout.html", gin.H{"error": "Logout failed, please retry."})
		return
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
	c.HTML(http.StatusOK, "logout.html", gin.H{})
}

func (h *AuthHandler) ShowChangePassword(c *gin.Context) {
	if c.Param("id") != c.GetString(middleware.CtxUserID) {
		c.HTML(http.StatusForbidden, "forbidden.html", gin.H{})
		return
	}
	c.HTML(http.StatusOK, "change_password.html", gin.H{})
}

// ChangePassword updates the session user's credential. The two form
// fields must match; on mismatch the form is re-rendered with an error.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	if c.Param("id") != userID {
		c.HTML(http.StatusForbidden, "forbidden.html", gin.H{})
		return
	}

	var form dto.ChangePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "change_password.html", gin.H{
			"error": "Passwords are not the same!",
		})
		return
	}

	if err := h.authService.ChangePassword(userID, form.Password1); err != nil {
		c.HTML(http.StatusInternalServerError, "change_password.html", gin.H{
			"error": "Could not change password, please retry.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/main/")
}
