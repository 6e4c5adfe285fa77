package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cr3t"`
}

// LoginRequest accepts the OAuth2 password-form field names; username carries the email.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required" example:"alice@example.com"`
	Password string `form:"password" json:"password" binding:"required" example:"s3cr3t"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// bindOrBadRequest binds the body into dst using the request's content type
// and writes a 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errInvalidBody + err.Error()})
		return false
	}
	return true
}

// @Summary      Register
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "New user"
// @Success      201   {object}  models.User
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	user, err := h.services.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		h.log.Infow("auth_register_failed", "email", input.Email, "err", err)
		h.writeError(c, err, "auth_register_error")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      Login
// @Description  Accepts form-encoded or JSON credentials; username is the email.
// @Tags         users
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  TokenResponse
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Router       /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	if ok := h.bindOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_login_failed", "email", input.Username, "err", err)
		h.writeError(c, err, "auth_login_error")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
