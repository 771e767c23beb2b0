package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/userdb/internal/common"
	"github.com/dmitrijs2005/userdb/internal/server/metrics"
	"github.com/dmitrijs2005/userdb/internal/server/models"
)

var internalErrorDetail = common.ErrorInternal.Error()

const (
	userNotFoundDetail      = "User not found"
	duplicateUsernameDetail = "Username already exists"
	wrongPasswordDetail     = "Incorrect password"
	invalidLoginDetail      = "Invalid username or password"
	registeredMessage       = "Registration successful"
)

type registerRequest struct {
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username *string `json:"username" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func toUserResponse(a *models.Account) userResponse {
	return userResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func writeError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, errorResponse{Detail: detail})
}

func (s *HTTPServer) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, internalErrorDetail)
}

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, messageResponse{Message: "pong"})
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	list, err := s.accounts.List(c.Request.Context())
	if err != nil {
		s.internalError(c, err)
		return
	}

	resp := make([]userResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toUserResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	account, err := s.accounts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			writeError(c, http.StatusNotFound, userNotFoundDetail)
			return
		}
		s.internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(account))
}

func (s *HTTPServer) createUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	account, err := s.accounts.Register(c.Request.Context(), *req.Username, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			s.metrics.Registration(metrics.RegistrationDuplicate)
			writeError(c, http.StatusBadRequest, duplicateUsernameDetail)
			return
		}
		s.metrics.Registration(metrics.RegistrationError)
		s.internalError(c, err)
		return
	}

	s.metrics.Registration(metrics.RegistrationCreated)
	s.logger.Info(c.Request.Context(), "Registered", "username", account.Username, "id", account.ID)
	c.JSON(http.StatusOK, messageResponse{Message: registeredMessage})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	username, err := s.accounts.Authenticate(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		s.metrics.Login(loginResult(err))
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(c, http.StatusUnauthorized, invalidLoginDetail)
		case errors.Is(err, common.ErrAccountNotFound):
			writeError(c, http.StatusNotFound, invalidLoginDetail)
		case errors.Is(err, common.ErrCredentialMismatch):
			writeError(c, http.StatusBadRequest, wrongPasswordDetail)
		default:
			s.internalError(c, err)
		}
		return
	}

	s.metrics.Login(metrics.LoginSuccess)
	c.JSON(http.StatusOK, messageResponse{Message: "Welcome, " + username + "!"})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, common.ErrAccountNotFound):
		return metrics.LoginNotFound
	case errors.Is(err, common.ErrCredentialMismatch):
		return metrics.LoginMismatch
	default:
		return metrics.LoginError
	}
}
