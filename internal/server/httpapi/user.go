package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/server/services"
	"github.com/gin-gonic/gin"
)

// statusInvalidInput is what the user routes answer for bad or rejected input.
const statusInvalidInput = http.StatusLengthRequired

type SignupRequest struct {
	UserName  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SigninRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateProfileRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type UserView struct {
	ID        string `json:"_id"`
	UserName  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (s *Server) signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(statusInvalidInput, gin.H{"message": "Invalid inputs or email format"})
		return
	}

	user, pair, err := s.users.Signup(c.Request.Context(), services.SignupInput(req))
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorValidation):
		c.JSON(statusInvalidInput, gin.H{"message": "Invalid inputs or email format"})
		return
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(statusInvalidInput, gin.H{"message": "Email already taken"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error while signing up"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User created successfully",
		"userId":       user.ID,
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *Server) signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(statusInvalidInput, gin.H{"message": "Invalid inputs or email format"})
		return
	}

	pair, err := s.users.Signin(c.Request.Context(), services.SigninInput(req))
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorValidation):
		c.JSON(statusInvalidInput, gin.H{"message": "Invalid inputs or email format"})
		return
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(statusInvalidInput, gin.H{"message": "Invalid username or password"})
		return
	default:
		c.JSON(statusInvalidInput, gin.H{"message": "Error while logging in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Logged in successfully",
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *Server) refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	pair, err := s.users.RefreshToken(c.Request.Context(), req.RefreshToken)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "token expired"})
		return
	case errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	default:
		s.logger.Error(c.Request.Context(), "refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *Server) updateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(statusInvalidInput, gin.H{"message": "Error while updating information"})
		return
	}

	err := s.users.UpdateProfile(c.Request.Context(), c.GetString(userIDKey), services.UpdateProfileInput(req))
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorNotFound):
		c.JSON(statusInvalidInput, gin.H{"message": "Error while updating information"})
		return
	default:
		s.logger.Error(c.Request.Context(), "profile update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated successfully"})
}

func (s *Server) findUsers(c *gin.Context) {
	found, err := s.users.FindUsers(c.Request.Context(), c.Query("filter"))
	if err != nil {
		s.logger.Error(c.Request.Context(), "user search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	views := make([]UserView, 0, len(found))
	for _, u := range found {
		views = append(views, UserView{ID: u.ID, UserName: u.UserName, FirstName: u.FirstName, LastName: u.LastName})
	}
	c.JSON(http.StatusOK, gin.H{"users": views})
}
