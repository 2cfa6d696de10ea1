package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WahidMubarrat/CarBhara/internal/auth"
	"github.com/WahidMubarrat/CarBhara/internal/identity"
	"github.com/WahidMubarrat/CarBhara/internal/pkg/response"
)

type Handler struct {
	service    identity.Service
	jwtManager *auth.JWTManager
}

func NewHandler(service identity.Service, jwtManager *auth.JWTManager) *Handler {
	return &Handler{
		service:    service,
		jwtManager: jwtManager,
	}
}

//
// POST /api/auth/signup
//

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing required fields"})
		return
	}

	profile, err := h.service.SignUp(c.Request.Context(), identity.SignUpRequest{
		Role:           auth.Role(req.Role),
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Age:            req.Age,
		Address:        req.Address,
		Phone:          req.Phone,
		CompanyName:    req.CompanyName,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, response.Envelope{
		"message": "signup successful",
		"user":    NewUserResponse(profile),
	})
}

//
// POST /api/auth/signin
//

func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide email and password"})
		return
	}

	profile, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(auth.Principal{
		ID:    profile.ID,
		Role:  profile.Role,
		Email: profile.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"message": "login successful",
		"user":    NewUserResponse(profile),
		"token":   token,
	})
}

//
// GET /api/users/profile
//

func (h *Handler) GetProfile(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"user": NewUserResponse(profile),
	})
}

//
// PUT /api/users/profile
//

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "please provide all required fields"})
		return
	}

	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), p, identity.UpdateProfileRequest{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Address:     req.Address,
		Age:         req.Age,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, response.Envelope{
		"message": "profile updated successfully",
		"user":    NewUserResponse(profile),
	})
}
