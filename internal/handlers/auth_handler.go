package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kvartirnik/house-booking/internal/config"
	"github.com/kvartirnik/house-booking/internal/dto"
	"github.com/kvartirnik/house-booking/internal/httperr"
	"github.com/kvartirnik/house-booking/internal/httpresp"
	"github.com/kvartirnik/house-booking/internal/middleware"
	"github.com/kvartirnik/house-booking/internal/models"
	ucUser "github.com/kvartirnik/house-booking/internal/usecase/user"
)

type AuthHandler struct {
	users  ucUser.Repository
	create *ucUser.CreateUser
	find   *ucUser.FindUserByPhone
	config *config.Config
}

func NewAuthHandler(
	users ucUser.Repository,
	create *ucUser.CreateUser,
	find *ucUser.FindUserByPhone,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		users:  users,
		create: create,
		find:   find,
		config: cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing required fields: email, name, phone, password")
		return
	}

	user, err := h.create.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"success": true,
		"user":    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "missing credentials")
		return
	}

	user, err := h.find.Execute(c.Request.Context(), req.Phone)
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}
	if user == nil {
		httperr.Unauthorized(c, "invalid_credentials", "missing credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "missing credentials")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Internal server error")
		return
	}

	httpresp.OK(c, gin.H{
		"user":  dto.NewUserDTO(user),
		"token": token,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Unauthorized(c, "unauthorized", "Unauthorized")
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	// Stateless tokens: the client drops the token, we acknowledge.
	httpresp.OK(c, gin.H{"message": "Logged out successfully"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"phone": user.Phone,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
