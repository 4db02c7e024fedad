package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/internal/domain/utils/validator"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type sessionStorage interface {
	Set(ctx context.Context, token, userID string, expiration time.Duration) error
	Clear(ctx context.Context, token string) error
}

type AuthHandler struct {
	logger      *types.Logger
	users       *service.UserService
	memberships *service.MembershipService
	sessions    sessionStorage
	secret      []byte
	sessionTTL  time.Duration
}

func NewAuthHandler(logger *types.Logger, users *service.UserService, memberships *service.MembershipService, sessions sessionStorage, secret []byte, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		users:       users,
		memberships: memberships,
		sessions:    sessions,
		secret:      secret,
		sessionTTL:  sessionTTL,
	}
}

type signUpRequest struct {
	Name       string `json:"name" binding:"required"`
	Surname    string `json:"surname"`
	Email      string `json:"email" binding:"required"`
	NationalID string `json:"nationalId"`
	Password   string `json:"password" binding:"required"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !validator.Email(req.Email) {
		response.BadRequest(c, "email is not valid")
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), entity.User{
		Name:       req.Name,
		Surname:    req.Surname,
		Email:      req.Email,
		NationalID: req.NationalID,
	}, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.logger.Infof("new sign-up: %s", user.Email)
	c.JSON(http.StatusCreated, response.Success{Message: "account created, pending authorization"})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user, err = h.memberships.RecordLogin(c.Request.Context(), user.ID, location.Now()); err != nil {
		response.FromError(c, err)
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		h.logger.Errorf("failed to issue token for %s: %v", user.ID, err)
		response.FromError(c, err)
		return
	}
	if err = h.sessions.Set(c.Request.Context(), token, user.ID, h.sessionTTL); err != nil {
		h.logger.Errorf("failed to store session for %s: %v", user.ID, err)
		response.FromError(c, err)
		return
	}

	tier := service.ResolveAccess(true, roles(user), nil)
	c.JSON(http.StatusOK, response.Token{
		AccessToken: token,
		Landing:     service.DecideLanding(tier),
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := c.GetString("token")
	if err := h.sessions.Clear(c.Request.Context(), token); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "signed out"})
}

func (h *AuthHandler) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(h.sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

func roles(u *entity.User) []entity.Role {
	out := make([]entity.Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, entity.Role(r))
	}
	return out
}
