package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/response"
	"github.com/ironclub/gym-server/internal/domain/entity"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/internal/domain/utils/location"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type UserHandler struct {
	logger *types.Logger
	users  *service.UserService
}

func NewUserHandler(logger *types.Logger, users *service.UserService) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

type userView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Surname    string   `json:"surname"`
	Email      string   `json:"email"`
	NationalID string   `json:"nationalId,omitempty"`
	Roles      []string `json:"roles"`
	Authorized bool     `json:"authorized"`
	ExpiryDate string   `json:"expiryDate,omitempty"`
	Membership string   `json:"membership"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:         u.ID,
		Name:       u.Name,
		Surname:    u.Surname,
		Email:      u.Email,
		NationalID: u.NationalID,
		Roles:      append([]string{}, u.Roles...),
		Authorized: u.Authorized,
		ExpiryDate: u.ExpiryDate,
		Membership: string(service.MembershipState(u, location.Now())),
	}
}

// Me returns the signed-in user's own profile with the derived
// membership status.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserView(user))
}

// List returns member records for the admin directory. Decayed records
// are hidden unless includeHidden is set.
func (h *UserHandler) List(c *gin.Context) {
	includeHidden, _ := strconv.ParseBool(c.Query("includeHidden"))
	users, err := h.users.Visible(c.Request.Context(), location.Now(), includeHidden)
	if err != nil {
		response.FromError(c, err)
		return
	}

	views := make([]userView, 0, len(users))
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserView(user))
}

type updateUserRequest struct {
	Name       string   `json:"name"`
	Surname    string   `json:"surname"`
	NationalID string   `json:"nationalId"`
	Roles      []string `json:"roles"`
	ExpiryDate string   `json:"expiryDate"`
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Surname != "" {
		user.Surname = req.Surname
	}
	if req.NationalID != "" {
		user.NationalID = req.NationalID
	}
	if req.Roles != nil {
		user.Roles = req.Roles
	}
	if req.ExpiryDate != "" {
		user.ExpiryDate = req.ExpiryDate
	}

	updated, err := h.users.Update(c.Request.Context(), user)
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserView(updated))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Message: "user deleted"})
}

// ToggleAuthorized flips the manual booking/attendance gate on a member.
func (h *UserHandler) ToggleAuthorized(c *gin.Context) {
	user, err := h.users.ToggleAuthorized(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.logger.Infof("user %s authorized=%t", user.ID, user.Authorized)
	c.JSON(http.StatusOK, newUserView(user))
}
