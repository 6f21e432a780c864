package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
	stats *services.StatsService
	loc   *time.Location
}

func NewUserController(users *services.UserService, stats *services.StatsService, loc *time.Location) *UserController {
	if loc == nil {
		loc = time.UTC
	}
	return &UserController{users: users, stats: stats, loc: loc}
}

// POST /api/users/register
func (uc *UserController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid registration payload", err)
		return
	}

	result, err := uc.users.Register(in)
	if err != nil {
		fail(c, err, "registration failed")
		return
	}
	utils.SendSuccess(c, http.StatusCreated, "registration successful", result)
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/users/login
func (uc *UserController) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid login payload", err)
		return
	}

	result, err := uc.users.Login(in.Email, in.Password)
	if err != nil {
		fail(c, err, "login failed")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "login successful", result)
}

// GET /api/users/me
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.users.Get(currentUserID(c))
	if err != nil {
		fail(c, err, "failed to fetch user")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "user fetched", user)
}

// PUT /api/users/me
func (uc *UserController) UpdateMe(c *gin.Context) {
	var in services.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid user payload", err)
		return
	}

	user, err := uc.users.Update(currentUserID(c), in)
	if err != nil {
		fail(c, err, "failed to update user")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "user updated", user)
}

// GET /api/users/stats?startDate=&endDate=
func (uc *UserController) Stats(c *gin.Context) {
	start, err := parseDateQuery(c.Query("startDate"), false, uc.loc)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid startDate", err)
		return
	}
	end, err := parseDateQuery(c.Query("endDate"), true, uc.loc)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "invalid endDate", err)
		return
	}

	stats, err := uc.stats.RangeStats(currentUserID(c), start, end)
	if err != nil {
		fail(c, err, "failed to compute stats")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "stats computed", stats)
}
