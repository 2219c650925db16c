package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/pkg/resp"
	"github.com/TheLiloji/UberV3-sub000/services"
	"github.com/TheLiloji/UberV3-sub000/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc       *services.AuthService
	UploadDir string
}

func NewAuthController(svc *services.AuthService, uploadDir string) *AuthController {
	return &AuthController{Svc: svc, UploadDir: uploadDir}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "firstName": u.FirstName,
		"lastName": u.LastName, "avatarUrl": u.AvatarURL,
	}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.FirstName, req.LastName, req.AvatarURL)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, userJSON(user))
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userJSON(user),
	})
}

// GET /api/auth/profile
func (a *AuthController) Profile(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}

// PUT /api/auth/account (multipart; text fields plus an optional avatar file)
func (a *AuthController) UpdateAccount(c *gin.Context) {
	updates := map[string]any{}
	if v := c.PostForm("firstName"); v != "" {
		updates["first_name"] = v
	}
	if v := c.PostForm("lastName"); v != "" {
		updates["last_name"] = v
	}
	if v := c.PostForm("email"); v != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(v))
	}

	if fh, err := c.FormFile("avatar"); err == nil {
		url, err := utils.SaveUpload(c, fh, a.UploadDir)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		updates["avatar_url"] = url
	}

	user, err := a.Svc.UpdateAccount(utils.CurrentUserID(c), updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, userJSON(user))
}
