package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/pkg/resp"
	"github.com/vinaytz/theSkFoodBackend/services"
	"github.com/vinaytz/theSkFoodBackend/utils"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc          *services.AuthService
	CookieMaxAge int
}

func NewAuthController(svc *services.AuthService, cookieMaxAge int) *AuthController {
	return &AuthController{Svc: svc, CookieMaxAge: cookieMaxAge}
}

func (a *AuthController) setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, a.CookieMaxAge, "/", "", false, true)
}

// POST /userAuth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !utils.ValidEmail(req.Email) {
		resp.BadRequest(c, "please enter a valid email")
		return
	}
	if !utils.StrongPassword(req.Password) {
		resp.BadRequest(c, "please enter a strong password")
		return
	}

	token, _, err := a.Svc.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	a.setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"message": "user created successfully", "token": token})
}

// POST /userAuth/login
func (a *AuthController) Login(c *gin.Context) {
	a.login(c, false)
}

// POST /admin/login
func (a *AuthController) AdminLogin(c *gin.Context) {
	a.login(c, true)
}

func (a *AuthController) login(c *gin.Context, requireAdmin bool) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !utils.ValidEmail(req.Email) {
		resp.BadRequest(c, "please enter a valid email")
		return
	}

	token, _, err := a.Svc.Login(req.Email, req.Password, requireAdmin)
	if err != nil {
		if errors.Is(err, services.ErrNotAdmin) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.BadRequest(c, services.ErrInvalidCredentials.Error())
		return
	}

	a.setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": token})
}

// GET /userAuth/profile
func (a *AuthController) Profile(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": user.Name, "email": user.Email, "picture": user.Picture})
}

// PATCH /userAuth/addresses
func (a *AuthController) SaveAddresses(c *gin.Context) {
	var body struct {
		SavedAddresses []entity.Address `json:"savedAddresses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Svc.SaveAddresses(utils.CurrentUserID(c), body.SavedAddresses); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, body.SavedAddresses)
}

// POST /userAuth/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logout successfully"})
}
