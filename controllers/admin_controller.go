package controllers

import (
	"errors"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/pkg/resp"
	"github.com/vinaytz/theSkFoodBackend/services"
)

type AdminController struct {
	Menus     *services.MenuService
	Orders    *services.OrderService
	UploadDir string
}

func NewAdminController(menus *services.MenuService, orders *services.OrderService, uploadDir string) *AdminController {
	return &AdminController{Menus: menus, Orders: orders, UploadDir: uploadDir}
}

type CreateMealRequest struct {
	MealType     string         `json:"mealType" binding:"required"`
	BasePrice    int64          `json:"basePrice"`
	ListOfSabjis []entity.Sabji `json:"listOfSabjis" binding:"required"`
	IsNewMeal    bool           `json:"isNewMeal"`
}

// PUT /admin/createMeal
func (h *AdminController) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := h.Menus.CreateMeal(req.MealType, req.BasePrice, req.ListOfSabjis, req.IsNewMeal)
	if err != nil {
		if errors.Is(err, services.ErrBadMealType) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /admin/menuHistoryLog
func (h *AdminController) MenuHistoryLog(c *gin.Context) {
	log, err := h.Menus.HistoryLog()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, log)
}

// POST /admin/imageUpload
func (h *AdminController) ImageUpload(c *gin.Context) {
	file, err := c.FormFile("imageFile")
	if err != nil {
		resp.BadRequest(c, "imageFile is required")
		return
	}
	if file.Size > 5*1024*1024 {
		resp.BadRequest(c, "image size exceeds 5MB limit")
		return
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, "/uploads/"+name)
}

// GET /admin/allOrders
func (h *AdminController) AllOrders(c *gin.Context) {
	orders, err := h.Orders.AllOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/confirmedOrders
func (h *AdminController) ConfirmedOrders(c *gin.Context) {
	orders, err := h.Orders.ConfirmedOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /admin/orderwithId/:id
func (h *AdminController) OrderWithID(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	order, err := h.Orders.OrderWithID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/dispatch
func (h *AdminController) Dispatch(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.Orders.Dispatch(id); err != nil {
		h.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusOnTheWay})
}

// PATCH /admin/orders/:id/deliver
func (h *AdminController) Deliver(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	var body struct {
		OTP string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Orders.Deliver(id, body.OTP); err != nil {
		h.transitionError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusDelivered})
}

func (h *AdminController) orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}

func (h *AdminController) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.Is(err, services.ErrOTPMismatch):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
