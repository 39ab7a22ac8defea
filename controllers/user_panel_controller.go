package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/pkg/resp"
	"github.com/vinaytz/theSkFoodBackend/services"
	"github.com/vinaytz/theSkFoodBackend/utils"
)

type UserPanelController struct {
	Menus  *services.MenuService
	Orders *services.OrderService
}

func NewUserPanelController(menus *services.MenuService, orders *services.OrderService) *UserPanelController {
	return &UserPanelController{Menus: menus, Orders: orders}
}

// GET /userPanel/seeLunchMenu
func (h *UserPanelController) SeeLunchMenu(c *gin.Context) {
	h.seeMenu(c, entity.MealLunch)
}

// GET /userPanel/seeDinnerMenu
func (h *UserPanelController) SeeDinnerMenu(c *gin.Context) {
	h.seeMenu(c, entity.MealDinner)
}

func (h *UserPanelController) seeMenu(c *gin.Context, mealType string) {
	menus, err := h.Menus.SeeMenu(mealType)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /userPanel/orderPreparedThali
func (h *UserPanelController) OrderPreparedThali(c *gin.Context) {
	var req services.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Orders.Quote(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrBadMealType) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /userPanel/checkout
func (h *UserPanelController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Orders.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadMealType),
			errors.Is(err, services.ErrBadSabjiCount),
			errors.Is(err, services.ErrBadBase),
			errors.Is(err, services.ErrBadQuantity),
			errors.Is(err, services.ErrEmptyCheckout):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, out)
}

// GET /userPanel/myAllOrders
func (h *UserPanelController) MyAllOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.MyOrders)
}

// GET /userPanel/confirmedOrders
func (h *UserPanelController) ConfirmedOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.MyConfirmedOrders)
}

// GET /userPanel/activeOrders
func (h *UserPanelController) ActiveOrders(c *gin.Context) {
	h.listOrders(c, h.Orders.MyActiveOrders)
}

// GET /userPanel/orderHistory
func (h *UserPanelController) OrderHistory(c *gin.Context) {
	h.listOrders(c, h.Orders.MyOrderHistory)
}

func (h *UserPanelController) listOrders(c *gin.Context, list func(uint) ([]entity.Order, error)) {
	orders, err := list(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /userPanel/myOrderwithId/:id
func (h *UserPanelController) MyOrderWithID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Orders.MyOrderWithID(utils.CurrentUserID(c), uint(id))
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
