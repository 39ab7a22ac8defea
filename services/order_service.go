package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/pkg/cart"
	"github.com/vinaytz/theSkFoodBackend/pkg/pricing"
	"github.com/vinaytz/theSkFoodBackend/repository"
	"github.com/vinaytz/theSkFoodBackend/utils"
)

var (
	ErrBadSabjiCount  = errors.New("select 1 or 2 sabjis")
	ErrBadQuantity    = errors.New("quantity must be between 1 and 5")
	ErrBadBase        = errors.New("invalid base option")
	ErrEmptyCheckout  = errors.New("cart is empty")
	ErrOTPMismatch    = errors.New("otp does not match")
	ErrStatusConflict = errors.New("order is not in the expected status")
)

// StatusNotifier is told about every committed transition. The websocket hub
// implements it; a nil notifier disables tracking.
type StatusNotifier interface {
	OrderStatusChanged(orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Gateway  GatewayClient
	Notify   StatusNotifier
	Log      *zap.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, gateway GatewayClient, notify StatusNotifier, log *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Gateway: gateway, Notify: notify, Log: log}
}

// ----- Quote (orderPreparedThali) -----

type QuoteReq struct {
	MealType      string   `json:"mealType" binding:"required"`
	ListOfSabjis  []string `json:"listOfSabjis" binding:"required"`
	OptionForRoti string   `json:"optionForRoti"`
	NoOfRoti      int      `json:"noOfRoti"`
}

type QuoteRes struct {
	TotalPrice   int64         `json:"totalPrice"`
	GatewayOrder *GatewayOrder `json:"order"`
}

// Quote derives the thali price server-side and opens a payment-gateway
// order for it. The special surcharge comes from the catalog, never from the
// client: any selected sabji flagged special on the active menu triggers it.
func (s *OrderService) Quote(ctx context.Context, req *QuoteReq) (*QuoteRes, error) {
	if !entity.ValidMealType(req.MealType) {
		return nil, ErrBadMealType
	}
	if req.NoOfRoti < 0 {
		return nil, errors.New("noOfRoti must be non-negative")
	}

	basePrice := pricing.DefaultBasePrice
	isSpecial := false
	if m, err := s.MenuRepo.ActiveMenu(req.MealType); err == nil {
		basePrice = m.BasePrice
		isSpecial = m.HasSpecial(req.ListOfSabjis)
	}

	total := pricing.UnitPrice(basePrice, isSpecial, req.NoOfRoti)

	gw, err := s.Gateway.CreateOrder(ctx, total*100) // rupees -> paise
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}
	return &QuoteRes{TotalPrice: total, GatewayOrder: gw}, nil
}

// ----- Checkout -----

type CheckoutLine struct {
	ID             string   `json:"id"`
	MealType       string   `json:"mealType" binding:"required"`
	SabjisSelected []string `json:"sabjisSelected" binding:"required"`
	Base           string   `json:"base" binding:"required"`
	ExtraRoti      int      `json:"extraRoti"`
	Quantity       int      `json:"quantity"`
}

type CheckoutReq struct {
	Lines    []CheckoutLine `json:"lines" binding:"required"`
	Address  entity.Address `json:"address" binding:"required"`
	TipMoney int64          `json:"tipMoney"`
}

type CheckoutRes struct {
	Orders  []entity.Order `json:"orders"`
	Summary cart.Summary   `json:"summary"`
}

// Checkout turns the submitted cart into order rows. Every amount is
// recomputed here from the catalog; client totals are ignored. One order row
// is created per cart line, each with its own delivery OTP, in a single
// transaction. The tip rides the first row.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCheckout
	}

	c := cart.New()
	menuIDs := map[string]uint{}
	for _, in := range req.Lines {
		if !entity.ValidMealType(in.MealType) {
			return nil, ErrBadMealType
		}
		if n := len(in.SabjisSelected); n < 1 || n > 2 {
			return nil, ErrBadSabjiCount
		}
		if !entity.ValidBase(in.Base) {
			return nil, ErrBadBase
		}
		if in.Quantity < 1 || in.Quantity > 5 {
			return nil, ErrBadQuantity
		}
		if in.ExtraRoti < 0 {
			return nil, errors.New("extraRoti must be non-negative")
		}

		m, err := s.MenuRepo.ActiveMenu(in.MealType)
		if err != nil {
			return nil, fmt.Errorf("no active %s menu", in.MealType)
		}
		menuIDs[in.MealType] = m.ID

		id := in.ID
		if id == "" {
			id = fmt.Sprintf("%s|%v|%s|%d", in.MealType, in.SabjisSelected, in.Base, in.ExtraRoti)
		}
		c.Add(cart.Line{
			ID:             id,
			MealType:       in.MealType,
			SabjisSelected: in.SabjisSelected,
			Base:           in.Base,
			ExtraRoti:      in.ExtraRoti,
			IsSpecial:      m.HasSpecial(in.SabjisSelected),
			Quantity:       in.Quantity,
			BasePrice:      m.BasePrice,
		})
	}

	summary := c.Summary()

	var orders []entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, l := range c.Lines() {
			otp, err := utils.GenerateOTP()
			if err != nil {
				return err
			}
			o := entity.Order{
				UserID:         userID,
				MenuID:         menuIDs[l.MealType],
				SabjisSelected: l.SabjisSelected,
				Base:           l.Base,
				ExtraRoti:      l.ExtraRoti,
				IsSpecial:      l.IsSpecial,
				Quantity:       l.Quantity,
				TotalPrice:     l.Total,
				Address:        req.Address,
				OTP:            otp,
				Status:         entity.StatusConfirmed,
			}
			if i == 0 {
				o.TipMoney = req.TipMoney
			}
			if err := s.Repo.Create(tx, &o); err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("checkout complete",
		zap.Uint("userId", userID),
		zap.Int("orders", len(orders)),
		zap.Int64("grandTotal", summary.GrandTotal))
	return &CheckoutRes{Orders: orders, Summary: summary}, nil
}

// ----- Queries -----

func (s *OrderService) MyOrders(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) MyConfirmedOrders(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUserByStatus(userID, entity.StatusConfirmed)
}

func (s *OrderService) MyActiveOrders(userID uint) ([]entity.Order, error) {
	return s.Repo.ListActiveForUser(userID)
}

func (s *OrderService) MyOrderHistory(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUserByStatus(userID, entity.StatusDelivered)
}

func (s *OrderService) MyOrderWithID(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetForUser(userID, orderID)
}

func (s *OrderService) AllOrders() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) ConfirmedOrders() ([]entity.Order, error) {
	return s.Repo.ListByStatus(entity.StatusConfirmed)
}

func (s *OrderService) OrderWithID(orderID uint) (*entity.Order, error) {
	return s.Repo.Get(orderID)
}
