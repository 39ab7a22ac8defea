package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
	"github.com/vinaytz/theSkFoodBackend/repository"
	"github.com/vinaytz/theSkFoodBackend/services"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Menu{}, &entity.MenuHistory{},
		&entity.Order{},
	))
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewMenuRepository(db),
		nil, nil,
		zap.NewNop(),
	)
}

func seedOrder(t *testing.T, db *gorm.DB, status entity.OrderStatus) *entity.Order {
	t.Helper()
	o := &entity.Order{
		UserID:         1,
		MenuID:         1,
		SabjisSelected: []string{"Aloo Gobi"},
		Base:           entity.BaseRoti,
		Quantity:       1,
		TotalPrice:     60,
		OTP:            "4321",
		Status:         status,
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

type capturedEvent struct {
	OrderID uint
	Status  entity.OrderStatus
}

type fakeNotifier struct{ events []capturedEvent }

func (f *fakeNotifier) OrderStatusChanged(orderID uint, status entity.OrderStatus) {
	f.events = append(f.events, capturedEvent{orderID, status})
}

func TestDispatch(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	notify := &fakeNotifier{}
	svc.Notify = notify

	o := seedOrder(t, db, entity.StatusConfirmed)

	require.NoError(t, svc.Dispatch(o.ID))

	got, err := svc.OrderWithID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnTheWay, got.Status)
	assert.Equal(t, []capturedEvent{{o.ID, entity.StatusOnTheWay}}, notify.events)

	// second dispatch hits the guard
	err = svc.Dispatch(o.ID)
	assert.ErrorIs(t, err, services.ErrStatusConflict)
}

func TestDeliverChecksOTP(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	o := seedOrder(t, db, entity.StatusOnTheWay)

	err := svc.Deliver(o.ID, "0000")
	assert.ErrorIs(t, err, services.ErrOTPMismatch)

	got, err := svc.OrderWithID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnTheWay, got.Status, "mismatch must not advance the order")

	require.NoError(t, svc.Deliver(o.ID, "4321"))
	got, err = svc.OrderWithID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)
}

func TestDeliveredIsTerminal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	o := seedOrder(t, db, entity.StatusDelivered)

	assert.ErrorIs(t, svc.Dispatch(o.ID), services.ErrStatusConflict)
	assert.ErrorIs(t, svc.Deliver(o.ID, "4321"), services.ErrStatusConflict)
}

func TestDeliverSkipsConfirmed(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	// Confirmed -> delivered must not be possible, even with the right OTP.
	o := seedOrder(t, db, entity.StatusConfirmed)
	assert.ErrorIs(t, svc.Deliver(o.ID, "4321"), services.ErrStatusConflict)
}
