package repository

import (
	"gorm.io/gorm"

	"github.com/vinaytz/theSkFoodBackend/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForUserByStatus(userID uint, status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ? AND status = ?", userID, status).Order("id DESC").Find(&out).Error
	return out, err
}

// ListActiveForUser returns the user's orders that have not been delivered.
func (r *OrderRepository) ListActiveForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("user_id = ? AND status <> ?", userID, entity.StatusDelivered).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("status = ?", status).Order("id DESC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard performs the guarded transition from -> to. Zero rows
// affected means the order was not in the expected state (stale read or a
// concurrent transition), which callers surface as a conflict.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
