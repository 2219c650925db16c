package repository

import (
	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) ListByUser(userID uint) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Create(pm *entity.PaymentMethod) error {
	return r.DB.Create(pm).Error
}

func (r *PaymentRepository) FindOwned(userID, id uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&pm).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentRepository) Delete(userID, id uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.PaymentMethod{}).Error
}

// ClearDefaults resets is_default on every payment method of the user.
// Runs inside the SetDefault transaction so the at-most-one-default
// invariant holds at commit.
func (r *PaymentRepository) ClearDefaults(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.PaymentMethod{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

func (r *PaymentRepository) SetDefault(tx *gorm.DB, userID, id uint) error {
	return tx.Model(&entity.PaymentMethod{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_default", true).Error
}
