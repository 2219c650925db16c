package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/repository"
)

type PaymentService struct {
	DB   *gorm.DB
	repo *repository.PaymentRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{DB: db, repo: repo}
}

type CreatePaymentMethodIn struct {
	Type      string `json:"type" binding:"required"`
	Label     string `json:"label" binding:"required"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault"`
}

func (s *PaymentService) List(userID uint) ([]entity.PaymentMethod, error) {
	return s.repo.ListByUser(userID)
}

func (s *PaymentService) Create(userID uint, in *CreatePaymentMethodIn) (*entity.PaymentMethod, error) {
	pm := &entity.PaymentMethod{
		UserID:    userID,
		Type:      in.Type,
		Label:     in.Label,
		Icon:      in.Icon,
		IsDefault: in.IsDefault,
	}
	if !in.IsDefault {
		if err := s.repo.Create(pm); err != nil {
			return nil, err
		}
		return pm, nil
	}
	// creating as default displaces any existing default
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.ClearDefaults(tx, userID); err != nil {
			return err
		}
		return tx.Create(pm).Error
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *PaymentService) Delete(userID, id uint) error {
	if _, err := s.repo.FindOwned(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(userID, id)
}

// SetDefault makes the target the user's only default payment method.
// Clearing the siblings and setting the target commit together, so the
// at-most-one-default invariant cannot be observed broken.
func (s *PaymentService) SetDefault(userID, id uint) (*entity.PaymentMethod, error) {
	if _, err := s.repo.FindOwned(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.ClearDefaults(tx, userID); err != nil {
			return err
		}
		return s.repo.SetDefault(tx, userID, id)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindOwned(userID, id)
}
