package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/repository"
)

type AddressService struct {
	repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

type CoordinatesIn struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
}

type CreateAddressIn struct {
	Label                string         `json:"label" binding:"required"`
	Address              string         `json:"address" binding:"required"`
	DeliveryInstructions string         `json:"deliveryInstructions"`
	DeliveryMethod       string         `json:"deliveryMethod" binding:"required,oneof=hand dropoff"`
	DeliveryOption       string         `json:"deliveryOption"`
	Icon                 string         `json:"icon" binding:"required"`
	Coordinates          *CoordinatesIn `json:"coordinates" binding:"required"`
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.repo.ListByUser(userID)
}

func (s *AddressService) Create(userID uint, in *CreateAddressIn) (*entity.Address, error) {
	a := &entity.Address{
		UserID:               userID,
		Label:                in.Label,
		Address:              in.Address,
		DeliveryInstructions: in.DeliveryInstructions,
		DeliveryMethod:       in.DeliveryMethod,
		DeliveryOption:       in.DeliveryOption,
		Icon:                 in.Icon,
		Latitude:             in.Coordinates.Latitude,
		Longitude:            in.Coordinates.Longitude,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Delete(userID, id uint) error {
	// membership check first so a foreign id yields 404, not a silent no-op
	if _, err := s.repo.FindOwned(userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(userID, id)
}
