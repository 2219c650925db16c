package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/pkg/cache"
	"github.com/TheLiloji/UberV3-sub000/repository"
)

const referenceTTL = 5 * time.Minute

// RestaurantService serves the read-only reference data. Results go
// through the cache; with no Redis configured every read hits the DB.
type RestaurantService struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	if cache.Get("restaurants", &out) {
		return out, nil
	}
	out, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	_ = cache.Set("restaurants", out, referenceTTL)
	return out, nil
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	r, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return r, err
}

func (s *RestaurantService) Menu(restaurantID uint) ([]entity.Menu, error) {
	if _, err := s.Detail(restaurantID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("menu:%d", restaurantID)
	var rows []entity.Menu
	if cache.Get(key, &rows) {
		return rows, nil
	}
	rows, err := s.repo.MenuByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	_ = cache.Set(key, rows, referenceTTL)
	return rows, nil
}
