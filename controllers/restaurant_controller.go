package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/pkg/resp"
	"github.com/TheLiloji/UberV3-sub000/services"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

func restaurantIDQuery(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("restaurantId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "restaurantId is required")
		return 0, false
	}
	return uint(id), true
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	rows, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /api/restaurant?restaurantId=
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := restaurantIDQuery(c)
	if !ok {
		return
	}

	r, err := h.Svc.Detail(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, r)
}

// GET /api/menu?restaurantId=
func (h *RestaurantController) Menu(c *gin.Context) {
	id, ok := restaurantIDQuery(c)
	if !ok {
		return
	}

	rows, err := h.Svc.Menu(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}
