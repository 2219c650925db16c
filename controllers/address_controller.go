package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/entity"
	"github.com/TheLiloji/UberV3-sub000/pkg/resp"
	"github.com/TheLiloji/UberV3-sub000/services"
	"github.com/TheLiloji/UberV3-sub000/utils"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(svc *services.AddressService) *AddressController {
	return &AddressController{Svc: svc}
}

func addressJSON(a entity.Address) gin.H {
	return gin.H{
		"id":                   a.ID,
		"label":                a.Label,
		"address":              a.Address,
		"deliveryInstructions": a.DeliveryInstructions,
		"deliveryMethod":       a.DeliveryMethod,
		"deliveryOption":       a.DeliveryOption,
		"icon":                 a.Icon,
		"coordinates": gin.H{
			"latitude":  a.Latitude,
			"longitude": a.Longitude,
		},
	}
}

// GET /api/addresses
func (h *AddressController) List(c *gin.Context) {
	rows, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, a := range rows {
		out = append(out, addressJSON(a))
	}
	resp.OK(c, out)
}

// POST /api/addresses
func (h *AddressController) Create(c *gin.Context) {
	var req services.CreateAddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addressJSON(*a))
}

// DELETE /api/addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid address id")
		return
	}

	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
