package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/pkg/resp"
	"github.com/TheLiloji/UberV3-sub000/services"
	"github.com/TheLiloji/UberV3-sub000/utils"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// GET /api/payment-methods
func (h *PaymentController) List(c *gin.Context) {
	rows, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /api/payment-methods
func (h *PaymentController) Create(c *gin.Context) {
	var req services.CreatePaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pm, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, pm)
}

// DELETE /api/payment-methods/:id
func (h *PaymentController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid payment method id")
		return
	}

	if err := h.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "payment method not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PUT /api/payment-methods/:id/default
func (h *PaymentController) SetDefault(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid payment method id")
		return
	}

	pm, err := h.Svc.SetDefault(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "payment method not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pm)
}
