package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/TheLiloji/UberV3-sub000/pkg/resp"
	"github.com/TheLiloji/UberV3-sub000/services"
	"github.com/TheLiloji/UberV3-sub000/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/orders
func (h *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	rows, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}
