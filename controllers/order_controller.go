package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodiehub/entity"
	"foodiehub/pkg/resp"
	"foodiehub/repository"
	"foodiehub/services"
	"foodiehub/utils"
)

type OrderController struct {
	Checkout *services.CheckoutService
	Orders   *services.OrderService
}

func NewOrderController(checkout *services.CheckoutService, orders *services.OrderService) *OrderController {
	return &OrderController{Checkout: checkout, Orders: orders}
}

// POST /checkout
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Checkout.Checkout(uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrNoAddress),
			errors.Is(err, services.ErrNoCard):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := oc.Orders.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	order, err := oc.Orders.DetailForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := oc.Orders.Cancel(uid, uint(id)); err != nil {
		writeStatusError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": entity.StatusCancelled})
}

// PATCH /admin/orders/:id/status
func (oc *OrderController) SetStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Orders.SetStatus(uint(id), body.Status); err != nil {
		writeStatusError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}

func writeStatusError(c *gin.Context, err error) {
	var illegal *entity.IllegalTransitionError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	case errors.As(err, &illegal):
		resp.Conflict(c, illegal.Error())
	case errors.Is(err, repository.ErrStatusConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
