package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodiehub/entity"
	"foodiehub/pkg/resp"
	"foodiehub/repository"
	"foodiehub/utils"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(r *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: r}
}

type addressIn struct {
	Title     string `json:"title" binding:"required"`
	Detail    string `json:"detail" binding:"required"`
	Note      string `json:"note"`
	IsDefault bool   `json:"isDefault"`
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Repo.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a := &entity.Address{
		UserID:    uid,
		Title:     strings.TrimSpace(req.Title),
		Detail:    strings.TrimSpace(req.Detail),
		Note:      strings.TrimSpace(req.Note),
		IsDefault: req.IsDefault,
	}
	if err := h.Repo.Create(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PUT /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var req addressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Repo.GetForUser(uid, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	a.Title = strings.TrimSpace(req.Title)
	a.Detail = strings.TrimSpace(req.Detail)
	a.Note = strings.TrimSpace(req.Note)
	if err := h.Repo.Update(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	if req.IsDefault && !a.IsDefault {
		if err := h.Repo.SetDefault(uid, a.ID); err != nil {
			resp.ServerError(c, err)
			return
		}
		a.IsDefault = true
	}
	resp.OK(c, a)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Repo.Delete(uid, uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// PATCH /addresses/:id/default
func (h *AddressController) SetDefault(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Repo.SetDefault(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"defaultId": id})
}
