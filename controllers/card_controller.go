package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodiehub/entity"
	"foodiehub/pkg/resp"
	"foodiehub/repository"
	"foodiehub/utils"
)

type CardController struct{ Repo *repository.CardRepository }

func NewCardController(r *repository.CardRepository) *CardController {
	return &CardController{Repo: r}
}

type cardIn struct {
	HolderName string `json:"holderName" binding:"required"`
	LastFour   string `json:"lastFour" binding:"required,len=4,numeric"`
	Brand      string `json:"brand" binding:"required"`
	ExpMonth   int    `json:"expMonth" binding:"required,min=1,max=12"`
	ExpYear    int    `json:"expYear" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// GET /cards
func (h *CardController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Repo.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": out})
}

// POST /cards
func (h *CardController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req cardIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	card := &entity.PaymentCard{
		UserID:     uid,
		HolderName: req.HolderName,
		LastFour:   req.LastFour,
		Brand:      req.Brand,
		ExpMonth:   req.ExpMonth,
		ExpYear:    req.ExpYear,
		IsDefault:  req.IsDefault,
	}
	if err := h.Repo.Create(card); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, card)
}

// DELETE /cards/:id
func (h *CardController) Delete(c *gin.Context) {
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

// PATCH /cards/:id/default
func (h *CardController) SetDefault(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Repo.SetDefault(uid, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "card not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"defaultId": id})
}
