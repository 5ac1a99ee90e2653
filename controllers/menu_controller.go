package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodiehub/pkg/resp"
	"foodiehub/repository"
)

type MenuController struct{ Catalog *repository.CatalogRepository }

func NewMenuController(r *repository.CatalogRepository) *MenuController {
	return &MenuController{Catalog: r}
}

// GET /menu?categoryId=
func (m *MenuController) List(c *gin.Context) {
	if q := c.Query("categoryId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		items, err := m.Catalog.ListByCategory(uint(id))
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": items})
		return
	}

	items, err := m.Catalog.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu/:id
func (m *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	item, err := m.Catalog.GetItemByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /categories
func (m *MenuController) Categories(c *gin.Context) {
	cats, err := m.Catalog.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": cats})
}
