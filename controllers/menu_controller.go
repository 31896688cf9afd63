package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alexanderthenotsobad-git/nvrs-rest-api/entity"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/pkg/resp"
	"github.com/alexanderthenotsobad-git/nvrs-rest-api/services"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

// List godoc
// @Summary Get all menu items
// @Tags Menu Items
// @Produce json
// @Success 200 {array} services.MenuItemSummary
// @Failure 500 {object} map[string]string
// @Router / [get]
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.service.List()
	if err != nil {
		log.Error().Err(err).Msg("failed to list menu items")
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

type createMenuItemReq struct {
	ItemName string  `json:"item_name" binding:"required"`
	ItemDesc string  `json:"item_desc"`
	Price    float64 `json:"price"`
	ItemType string  `json:"item_type"`
}

// Create godoc
// @Summary Create a new menu item
// @Tags Menu Items
// @Accept json
// @Produce json
// @Param item body createMenuItemReq true "Menu item"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /createMenuItem [post]
func (ctl *MenuController) Create(c *gin.Context) {
	var req createMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.ItemName,
		Description: req.ItemDesc,
		Price:       req.Price,
		Type:        req.ItemType,
	}
	id, err := ctl.service.Create(&item)
	if err != nil {
		log.Error().Err(err).Msg("failed to create menu item")
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"item_id": id})
}

type updateMenuItemReq struct {
	ItemName *string  `json:"item_name"`
	ItemDesc *string  `json:"item_desc"`
	Price    *float64 `json:"price"`
	ItemType *string  `json:"item_type"`
}

// Update godoc
// @Summary Update a menu item
// @Tags Menu Items
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body updateMenuItemReq true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /menu/{id} [put]
func (ctl *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req updateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.ItemName != nil {
		fields["item_name"] = *req.ItemName
	}
	if req.ItemDesc != nil {
		fields["item_desc"] = *req.ItemDesc
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.ItemType != nil {
		fields["item_type"] = *req.ItemType
	}
	if len(fields) == 0 {
		resp.BadRequest(c, "No fields to update")
		return
	}

	if err := ctl.service.Update(uint(id), fields); err != nil {
		ctl.menuError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item updated successfully", "item_id": id})
}

// Delete godoc
// @Summary Delete a menu item
// @Description Deletes a menu item by its identifier
// @Tags Menu Items
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /menu/{id} [delete]
func (ctl *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		ctl.menuError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Menu item deleted successfully", "item_id": id})
}

func (ctl *MenuController) menuError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrMenuItemNotFound) {
		resp.NotFound(c, "Menu item not found")
		return
	}
	log.Error().Err(err).Msg("menu request failed")
	resp.ServerError(c, err)
}
