package api

import (
	"canopy/internal/models"
)

type ListCategories struct{}

type ListCategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

func (data *ListCategories) Perform(ctx *Context) (*ListCategoriesResponse, error) {
	categories := []models.Category{}
	if err := ctx.DB.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return &ListCategoriesResponse{Categories: categories}, nil
}
