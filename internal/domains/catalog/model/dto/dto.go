package dto

import (
	"bizdesk/internal/domains/catalog/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"omitempty"`
	Category    string `json:"category"    validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel() model.Service {
	category := c.Category
	if category == constant.Empty {
		category = model.DefaultCategory
	}

	return model.Service{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Category:    category,
		CreatedAt:   timezone.Now(),
	}
}

type ServiceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at"`
}

func (r *ServiceResponse) FromModel(mod model.Service) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Description = mod.Description
	r.Price = mod.Price
	r.Category = mod.Category
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service) {
	r.TotalData = len(models)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
