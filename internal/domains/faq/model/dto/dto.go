package dto

import (
	"bizdesk/internal/domains/faq/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateFAQRequest struct {
	Question     string `json:"question"      validate:"required"`
	Answer       string `json:"answer"        validate:"required"`
	Category     string `json:"category"      validate:"omitempty"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=1"`
}

func (c *CreateFAQRequest) ToModel() model.FAQ {
	category := c.Category
	if category == constant.Empty {
		category = model.DefaultCategory
	}

	displayOrder := c.DisplayOrder
	if displayOrder == 0 {
		displayOrder = model.DefaultDisplayOrder
	}

	return model.FAQ{
		ID:           uuid.NewString(),
		Question:     c.Question,
		Answer:       c.Answer,
		Category:     category,
		DisplayOrder: displayOrder,
		CreatedAt:    timezone.Now(),
	}
}

type FAQResponse struct {
	ID           string `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category"`
	DisplayOrder int    `json:"display_order"`
	CreatedAt    string `json:"created_at"`
}

func (r *FAQResponse) FromModel(mod model.FAQ) {
	r.ID = mod.ID
	r.Question = mod.Question
	r.Answer = mod.Answer
	r.Category = mod.Category
	r.DisplayOrder = mod.DisplayOrder
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetFAQsResponse struct {
	FAQs      []FAQResponse `json:"faqs"`
	TotalData int           `json:"total_data"`
}

func (r *GetFAQsResponse) FromModels(models []model.FAQ) {
	r.TotalData = len(models)

	r.FAQs = make([]FAQResponse, len(models))
	for i, mod := range models {
		r.FAQs[i].FromModel(mod)
	}
}
