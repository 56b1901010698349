package dto

import (
	"bizdesk/internal/domains/lead/model"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateLeadRequest struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Email   string `json:"email"   validate:"omitempty"`
	Message string `json:"message" validate:"omitempty"`
}

func (c *CreateLeadRequest) ToModel() model.Lead {
	return model.Lead{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type LeadResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *LeadResponse) FromModel(mod model.Lead) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Message = mod.Message
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	TotalData int            `json:"total_data"`
}

func (r *GetLeadsResponse) FromModels(models []model.Lead) {
	r.TotalData = len(models)

	r.Leads = make([]LeadResponse, len(models))
	for i, mod := range models {
		r.Leads[i].FromModel(mod)
	}
}
