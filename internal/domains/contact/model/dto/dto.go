package dto

import (
	"bizdesk/internal/domains/contact/model"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Subject string `json:"subject" validate:"omitempty"`
	Message string `json:"message" validate:"required"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	subject := c.Subject
	if subject == constant.Empty {
		subject = model.DefaultSubject
	}

	return model.Contact{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Subject:   subject,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type ContactResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *ContactResponse) FromModel(mod model.Contact) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Subject = mod.Subject
	r.Message = mod.Message
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type CreateContactResponse struct {
	Contact      ContactResponse  `json:"contact"`
	Notification notifier.Outcome `json:"notification"`
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact) {
	r.TotalData = len(models)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
