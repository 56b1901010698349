package dto

import (
	"bizdesk/internal/domains/appointment/model"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	Service string `json:"service" validate:"required"`
	Date    string `json:"date"    validate:"required"`
	Time    string `json:"time"    validate:"required"`
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Phone   string `json:"phone"   validate:"required"`
	Address string `json:"address" validate:"omitempty"`
	Message string `json:"message" validate:"omitempty"`
}

func (c *CreateAppointmentRequest) ToModel() model.Appointment {
	now := timezone.Now()

	return model.Appointment{
		ID:        uuid.NewString(),
		Service:   c.Service,
		Date:      c.Date,
		Time:      c.Time,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Message:   c.Message,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r *AppointmentResponse) FromModel(mod model.Appointment) {
	r.ID = mod.ID
	r.Service = mod.Service
	r.Date = mod.Date
	r.Time = mod.Time
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Address = mod.Address
	r.Message = mod.Message
	r.Status = mod.Status
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(mod.UpdatedAt, constant.DateFormat)
}

type CreateAppointmentResponse struct {
	Appointment  AppointmentResponse `json:"appointment"`
	Notification notifier.Outcome    `json:"notification"`
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment) {
	r.TotalData = len(models)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
