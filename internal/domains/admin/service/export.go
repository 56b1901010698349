package service

import (
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CSV column orders match the dashboard's import templates; keep stable.
var (
	appointmentCSVHeader = []string{"id", "service", "date", "time", "name", "email", "phone", "address", "message", "status", "created_at"}
	contactCSVHeader     = []string{"id", "name", "email", "subject", "message", "created_at"}
)

func (s *serviceImpl) ExportAppointmentsCSV(ctx context.Context) (out []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.ExportAppointmentsCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.appointments.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to export appointments")

		return nil, fmt.Errorf("failed to export appointments: %w", err)
	}

	rows := make([][]string, 0, len(models)+1)
	rows = append(rows, appointmentCSVHeader)

	for _, appt := range models {
		rows = append(rows, []string{
			appt.ID,
			appt.Service,
			appt.Date,
			appt.Time,
			appt.Name,
			appt.Email,
			appt.Phone,
			appt.Address,
			appt.Message,
			appt.Status,
			timezone.Format(appt.CreatedAt, constant.DateFormat),
		})
	}

	return writeCSV(rows)
}

func (s *serviceImpl) ExportContactsCSV(ctx context.Context) (out []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.ExportContactsCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.contacts.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to export contacts")

		return nil, fmt.Errorf("failed to export contacts: %w", err)
	}

	rows := make([][]string, 0, len(models)+1)
	rows = append(rows, contactCSVHeader)

	for _, contact := range models {
		rows = append(rows, []string{
			contact.ID,
			contact.Name,
			contact.Email,
			contact.Subject,
			contact.Message,
			timezone.Format(contact.CreatedAt, constant.DateFormat),
		})
	}

	return writeCSV(rows)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}
