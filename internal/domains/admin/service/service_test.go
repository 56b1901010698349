package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "bizdesk/infras/otel/mocks"
	"bizdesk/internal/domains/admin/service"
	apptModel "bizdesk/internal/domains/appointment/model"
	apptDto "bizdesk/internal/domains/appointment/model/dto"
	apptRepo "bizdesk/internal/domains/appointment/repository"
	contactDto "bizdesk/internal/domains/contact/model/dto"
	contactRepo "bizdesk/internal/domains/contact/repository"
	leadDto "bizdesk/internal/domains/lead/model/dto"
	leadRepo "bizdesk/internal/domains/lead/repository"
	subscriberDto "bizdesk/internal/domains/subscriber/model/dto"
	subscriberRepo "bizdesk/internal/domains/subscriber/repository"
)

type fixture struct {
	admin        service.Admin
	appointments apptRepo.Appointment
	contacts     contactRepo.Contact
	subscribers  subscriberRepo.Subscriber
	leads        leadRepo.Lead
}

func newFixture() fixture {
	otl := otelMocks.NewOtel()

	f := fixture{
		appointments: apptRepo.NewMemory(otl),
		contacts:     contactRepo.NewMemory(otl),
		subscribers:  subscriberRepo.NewMemory(otl),
		leads:        leadRepo.NewMemory(otl),
	}
	f.admin = service.New(f.appointments, f.contacts, f.subscribers, f.leads, otl)

	return f
}

func (f fixture) addAppointment(t *testing.T, name, message string) apptModel.Appointment {
	t.Helper()

	req := apptDto.CreateAppointmentRequest{
		Service: "CCTV",
		Date:    "2025-01-01",
		Time:    "10:00",
		Name:    name,
		Email:   "a@x.com",
		Phone:   "123",
		Message: message,
	}

	appt := req.ToModel()
	require.NoError(t, f.appointments.Insert(context.Background(), appt))

	return appt
}

func (f fixture) addContact(t *testing.T, name, message string) {
	t.Helper()

	req := contactDto.CreateContactRequest{Name: name, Email: "c@x.com", Message: message}
	require.NoError(t, f.contacts.Insert(context.Background(), req.ToModel()))
}

func TestAdminService_DashboardStats(t *testing.T) {
	f := newFixture()

	first := f.addAppointment(t, "A", "")
	f.addAppointment(t, "B", "")

	_, _, err := f.appointments.UpdateStatus(context.Background(), first.ID, apptModel.StatusConfirmed, first.UpdatedAt.Add(time.Second))
	require.NoError(t, err)

	f.addContact(t, "C", "hello")

	for _, email := range []string{"s1@x.com", "s2@x.com", "s2@x.com"} {
		req := subscriberDto.CreateSubscriberRequest{Email: email}
		_, _, err := f.subscribers.FindOrInsert(context.Background(), req.ToModel())
		require.NoError(t, err)
	}

	leadReq := leadDto.CreateLeadRequest{Name: "L", Phone: "123"}
	require.NoError(t, f.leads.Insert(context.Background(), leadReq.ToModel()))

	stats, err := f.admin.DashboardStats(context.Background())
	require.NoError(t, err)

	appts, err := f.appointments.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(appts), stats.TotalAppointments)
	assert.Equal(t, 1, stats.AppointmentsByStatus[apptModel.StatusPending])
	assert.Equal(t, 1, stats.AppointmentsByStatus[apptModel.StatusConfirmed])
	assert.Equal(t, 0, stats.AppointmentsByStatus[apptModel.StatusCompleted])
	assert.Equal(t, 1, stats.TotalContacts)
	assert.Equal(t, 2, stats.TotalSubscribers)
	assert.Equal(t, 2, stats.ActiveSubscribers)
	assert.Equal(t, 1, stats.TotalLeads)
}

func TestAdminService_RecentAppointmentsLimits(t *testing.T) {
	f := newFixture()

	for _, name := range []string{"first", "second", "third"} {
		f.addAppointment(t, name, "")
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := f.admin.RecentAppointments(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, recent.TotalData)
	assert.Equal(t, "third", recent.Appointments[0].Name)
	assert.Equal(t, "second", recent.Appointments[1].Name)

	// Non-positive limit falls back to the default window, capped at the
	// collection size.
	all, err := f.admin.RecentAppointments(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalData)
}

func TestAdminService_RecentContacts(t *testing.T) {
	f := newFixture()

	f.addContact(t, "older", "x")
	time.Sleep(2 * time.Millisecond)
	f.addContact(t, "newer", "y")

	recent, err := f.admin.RecentContacts(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, recent.TotalData)
	assert.Equal(t, "newer", recent.Contacts[0].Name)
}

func TestAdminService_ExportAppointmentsCSVRoundTrip(t *testing.T) {
	f := newFixture()

	appt := f.addAppointment(t, "A", `He said "hello"`)

	out, err := f.admin.ExportAppointmentsCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, []string{"id", "service", "date", "time", "name", "email", "phone", "address", "message", "status", "created_at"}, header)

	row := records[1]
	assert.Equal(t, appt.ID, row[0])
	assert.Equal(t, `He said "hello"`, row[8])
	assert.Equal(t, apptModel.StatusPending, row[9])
}

func TestAdminService_ExportContactsCSVNewestFirst(t *testing.T) {
	f := newFixture()

	f.addContact(t, "older", "x")
	time.Sleep(2 * time.Millisecond)
	f.addContact(t, "newer", "y")

	out, err := f.admin.ExportContactsCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "newer", records[1][1])
	assert.Equal(t, "older", records[2][1])
}
