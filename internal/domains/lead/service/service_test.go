package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "bizdesk/infras/otel/mocks"
	"bizdesk/internal/domains/lead/model/dto"
	"bizdesk/internal/domains/lead/repository"
	"bizdesk/internal/domains/lead/service"
)

func TestLeadService_CreateAndList(t *testing.T) {
	svc := service.New(repository.NewMemory(otelMocks.NewOtel()), otelMocks.NewOtel())

	res, err := svc.Create(context.Background(), dto.CreateLeadRequest{
		Name:  "A",
		Phone: "123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Empty(t, res.Email)

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalData)
	assert.Equal(t, res.ID, list.Leads[0].ID)
}
