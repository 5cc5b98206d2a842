package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, c *model.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientService) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientService) Financials(ctx context.Context, clientID uint) (float64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockClientService) GenerateContract(ctx context.Context, c *model.Client) (*service.ContractResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ContractResult), args.Error(1)
}

func newClientDispatcher(svc service.ClientService) *dispatch.Dispatcher {
	d := dispatch.New()
	NewClientHandler(svc).Register(d)
	return d
}

func TestCreateClientDecodesPayload(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Client) bool {
		return c.Name == "Anna" && c.Type == model.ClientTypeClient && c.Phone == "+123"
	})).Return(nil)

	out, err := d.Dispatch(context.Background(), dispatch.OpCreateClient,
		[]byte(`{"name":"Anna","phone":"+123","type":"client","social_links":{"instagram":"@anna"}}`))
	require.NoError(t, err)

	created, ok := out.(model.Client)
	require.True(t, ok)
	assert.Equal(t, "Anna", created.Name)
	svc.AssertExpectations(t)
}

func TestCreateClientDefaultsTypeToLead(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Client) bool {
		return c.Type == model.ClientTypeLead
	})).Return(nil)

	_, err := d.Dispatch(context.Background(), dispatch.OpCreateClient, []byte(`{"name":"Anna"}`))
	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestCreateClientPropagatesConstraintError(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	boom := errors.New("NOT NULL constraint failed: clients.name")
	svc.On("Create", mock.Anything, mock.Anything).Return(boom)

	_, err := d.Dispatch(context.Background(), dispatch.OpCreateClient, []byte(`{}`))
	assert.ErrorIs(t, err, boom)
}

func TestGetClientFinancialsShape(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	svc.On("Financials", mock.Anything, uint(7)).Return(1250.5, nil)

	out, err := d.Dispatch(context.Background(), dispatch.OpGetClientFinancials, []byte(`{"client_id":7}`))
	require.NoError(t, err)
	assert.Equal(t, FinancialsRes{Total: 1250.5}, out)
}

func TestGenerateContractAcknowledges(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	svc.On("GenerateContract", mock.Anything, mock.Anything).
		Return(&service.ContractResult{Success: true, Message: "Contract generated (Mock)"}, nil)

	out, err := d.Dispatch(context.Background(), dispatch.OpGenerateContract, []byte(`{"name":"Anna"}`))
	require.NoError(t, err)

	res, ok := out.(*service.ContractResult)
	require.True(t, ok)
	assert.True(t, res.Success)
}

func TestDeleteClientReportsSuccess(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	svc.On("Delete", mock.Anything, uint(4)).Return(nil)

	out, err := d.Dispatch(context.Background(), dispatch.OpDeleteClient, []byte(`{"id":4}`))
	require.NoError(t, err)
	assert.Equal(t, SuccessRes{Success: true}, out)
}

func TestCreateClientRejectsMalformedPayload(t *testing.T) {
	svc := new(MockClientService)
	d := newClientDispatcher(svc)

	_, err := d.Dispatch(context.Background(), dispatch.OpCreateClient, []byte(`{"name":`))
	assert.Error(t, err)
	svc.AssertNotCalled(t, "Create")
}
