package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
)

// MockClientRepo is a mock implementation of ClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, c *model.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepo) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepo) SumIncome(ctx context.Context, clientID uint) (float64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(float64), args.Error(1)
}

func TestClientCreateRequiresName(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	err := s.Create(context.Background(), &model.Client{})
	assert.Error(t, err)
	r.AssertNotCalled(t, "Create")
}

func TestClientCreateDelegates(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	c := &model.Client{Name: "Anna"}
	r.On("Create", mock.Anything, c).Return(nil)

	require.NoError(t, s.Create(context.Background(), c))
	r.AssertExpectations(t)
}

func TestFinancialsZeroWithoutTransactions(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	r.On("SumIncome", mock.Anything, uint(3)).Return(0.0, nil)

	total, err := s.Financials(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestFinancialsRejectsEmptyID(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	_, err := s.Financials(context.Background(), 0)
	assert.Error(t, err)
	r.AssertNotCalled(t, "SumIncome")
}

func TestFinancialsPropagatesRepoError(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	boom := errors.New("db gone")
	r.On("SumIncome", mock.Anything, uint(3)).Return(0.0, boom)

	_, err := s.Financials(context.Background(), 3)
	assert.ErrorIs(t, err, boom)
}

func TestGenerateContractIsSideEffectFree(t *testing.T) {
	r := new(MockClientRepo)
	s := NewClientService(r, zap.NewNop())

	res, err := s.GenerateContract(context.Background(), &model.Client{Name: "Anna"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Message)
	// nothing may touch the store
	r.AssertNotCalled(t, "Create")
	r.AssertNotCalled(t, "Delete")
}
