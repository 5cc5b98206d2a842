package service

import (
	"context"
	"errors"

	"github.com/studiodesk-io/studiodesk/internal/modules/model"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
	"go.uber.org/zap"
)

// ContractResult is the acknowledgment of a contract generation request.
type ContractResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ClientService interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, id uint) error
	// Financials is the total paid income across all projects of one client.
	Financials(ctx context.Context, clientID uint) (float64, error)
	// GenerateContract is a stand-in for a future document-generation
	// feature. It persists nothing and always acknowledges.
	GenerateContract(ctx context.Context, c *model.Client) (*ContractResult, error)
}

type clientService struct {
	r   repo.ClientRepo
	log *zap.Logger
}

func NewClientService(r repo.ClientRepo, log *zap.Logger) ClientService {
	return &clientService{r: r, log: log}
}

func (s *clientService) Create(ctx context.Context, c *model.Client) error {
	if c.Name == "" {
		return errors.New("client name is empty")
	}
	return s.r.Create(ctx, c)
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.r.List(ctx)
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("client id is empty")
	}
	return s.r.Delete(ctx, id)
}

func (s *clientService) Financials(ctx context.Context, clientID uint) (float64, error) {
	if clientID == 0 {
		return 0, errors.New("client id is empty")
	}
	return s.r.SumIncome(ctx, clientID)
}

func (s *clientService) GenerateContract(ctx context.Context, c *model.Client) (*ContractResult, error) {
	s.log.Sugar().Infow("generating contract", "client", c.Name)
	return &ContractResult{Success: true, Message: "Contract generated (Mock)"}, nil
}
