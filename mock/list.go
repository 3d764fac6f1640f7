package mock

import (
	"context"

	"github.com/fwojciec/dealscope"
)

var _ dealscope.ListService = (*ListService)(nil)

// ListService is a mock implementation of dealscope.ListService.
type ListService struct {
	CreateListFn    func(ctx context.Context, list *dealscope.List) error
	FindListByIDFn  func(ctx context.Context, id string) (*dealscope.List, error)
	FindListsFn     func(ctx context.Context) ([]*dealscope.List, error)
	DeleteListFn    func(ctx context.Context, id string) error
	AddCompanyFn    func(ctx context.Context, listID, companyID string) error
	RemoveCompanyFn func(ctx context.Context, listID, companyID string) error
	CompanyIDsFn    func(ctx context.Context, listID string) ([]string, error)
}

func (s *ListService) CreateList(ctx context.Context, list *dealscope.List) error {
	return s.CreateListFn(ctx, list)
}

func (s *ListService) FindListByID(ctx context.Context, id string) (*dealscope.List, error) {
	return s.FindListByIDFn(ctx, id)
}

func (s *ListService) FindLists(ctx context.Context) ([]*dealscope.List, error) {
	return s.FindListsFn(ctx)
}

func (s *ListService) DeleteList(ctx context.Context, id string) error {
	return s.DeleteListFn(ctx, id)
}

func (s *ListService) AddCompany(ctx context.Context, listID, companyID string) error {
	return s.AddCompanyFn(ctx, listID, companyID)
}

func (s *ListService) RemoveCompany(ctx context.Context, listID, companyID string) error {
	return s.RemoveCompanyFn(ctx, listID, companyID)
}

func (s *ListService) CompanyIDs(ctx context.Context, listID string) ([]string, error) {
	return s.CompanyIDsFn(ctx, listID)
}
