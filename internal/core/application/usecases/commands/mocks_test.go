package commands_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/template"
	"storefront/internal/core/domain/model/transition"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Add(ctx context.Context, s *status.Status) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatusRepository) Update(ctx context.Context, s *status.Status) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Status, error) {
	args := m.Called(ctx, id)
	st, _ := args.Get(0).(*status.Status)
	return st, args.Error(1)
}

func (m *MockStatusRepository) GetBySlug(ctx context.Context, slug status.Slug) (*status.Status, error) {
	args := m.Called(ctx, slug)
	st, _ := args.Get(0).(*status.Status)
	return st, args.Error(1)
}

func (m *MockStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*status.Status)
	return list, args.Error(1)
}

func (m *MockStatusRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context, slug status.Slug) (int64, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ReassignStatus(ctx context.Context, from, to status.Slug) ([]kernel.UUID, error) {
	args := m.Called(ctx, from, to)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, entries ...*order.StatusChange) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error) {
	args := m.Called(ctx, orderID)
	list, _ := args.Get(0).([]*order.StatusChange)
	return list, args.Error(1)
}

type MockTransitionRepository struct{ mock.Mock }

func (m *MockTransitionRepository) Add(ctx context.Context, t *transition.Transition) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransitionRepository) Get(ctx context.Context, id kernel.UUID) (*transition.Transition, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transition.Transition)
	return t, args.Error(1)
}

func (m *MockTransitionRepository) List(ctx context.Context) ([]*transition.Transition, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*transition.Transition)
	return list, args.Error(1)
}

func (m *MockTransitionRepository) ListFrom(ctx context.Context, statusID kernel.UUID) ([]*transition.Transition, error) {
	args := m.Called(ctx, statusID)
	list, _ := args.Get(0).([]*transition.Transition)
	return list, args.Error(1)
}

func (m *MockTransitionRepository) Exists(ctx context.Context, from, to kernel.UUID) (bool, error) {
	args := m.Called(ctx, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransitionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTransitionRepository) DeleteByStatus(ctx context.Context, statusID kernel.UUID) (int64, error) {
	args := m.Called(ctx, statusID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTemplateRepository struct{ mock.Mock }

func (m *MockTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*template.EmailTemplate, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*template.EmailTemplate)
	return t, args.Error(1)
}

// MockUoW satisfies both commands.UoW and commands.StatusUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) StatusRepository() ports.StatusRepository {
	return m.Called().Get(0).(ports.StatusRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return m.Called().Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) TransitionRepository() ports.TransitionRepository {
	return m.Called().Get(0).(ports.TransitionRepository)
}

func (m *MockUoW) EmailTemplateRepository() ports.EmailTemplateRepository {
	return m.Called().Get(0).(ports.EmailTemplateRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	return m.Called().Get(0).(commands.StatusUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, events ...ports.StatusEntered) error {
	return m.Called(ctx, events).Error(0)
}

// fixture bundles one UoW with every repository wired up.
type fixture struct {
	uow         *MockUoW
	statuses    *MockStatusRepository
	orders      *MockOrderRepository
	history     *MockHistoryRepository
	transitions *MockTransitionRepository
	templates   *MockTemplateRepository
	factory     *MockUoWFactory
	statusUoWs  *MockStatusUoWFactory
	publisher   *MockPublisher
}

func newFixture() *fixture {
	f := &fixture{
		uow:         new(MockUoW),
		statuses:    new(MockStatusRepository),
		orders:      new(MockOrderRepository),
		history:     new(MockHistoryRepository),
		transitions: new(MockTransitionRepository),
		templates:   new(MockTemplateRepository),
		factory:     new(MockUoWFactory),
		statusUoWs:  new(MockStatusUoWFactory),
		publisher:   new(MockPublisher),
	}
	f.uow.On("StatusRepository").Return(f.statuses).Maybe()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("StatusHistoryRepository").Return(f.history).Maybe()
	f.uow.On("TransitionRepository").Return(f.transitions).Maybe()
	f.uow.On("EmailTemplateRepository").Return(f.templates).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()
	f.statusUoWs.On("Create").Return(f.uow).Maybe()
	return f
}

func (f *fixture) assertExpectations(t mock.TestingT) {
	f.uow.AssertExpectations(t)
	f.statuses.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.history.AssertExpectations(t)
	f.transitions.AssertExpectations(t)
	f.templates.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}
