package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/transition"

	"github.com/stretchr/testify/mock"
)

type createStatusMock struct{ mock.Mock }

func (m *createStatusMock) Handle(ctx context.Context, cmd commands.CreateStatusCommand) (*status.Status, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

type updateStatusMock struct{ mock.Mock }

func (m *updateStatusMock) Handle(ctx context.Context, cmd commands.UpdateStatusCommand) (*status.Status, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

type deleteStatusMock struct{ mock.Mock }

func (m *deleteStatusMock) Handle(ctx context.Context, cmd commands.DeleteStatusCommand) (commands.DeleteStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.DeleteStatusResult), args.Error(1)
}

type createTransitionMock struct{ mock.Mock }

func (m *createTransitionMock) Handle(ctx context.Context, cmd commands.CreateTransitionCommand) (*transition.Transition, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transition.Transition), args.Error(1)
}

type deleteTransitionMock struct{ mock.Mock }

func (m *deleteTransitionMock) Handle(ctx context.Context, cmd commands.DeleteTransitionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type createOrderMock struct{ mock.Mock }

func (m *createOrderMock) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type changeOrderStatusMock struct{ mock.Mock }

func (m *changeOrderStatusMock) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.StatusChange, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.StatusChange), args.Error(1)
}

type listStatusesMock struct{ mock.Mock }

func (m *listStatusesMock) Handle(ctx context.Context, query queries.ListStatusesQuery) ([]queries.StatusView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.StatusView), args.Error(1)
}

type getStatusMock struct{ mock.Mock }

func (m *getStatusMock) Handle(ctx context.Context, query queries.GetStatusQuery) (queries.StatusDetail, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.StatusDetail), args.Error(1)
}

type listTransitionsMock struct{ mock.Mock }

func (m *listTransitionsMock) Handle(ctx context.Context, query queries.ListTransitionsQuery) ([]queries.TransitionView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.TransitionView), args.Error(1)
}

type getOrderHistoryMock struct{ mock.Mock }

func (m *getOrderHistoryMock) Handle(ctx context.Context, query queries.GetOrderHistoryQuery) (queries.OrderHistoryView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderHistoryView), args.Error(1)
}

type getAnalyticsMock struct{ mock.Mock }

func (m *getAnalyticsMock) Handle(ctx context.Context, query queries.GetAnalyticsQuery) (queries.AnalyticsReport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.AnalyticsReport), args.Error(1)
}
