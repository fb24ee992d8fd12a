package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/transition"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	CreateStatusHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStatusCommand) (*status.Status, error)
	}
	UpdateStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateStatusCommand) (*status.Status, error)
	}
	DeleteStatusHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteStatusCommand) (commands.DeleteStatusResult, error)
	}
	CreateTransitionHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTransitionCommand) (*transition.Transition, error)
	}
	DeleteTransitionHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteTransitionCommand) error
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.StatusChange, error)
	}

	ListStatusesHandler interface {
		Handle(ctx context.Context, query queries.ListStatusesQuery) ([]queries.StatusView, error)
	}
	GetStatusHandler interface {
		Handle(ctx context.Context, query queries.GetStatusQuery) (queries.StatusDetail, error)
	}
	ListTransitionsHandler interface {
		Handle(ctx context.Context, query queries.ListTransitionsQuery) ([]queries.TransitionView, error)
	}
	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) (queries.OrderHistoryView, error)
	}
	GetAnalyticsHandler interface {
		Handle(ctx context.Context, query queries.GetAnalyticsQuery) (queries.AnalyticsReport, error)
	}
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	// Command handlers
	CreateStatus      CreateStatusHandler
	UpdateStatus      UpdateStatusHandler
	DeleteStatus      DeleteStatusHandler
	CreateTransition  CreateTransitionHandler
	DeleteTransition  DeleteTransitionHandler
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler

	// Query handlers
	ListStatuses    ListStatusesHandler
	GetStatus       GetStatusHandler
	ListTransitions ListTransitionsHandler
	GetOrderHistory GetOrderHistoryHandler
	GetAnalytics    GetAnalyticsHandler
}

// Server translates HTTP requests into commands and queries. Handler methods return
// domain errors; ErrorHandler turns them into failure envelopes.
type Server struct {
	h       Handlers
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a server. metrics may be nil.
func NewServer(h Handlers, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		h:       h,
		metrics: metrics,
		logger:  logger.With("component", "http_server"),
	}
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(c echo.Context) error {
	views, err := s.h.ListStatuses.Handle(c.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, views)
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(c echo.Context) error {
	var req NewStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateStatusCommand(kernel.NewUUID(), req.Slug, req.Definition())
	if err != nil {
		return err
	}

	st, err := s.h.CreateStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newStatusResponse(st))
}

// GetStatus handles GET /api/v1/statuses/{id}.
func (s *Server) GetStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetStatusQuery(id)
	if err != nil {
		return err
	}

	detail, err := s.h.GetStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, detail)
}

// UpdateStatus handles PATCH /api/v1/statuses/{id}. A slug in the body is accepted
// only when it equals the current one.
func (s *Server) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusPatchRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := s.checkSlugUnchanged(c.Request().Context(), id, req); err != nil {
		return err
	}

	patch, err := req.Patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateStatusCommand(id, patch)
	if err != nil {
		return err
	}

	st, err := s.h.UpdateStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, newStatusResponse(st))
}

func (s *Server) checkSlugUnchanged(ctx context.Context, id kernel.UUID, req StatusPatchRequest) error {
	sent, present, err := req.Slug()
	if err != nil || !present {
		return err
	}

	query, err := queries.NewGetStatusQuery(id)
	if err != nil {
		return err
	}
	current, err := s.h.GetStatus.Handle(ctx, query)
	if err != nil {
		return err
	}

	if normalized, err := status.NormalizeSlug(sent, ""); err != nil || normalized.String() != current.Slug {
		return errs.NewForbiddenFieldEditError("status "+current.Slug, []string{fieldSlug})
	}
	return nil
}

// DeleteStatus handles DELETE /api/v1/statuses/{id}?reassignTo=SLUG.
func (s *Server) DeleteStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reassignTo, err := queryString(c, "reassignTo")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteStatusCommand(id, reassignTo)
	if err != nil {
		return err
	}

	res, err := s.h.DeleteStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.ordersReassigned(res.ReassignedCount)
	return ok(c, http.StatusOK, newDeleteStatusResponse(res))
}

// ListTransitions handles GET /api/v1/transitions.
func (s *Server) ListTransitions(c echo.Context) error {
	views, err := s.h.ListTransitions.Handle(c.Request().Context(), queries.NewListTransitionsQuery())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, views)
}

// CreateTransition handles POST /api/v1/transitions.
func (s *Server) CreateTransition(c echo.Context) error {
	var req NewTransitionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateTransitionCommand(kernel.NewUUID(), req.FromStatusID, req.ToStatusID)
	if err != nil {
		return err
	}

	t, err := s.h.CreateTransition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newTransitionResponse(t))
}

// DeleteTransition handles DELETE /api/v1/transitions/{id}.
func (s *Server) DeleteTransition(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteTransitionCommand(id)
	if err != nil {
		return err
	}

	if err := s.h.DeleteTransition.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req NewOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.OrderNumber,
		order.Customer{Name: req.CustomerName, Email: req.CustomerEmail},
		req.TotalCents,
		req.Status,
		req.ChangedBy,
	)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, newOrderResponse(o))
}

// ChangeOrderStatus handles POST /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, strings.TrimSpace(req.Status), req.Notes, req.ChangedBy)
	if err != nil {
		return err
	}

	change, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.statusChanged(change.ToStatus().String())
	return ok(c, http.StatusOK, newStatusChangeResponse(change))
}

// GetOrderHistory handles GET /api/v1/orders/{id}/history.
func (s *Server) GetOrderHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, view)
}

// GetAnalytics handles GET /api/v1/analytics?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD.
func (s *Server) GetAnalytics(c echo.Context) error {
	start, err := queryDate(c, "startDate")
	if err != nil {
		return err
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return err
	}

	query, err := queries.NewGetAnalyticsQuery(start, end)
	if err != nil {
		return err
	}

	report, err := s.h.GetAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, report)
}
