package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/template"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/microcosm-cc/bluemonday"
	gocache "github.com/patrickmn/go-cache"
)

// Outcome is what Dispatch did with an event.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Config tunes the dispatcher.
type Config struct {
	// BaseURL prefixes order links, e.g. https://shop.example.com.
	BaseURL     string
	TemplateTTL time.Duration
	// SendRetries is the number of retries after the first failed Send.
	SendRetries     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:         "http://localhost:8080",
		TemplateTTL:     5 * time.Minute,
		SendRetries:     3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// Dispatcher renders and sends the email for one StatusEntered event.
type Dispatcher struct {
	uowFactory ports.UnitOfWorkFactory
	sender     Sender
	metrics    *Metrics
	cfg        Config
	templates  *gocache.Cache
	htmlPolicy *bluemonday.Policy
	logger     *slog.Logger
}

func NewDispatcher(
	uowFactory ports.UnitOfWorkFactory,
	sender Sender,
	metrics *Metrics,
	cfg Config,
	logger *slog.Logger,
) *Dispatcher {
	defaults := DefaultConfig()
	if cfg.TemplateTTL <= 0 {
		cfg.TemplateTTL = defaults.TemplateTTL
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = defaults.MaxInterval
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Dispatcher{
		uowFactory: uowFactory,
		sender:     sender,
		metrics:    metrics,
		cfg:        cfg,
		templates:  gocache.New(cfg.TemplateTTL, 2*cfg.TemplateTTL),
		htmlPolicy: bluemonday.StrictPolicy(),
		logger:     logger.With("component", "notification_dispatcher"),
	}
}

// Dispatch sends the email for event if its status asks for one.
//
// It skips, without error, events whose status or order no longer exists and
// statuses with sendEmailOnEnter off. A missing or deleted template falls back to
// a generic message. Errors are returned only when the event is worth retrying.
func (d *Dispatcher) Dispatch(ctx context.Context, event ports.StatusEntered) (Outcome, error) {
	outcome, err := d.dispatch(ctx, event)
	d.metrics.observe(outcome)
	return outcome, err
}

func (d *Dispatcher) dispatch(ctx context.Context, event ports.StatusEntered) (Outcome, error) {
	uow := d.uowFactory.Create()

	st, err := uow.StatusRepository().GetBySlug(ctx, event.Status)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.DebugContext(ctx, "Status gone, skipping notification", "status", event.Status)
			return OutcomeSkipped, nil
		}
		return OutcomeFailed, fmt.Errorf("load status %s: %w", event.Status, err)
	}
	if !st.SendEmailOnEnter() {
		return OutcomeSkipped, nil
	}

	ord, err := uow.OrderRepository().Get(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.WarnContext(ctx, "Order gone, skipping notification", "order_id", event.OrderID.String())
			return OutcomeSkipped, nil
		}
		return OutcomeFailed, fmt.Errorf("load order %s: %w", event.OrderID, err)
	}

	tpl, err := d.template(ctx, uow, st.EmailTemplateID())
	if err != nil {
		return OutcomeFailed, err
	}

	msg := d.compose(ord, st, tpl, event.Notes)

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = d.cfg.InitialInterval
	retry.MaxInterval = d.cfg.MaxInterval
	retry.MaxElapsedTime = 0

	err = backoff.Retry(func() error {
		return d.sender.Send(ctx, msg)
	}, backoff.WithContext(backoff.WithMaxRetries(retry, d.cfg.SendRetries), ctx))
	if err != nil {
		return OutcomeFailed, fmt.Errorf("send %s email for order %s: %w", st.Slug(), ord.OrderNumber(), err)
	}

	d.logger.InfoContext(ctx, "Status notification sent",
		"order_number", ord.OrderNumber(),
		"status", st.Slug(),
		"templated", tpl != nil,
	)
	return OutcomeSent, nil
}

// template returns nil when no template is bound or the bound one was deleted.
func (d *Dispatcher) template(ctx context.Context, uow ports.UnitOfWork, id *kernel.UUID) (*template.EmailTemplate, error) {
	if id == nil {
		return nil, nil
	}

	key := id.String()
	if cached, ok := d.templates.Get(key); ok {
		return cached.(*template.EmailTemplate), nil
	}

	tpl, err := uow.EmailTemplateRepository().Get(ctx, *id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.WarnContext(ctx, "Bound email template not found, using generic message", "template_id", key)
			return nil, nil
		}
		return nil, fmt.Errorf("load email template %s: %w", key, err)
	}

	d.templates.SetDefault(key, tpl)
	return tpl, nil
}

func (d *Dispatcher) compose(ord *order.Order, st *status.Status, tpl *template.EmailTemplate, notes string) Message {
	vars := d.variables(ord, st, notes)
	htmlVars := vars.ForHTML(d.htmlPolicy)

	if tpl == nil {
		return Message{
			To:      ord.Customer().Email,
			Subject: Render(genericSubject, vars),
			Text:    Render(genericText(vars), vars),
			HTML:    Render(genericHTML(vars), htmlVars),
		}
	}

	content := tpl.Content()
	return Message{
		To:      ord.Customer().Email,
		Subject: Render(tpl.Subject(), vars),
		Text:    Render(content.Text, vars),
		HTML:    Render(content.HTML, htmlVars),
	}
}

func (d *Dispatcher) variables(ord *order.Order, st *status.Status, notes string) Variables {
	return Variables{
		VarOrderNumber:    ord.OrderNumber(),
		VarCustomerName:   ord.Customer().Name,
		VarStatusName:     st.Name(),
		VarTrackingNumber: ord.Tracking().Number,
		VarTrackingURL:    ord.Tracking().URL,
		VarOrderURL:       d.cfg.BaseURL + "/orders/" + url.PathEscape(ord.OrderNumber()),
		VarNotes:          notes,
		VarTotal:          FormatCents(ord.TotalCents()),
	}
}

// FormatCents renders 4599 as "45.99".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

const genericSubject = "Your order {orderNumber} is now {statusName}"

func genericText(vars Variables) string {
	var b strings.Builder
	b.WriteString("Hi {customerName},\n\nYour order {orderNumber} is now {statusName}.\n")
	if vars[VarNotes] != "" {
		b.WriteString("\nNote: {notes}\n")
	}
	if vars[VarTrackingNumber] != "" {
		b.WriteString("\nTracking number: {trackingNumber}\n")
	}
	if vars[VarTrackingURL] != "" {
		b.WriteString("Track your parcel: {trackingUrl}\n")
	}
	b.WriteString("\nView your order: {orderUrl}\n")
	return b.String()
}

func genericHTML(vars Variables) string {
	var b strings.Builder
	b.WriteString("<p>Hi {customerName},</p>\n<p>Your order <strong>{orderNumber}</strong> is now <strong>{statusName}</strong>.</p>\n")
	if vars[VarNotes] != "" {
		b.WriteString("<p>Note: {notes}</p>\n")
	}
	if vars[VarTrackingNumber] != "" {
		b.WriteString("<p>Tracking number: {trackingNumber}</p>\n")
	}
	if vars[VarTrackingURL] != "" {
		b.WriteString(`<p><a href="{trackingUrl}">Track your parcel</a></p>` + "\n")
	}
	b.WriteString(`<p><a href="{orderUrl}">View your order</a></p>` + "\n")
	return b.String()
}
