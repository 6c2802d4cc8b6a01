package events

import (
	"context"
	"log/slog"
	"time"

	"thames/internal/domain/entity"
	"thames/internal/domain/repository"
	"thames/internal/domain/service"

	"go.uber.org/fx"
)

// Side effects get their own deadline so a slow mail provider cannot
// stall the dispatch loop indefinitely.
const handlerTimeout = 30 * time.Second

// Dispatcher consumes domain events and fans them out to the mailer and the
// audit log. Each handler has its own error boundary: a mail failure never
// prevents the audit write and vice versa.
type Dispatcher struct {
	bus          *Bus
	mailer       service.Mailer
	auditLogRepo repository.AuditLogRepository
	logger       *slog.Logger

	done chan struct{}
}

// DispatcherParams holds dependencies for Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In
	fx.Lifecycle

	Bus          *Bus
	Mailer       service.Mailer
	AuditLogRepo repository.AuditLogRepository
	Logger       *slog.Logger
}

// NewDispatcher creates the dispatcher and hooks it into the application lifecycle.
// On shutdown the bus is closed first, then the loop drains the remaining buffer.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	d := &Dispatcher{
		bus:          params.Bus,
		mailer:       params.Mailer,
		auditLogRepo: params.AuditLogRepo,
		logger:       params.Logger,
		done:         make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := d.bus.Close(); err != nil {
				return err
			}
			select {
			case <-d.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.bus.Events() {
		d.handle(event)
	}
}

func (d *Dispatcher) handle(event *service.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch event.Name {
	case service.EventAuditRecorded:
		d.recordAudit(ctx, event)
	case service.EventTierRequestSubmitted:
		d.send(event, "vendor confirmation", d.mailer.SendTierRequestReceived(ctx, tierRequestEmail(event)))
		d.send(event, "admin alert", d.mailer.SendTierRequestAdminAlert(ctx, tierRequestEmail(event)))
	case service.EventTierRequestApproved:
		d.send(event, "approval notice", d.mailer.SendTierRequestApproved(ctx, tierRequestEmail(event)))
	case service.EventTierRequestRejected:
		d.send(event, "rejection notice", d.mailer.SendTierRequestRejected(ctx, tierRequestEmail(event)))
	case service.EventTierRequestCancelled:
		// No outbound mail on cancellation.
	case service.EventAccountApproved:
		d.send(event, "account approval", d.mailer.SendAccountApproved(ctx, accountEmail(event)))
	case service.EventAccountRejected:
		d.send(event, "account rejection", d.mailer.SendAccountRejected(ctx, accountEmail(event)))
	case service.EventAccountSuspended:
		// Suspension is deliberately silent toward the account holder.
	default:
		d.logger.Warn("Unhandled event", slog.String("event", event.Name))
	}
}

func (d *Dispatcher) recordAudit(ctx context.Context, event *service.DomainEvent) {
	if event.Audit == nil {
		d.logger.Warn("Audit event without entry", slog.String("requestID", event.RequestID))

		return
	}

	if err := d.auditLogRepo.Create(ctx, event.Audit); err != nil {
		// Audit writes are best-effort: log and move on.
		d.logger.Error("Failed to write audit log entry",
			slog.String("event", event.Audit.Event.String()),
			slog.String("requestID", event.RequestID),
			slog.Any("error", err))
	}
}

func (d *Dispatcher) send(event *service.DomainEvent, kind string, result service.EmailResult) {
	if result.Success {
		return
	}

	d.logger.Error("Failed to send email",
		slog.String("event", event.Name),
		slog.String("kind", kind),
		slog.String("requestID", event.RequestID),
		slog.String("error", result.Error))
}

func tierRequestEmail(event *service.DomainEvent) service.TierRequestEmail {
	email := service.TierRequestEmail{}

	if request := event.TierRequest; request != nil {
		email.RequestType = request.RequestType
		email.CurrentTier = request.CurrentTier
		email.RequestedTier = request.RequestedTier
		email.VendorNotes = request.VendorNotes
		email.RejectionReason = request.RejectionReason
		email.Benefits = entity.DefaultTierCatalog().InfoFor(request.RequestedTier).Benefits
	}
	if event.Vendor != nil {
		email.VendorName = event.Vendor.CompanyName
		email.VendorEmail = event.Vendor.ContactEmail
	}
	// The requesting user's address wins over the vendor contact address.
	if event.User != nil {
		if event.User.Email != "" {
			email.VendorEmail = event.User.Email
		}
		if email.VendorName == "" {
			email.VendorName = event.User.Name
		}
	}

	return email
}

func accountEmail(event *service.DomainEvent) service.AccountEmail {
	email := service.AccountEmail{}
	if event.User != nil {
		email.Name = event.User.Name
		email.Email = event.User.Email
		email.RejectionReason = event.User.RejectionReason
	}

	return email
}
