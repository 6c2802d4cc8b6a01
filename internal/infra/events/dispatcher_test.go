package events

import (
	"context"
	"testing"
	"time"

	"thames/internal/domain/entity"
	"thames/internal/domain/service"
	mockRepo "thames/internal/mocks/repository"
	mockSvc "thames/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixture struct {
	bus          *Bus
	mailer       *mockSvc.MockMailer
	auditLogRepo *mockRepo.MockAuditLogRepository
	dispatcher   *Dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	f := &dispatcherFixture{
		bus:          NewBus(discardLogger()),
		mailer:       mockSvc.NewMockMailer(t),
		auditLogRepo: mockRepo.NewMockAuditLogRepository(t),
	}
	f.dispatcher = &Dispatcher{
		bus:          f.bus,
		mailer:       f.mailer,
		auditLogRepo: f.auditLogRepo,
		logger:       discardLogger(),
		done:         make(chan struct{}),
	}

	return f
}

func TestDispatcher_AuditRecorded(t *testing.T) {
	f := newDispatcherFixture(t)

	entry := &entity.AuditLogEntry{
		ID:    uuid.New(),
		Event: entity.AuditLoginSuccess,
		Email: "owner@riviera.example",
	}

	f.auditLogRepo.EXPECT().
		Create(mock.Anything, entry).
		Return(nil)

	f.dispatcher.handle(&service.DomainEvent{
		Name:  service.EventAuditRecorded,
		Audit: entry,
	})
}

func TestDispatcher_TierRequestSubmitted_SendsBothMails(t *testing.T) {
	f := newDispatcherFixture(t)

	event := &service.DomainEvent{
		Name: service.EventTierRequestSubmitted,
		TierRequest: &entity.TierChangeRequest{
			RequestType:   entity.RequestTypeUpgrade,
			CurrentTier:   entity.TierFree,
			RequestedTier: entity.TierBusiness,
			VendorNotes:   "Expanding to new marinas",
		},
		Vendor: &entity.Vendor{
			CompanyName:  "Riviera Charters",
			ContactEmail: "info@riviera.example",
		},
		User: &entity.User{Email: "owner@riviera.example"},
	}

	matchEmail := mock.MatchedBy(func(email service.TierRequestEmail) bool {
		// The requester's address wins over the vendor contact address.
		return email.VendorEmail == "owner@riviera.example" &&
			email.VendorName == "Riviera Charters" &&
			email.RequestedTier == entity.TierBusiness
	})

	f.mailer.EXPECT().
		SendTierRequestReceived(mock.Anything, matchEmail).
		Return(service.EmailResult{Success: true})

	f.mailer.EXPECT().
		SendTierRequestAdminAlert(mock.Anything, matchEmail).
		Return(service.EmailResult{Success: true})

	f.dispatcher.handle(event)
}

func TestDispatcher_TierRequestApproved_CarriesBenefits(t *testing.T) {
	f := newDispatcherFixture(t)

	catalog := entity.DefaultTierCatalog()

	f.mailer.EXPECT().
		SendTierRequestApproved(mock.Anything, mock.MatchedBy(func(email service.TierRequestEmail) bool {
			return assert.ObjectsAreEqual(catalog.InfoFor(entity.TierBusiness).Benefits, email.Benefits)
		})).
		Return(service.EmailResult{Success: true})

	f.dispatcher.handle(&service.DomainEvent{
		Name: service.EventTierRequestApproved,
		TierRequest: &entity.TierChangeRequest{
			RequestType:   entity.RequestTypeUpgrade,
			CurrentTier:   entity.TierFree,
			RequestedTier: entity.TierBusiness,
		},
		User: &entity.User{Email: "owner@riviera.example"},
	})
}

func TestDispatcher_TierRequestRejected_WithoutVendorSnapshot(t *testing.T) {
	f := newDispatcherFixture(t)

	// Rejection events carry no vendor snapshot; the user fills the gaps.
	event := &service.DomainEvent{
		Name: service.EventTierRequestRejected,
		TierRequest: &entity.TierChangeRequest{
			RequestType:     entity.RequestTypeUpgrade,
			RejectionReason: "Insufficient documentation",
		},
		User: &entity.User{Name: "Alex", Email: "owner@riviera.example"},
	}

	f.mailer.EXPECT().
		SendTierRequestRejected(mock.Anything, mock.MatchedBy(func(email service.TierRequestEmail) bool {
			return email.VendorEmail == "owner@riviera.example" &&
				email.VendorName == "Alex" &&
				email.RejectionReason == "Insufficient documentation"
		})).
		Return(service.EmailResult{Success: true})

	f.dispatcher.handle(event)
}

func TestDispatcher_CancelledAndSuspendedAreSilent(t *testing.T) {
	f := newDispatcherFixture(t)

	// No mailer or audit expectations: any call would fail the test.
	f.dispatcher.handle(&service.DomainEvent{
		Name:        service.EventTierRequestCancelled,
		TierRequest: &entity.TierChangeRequest{},
	})
	f.dispatcher.handle(&service.DomainEvent{
		Name: service.EventAccountSuspended,
		User: &entity.User{Email: "owner@riviera.example"},
	})
}

func TestDispatcher_AccountApproved(t *testing.T) {
	f := newDispatcherFixture(t)

	f.mailer.EXPECT().
		SendAccountApproved(mock.Anything, service.AccountEmail{
			Name:  "Alex",
			Email: "owner@riviera.example",
		}).
		Return(service.EmailResult{Success: true})

	f.dispatcher.handle(&service.DomainEvent{
		Name: service.EventAccountApproved,
		User: &entity.User{Name: "Alex", Email: "owner@riviera.example"},
	})
}

func TestDispatcher_DrainsBufferOnClose(t *testing.T) {
	f := newDispatcherFixture(t)

	entry := &entity.AuditLogEntry{ID: uuid.New(), Event: entity.AuditLogout}
	f.auditLogRepo.EXPECT().
		Create(mock.Anything, entry).
		Return(nil)

	ctx := context.Background()
	require.NoError(t, f.bus.Publish(ctx, &service.DomainEvent{
		Name:  service.EventAuditRecorded,
		Audit: entry,
	}))

	go f.dispatcher.run()
	require.NoError(t, f.bus.Close())

	select {
	case <-f.dispatcher.done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not drain and stop")
	}
}

func TestDispatcher_MailFailureDoesNotPanic(t *testing.T) {
	f := newDispatcherFixture(t)

	f.mailer.EXPECT().
		SendAccountRejected(mock.Anything, mock.AnythingOfType("service.AccountEmail")).
		Return(service.EmailResult{Success: false, Error: "provider unavailable"})

	assert.NotPanics(t, func() {
		f.dispatcher.handle(&service.DomainEvent{
			Name: service.EventAccountRejected,
			User: &entity.User{Email: "owner@riviera.example"},
		})
	})
}
