package outreach_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/email"
	"github.com/reviewloop/reviewloop-backend/internal/outreach"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// stubQuerier satisfies db.Querier with in-memory state.
// Fields may be set per-test to control behaviour.
type stubQuerier struct {
	db.Querier // embedded to panic on unimplemented methods

	customers map[uuid.UUID]db.Customer
	users     map[uuid.UUID]db.User
	requests  map[uuid.UUID]db.ReviewRequest // keyed by customer_id

	emailLogs    []db.InsertEmailLogParams
	markedSent   []db.MarkReviewRequestSentParams
	insertLogErr error
	markSentErr  error
}

func newStubQuerier() *stubQuerier {
	return &stubQuerier{
		customers: make(map[uuid.UUID]db.Customer),
		users:     make(map[uuid.UUID]db.User),
		requests:  make(map[uuid.UUID]db.ReviewRequest),
	}
}

func (q *stubQuerier) GetCustomerByID(_ context.Context, id uuid.UUID) (db.Customer, error) {
	c, ok := q.customers[id]
	if !ok {
		return db.Customer{}, sql.ErrNoRows
	}
	return c, nil
}

func (q *stubQuerier) GetUserByID(_ context.Context, id uuid.UUID) (db.User, error) {
	u, ok := q.users[id]
	if !ok {
		return db.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (q *stubQuerier) GetReviewRequestByCustomer(_ context.Context, customerID uuid.UUID) (db.ReviewRequest, error) {
	r, ok := q.requests[customerID]
	if !ok {
		return db.ReviewRequest{}, sql.ErrNoRows
	}
	return r, nil
}

func (q *stubQuerier) InsertEmailLog(_ context.Context, p db.InsertEmailLogParams) (db.EmailLog, error) {
	if q.insertLogErr != nil {
		return db.EmailLog{}, q.insertLogErr
	}
	q.emailLogs = append(q.emailLogs, p)
	return db.EmailLog{ID: uuid.New(), CustomerID: p.CustomerID}, nil
}

func (q *stubQuerier) MarkReviewRequestSent(_ context.Context, p db.MarkReviewRequestSentParams) (db.ReviewRequest, error) {
	if q.markSentErr != nil {
		return db.ReviewRequest{}, q.markSentErr
	}
	q.markedSent = append(q.markedSent, p)
	r := q.requests[p.CustomerID]
	r.Status = "sent"
	r.SentAt = p.SentAt
	r.FollowUpsScheduled = true
	q.requests[p.CustomerID] = r
	return r, nil
}

// stubProvider records sent messages.
type stubProvider struct {
	sent []email.Message
	err  error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Send(_ context.Context, msg email.Message) (email.Result, error) {
	p.sent = append(p.sent, msg)
	if p.err != nil {
		return email.Result{}, p.err
	}
	return email.Result{Provider: "stub", MessageID: "m-1"}, nil
}

// stubScheduler records scheduling calls.
type stubScheduler struct {
	calls int
	err   error
}

func (s *stubScheduler) ScheduleFollowUps(_ context.Context, _ uuid.UUID, _ time.Time) error {
	s.calls++
	return s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seed(q *stubQuerier) (db.User, db.Customer) {
	user := db.User{ID: uuid.New(), Email: "owner@example.com", BusinessName: "Acme Plumbing"}
	customer := db.Customer{ID: uuid.New(), UserID: user.ID, Name: "Jane Doe", Email: "jane@example.com"}
	q.users[user.ID] = user
	q.customers[customer.ID] = customer
	q.requests[customer.ID] = db.ReviewRequest{ID: uuid.New(), CustomerID: customer.ID, Status: "pending"}
	return user, customer
}

const baseURL = "https://app.reviewloop.io"

// ─── SendReviewRequest ────────────────────────────────────────────────────────

func TestSendReviewRequest_DeliversAndLogs(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	provider := &stubProvider{}
	svc := outreach.New(q, provider, &stubScheduler{}, baseURL, discardLogger())

	res, err := svc.SendReviewRequest(context.Background(), customer.ID, outreach.TypeInitial)
	if err != nil {
		t.Fatalf("SendReviewRequest: %v", err)
	}
	if res.Provider != "stub" {
		t.Errorf("provider = %q", res.Provider)
	}

	if len(provider.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(provider.sent))
	}
	msg := provider.sent[0]
	if msg.To != customer.Email {
		t.Errorf("to = %q, want %q", msg.To, customer.Email)
	}
	if msg.Subject != "How was your experience with Acme Plumbing?" {
		t.Errorf("subject = %q", msg.Subject)
	}
	wantURL := outreach.ReviewURL(baseURL, customer.ID, customer.Name, "Acme Plumbing")
	if !strings.Contains(msg.HTML, wantURL) {
		t.Errorf("HTML missing review URL %q", wantURL)
	}

	if len(q.emailLogs) != 1 {
		t.Fatalf("wrote %d email logs, want 1", len(q.emailLogs))
	}
	log := q.emailLogs[0]
	if log.Status != "sent" || log.Provider != "stub" || log.EmailType != "initial" {
		t.Errorf("log = %+v", log)
	}
}

func TestSendReviewRequest_FollowUpTemplates(t *testing.T) {
	tests := []struct {
		emailType   string
		wantSubject string
	}{
		{outreach.TypeFollowUp1, "Quick follow-up: Your feedback matters to Acme Plumbing"},
		{outreach.TypeFollowUp2, "Final request: Help others discover Acme Plumbing"},
	}
	for _, tt := range tests {
		t.Run(tt.emailType, func(t *testing.T) {
			q := newStubQuerier()
			_, customer := seed(q)
			provider := &stubProvider{}
			svc := outreach.New(q, provider, &stubScheduler{}, baseURL, discardLogger())

			if _, err := svc.SendReviewRequest(context.Background(), customer.ID, tt.emailType); err != nil {
				t.Fatalf("SendReviewRequest: %v", err)
			}
			if got := provider.sent[0].Subject; got != tt.wantSubject {
				t.Errorf("subject = %q, want %q", got, tt.wantSubject)
			}
		})
	}
}

func TestSendReviewRequest_CustomerNotFound(t *testing.T) {
	q := newStubQuerier()
	svc := outreach.New(q, &stubProvider{}, &stubScheduler{}, baseURL, discardLogger())

	_, err := svc.SendReviewRequest(context.Background(), uuid.New(), outreach.TypeInitial)
	if !errors.Is(err, outreach.ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

func TestSendReviewRequest_BusinessNotFound(t *testing.T) {
	q := newStubQuerier()
	customer := db.Customer{ID: uuid.New(), UserID: uuid.New(), Name: "Jane", Email: "jane@example.com"}
	q.customers[customer.ID] = customer
	svc := outreach.New(q, &stubProvider{}, &stubScheduler{}, baseURL, discardLogger())

	_, err := svc.SendReviewRequest(context.Background(), customer.ID, outreach.TypeInitial)
	if !errors.Is(err, outreach.ErrBusinessNotFound) {
		t.Fatalf("err = %v, want ErrBusinessNotFound", err)
	}
}

func TestSendReviewRequest_DeliveryFailureLoggedAndPropagated(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	provider := &stubProvider{err: email.ErrDelivery}
	svc := outreach.New(q, provider, &stubScheduler{}, baseURL, discardLogger())

	_, err := svc.SendReviewRequest(context.Background(), customer.ID, outreach.TypeInitial)
	if !errors.Is(err, email.ErrDelivery) {
		t.Fatalf("err = %v, want ErrDelivery", err)
	}
	if len(q.emailLogs) != 1 {
		t.Fatalf("wrote %d email logs, want 1", len(q.emailLogs))
	}
	log := q.emailLogs[0]
	if log.Status != "failed" || !log.ErrorMessage.Valid {
		t.Errorf("failure log = %+v", log)
	}
}

func TestSendReviewRequest_LogWriteFailureDoesNotMaskSuccess(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	q.insertLogErr = errors.New("log table on fire")
	svc := outreach.New(q, &stubProvider{}, &stubScheduler{}, baseURL, discardLogger())

	if _, err := svc.SendReviewRequest(context.Background(), customer.ID, outreach.TypeInitial); err != nil {
		t.Fatalf("log failure must not surface, got: %v", err)
	}
}

// ─── AutomateReviewRequest ────────────────────────────────────────────────────

func TestAutomateReviewRequest_FullFlow(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	provider := &stubProvider{}
	scheduler := &stubScheduler{}
	svc := outreach.New(q, provider, scheduler, baseURL, discardLogger())

	if err := svc.AutomateReviewRequest(context.Background(), customer.ID); err != nil {
		t.Fatalf("AutomateReviewRequest: %v", err)
	}
	if len(provider.sent) != 1 {
		t.Errorf("sent %d messages, want 1", len(provider.sent))
	}
	if scheduler.calls != 1 {
		t.Errorf("scheduler calls = %d, want 1", scheduler.calls)
	}
	if len(q.markedSent) != 1 {
		t.Fatalf("marked sent %d times, want 1", len(q.markedSent))
	}
	if !q.markedSent[0].SentAt.Valid {
		t.Error("sent_at not set")
	}
}

func TestAutomateReviewRequest_SkipsSchedulingWhenFlagSet(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	r := q.requests[customer.ID]
	r.FollowUpsScheduled = true
	q.requests[customer.ID] = r

	scheduler := &stubScheduler{}
	svc := outreach.New(q, &stubProvider{}, scheduler, baseURL, discardLogger())

	if err := svc.AutomateReviewRequest(context.Background(), customer.ID); err != nil {
		t.Fatalf("AutomateReviewRequest: %v", err)
	}
	if scheduler.calls != 0 {
		t.Errorf("scheduler calls = %d, want 0", scheduler.calls)
	}
}

func TestAutomateReviewRequest_SchedulingFailureStillMarksSent(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	scheduler := &stubScheduler{err: errors.New("everything is down")}
	svc := outreach.New(q, &stubProvider{}, scheduler, baseURL, discardLogger())

	if err := svc.AutomateReviewRequest(context.Background(), customer.ID); err != nil {
		t.Fatalf("scheduling failure must not abort the flow, got: %v", err)
	}
	if len(q.markedSent) != 1 {
		t.Errorf("marked sent %d times, want 1", len(q.markedSent))
	}
}

func TestAutomateReviewRequest_SendFailureAbortsFlow(t *testing.T) {
	q := newStubQuerier()
	_, customer := seed(q)
	scheduler := &stubScheduler{}
	svc := outreach.New(q, &stubProvider{err: email.ErrDelivery}, scheduler, baseURL, discardLogger())

	err := svc.AutomateReviewRequest(context.Background(), customer.ID)
	if !errors.Is(err, email.ErrDelivery) {
		t.Fatalf("err = %v, want ErrDelivery", err)
	}
	if scheduler.calls != 0 {
		t.Errorf("scheduler calls = %d, want 0", scheduler.calls)
	}
	if len(q.markedSent) != 0 {
		t.Errorf("request marked sent despite failed delivery")
	}
}
