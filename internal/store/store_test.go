package store_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/reviewloop/reviewloop-backend/internal/db"
	"github.com/reviewloop/reviewloop-backend/internal/store"
)

// ─── TEST INFRASTRUCTURE ──────────────────────────────────────────────────────

// openTestDB returns a *sql.DB from DATABASE_URL. Skips if the env var is
// not set so the test suite still passes in CI without a Postgres instance.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set — skipping store integration tests")
	}
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := pool.PingContext(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return pool
}

// seedUser inserts a business account and schedules its removal.
func seedUser(t *testing.T, ctx context.Context, pool *sql.DB, q db.Querier) db.User {
	t.Helper()
	u, err := q.CreateUser(ctx, db.CreateUserParams{
		Email:        fmt.Sprintf("owner_%s@example.com", t.Name()),
		BusinessName: "Acme Plumbing",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	t.Cleanup(func() { _, _ = pool.ExecContext(ctx, "DELETE FROM users WHERE id=$1", u.ID) })
	return u
}

// seedCustomer creates a customer plus its pending review request through the
// store, exactly as the API handler does, and schedules full cleanup.
func seedCustomer(t *testing.T, ctx context.Context, pool *sql.DB, st *store.Store, userID uuid.UUID) db.Customer {
	t.Helper()
	c, _, err := st.CreateCustomerWithRequest(ctx, store.CreateCustomerParams{
		UserID:      userID,
		Name:        "Jane Doe",
		Email:       fmt.Sprintf("jane_%s@example.com", t.Name()),
		ServiceDate: time.Now().UTC().Truncate(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	t.Cleanup(func() {
		// Best-effort: DeleteCustomer is a no-op once the test already
		// removed the row.
		_ = st.DeleteCustomer(ctx, c.ID)
		_, _ = pool.ExecContext(ctx, "DELETE FROM email_logs WHERE customer_id=$1", c.ID)
	})
	return c
}

// ─── CreateCustomerWithRequest ────────────────────────────────────────────────

func TestCreateCustomerWithRequest_CreatesBothRows(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)

	customer, request, err := st.CreateCustomerWithRequest(ctx, store.CreateCustomerParams{
		UserID:      user.ID,
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-0101",
		ServiceDate: time.Now().UTC().Truncate(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateCustomerWithRequest: %v", err)
	}
	t.Cleanup(func() { _ = st.DeleteCustomer(ctx, customer.ID) })

	if customer.UserID != user.ID {
		t.Errorf("customer.UserID = %v, want %v", customer.UserID, user.ID)
	}
	if !customer.Phone.Valid || customer.Phone.String != "555-0101" {
		t.Errorf("phone = %+v, want 555-0101", customer.Phone)
	}
	if request.CustomerID != customer.ID {
		t.Errorf("request.CustomerID = %v, want %v", request.CustomerID, customer.ID)
	}
	if request.Status != "pending" {
		t.Errorf("request.Status = %q, want pending", request.Status)
	}
	if request.FollowUpsScheduled {
		t.Error("new request should not have follow-ups scheduled")
	}
}

func TestCreateCustomerWithRequest_SecondRequestForbidden(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	// The unique constraint on review_requests.customer_id holds even when
	// bypassing the store.
	_, err := q.CreateReviewRequest(ctx, customer.ID)
	if err == nil {
		t.Fatal("expected unique violation for second review request")
	}
}

// ─── ScheduleFollowUps ────────────────────────────────────────────────────────

func TestScheduleFollowUps_CreatesTwoJobsAtFixedOffsets(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	now := time.Now().UTC()
	jobs, err := st.ScheduleFollowUps(ctx, customer.ID, now)
	if err != nil {
		t.Fatalf("ScheduleFollowUps: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}

	if jobs[0].EmailType != db.EmailTypeFollowup1 || jobs[1].EmailType != db.EmailTypeFollowup2 {
		t.Errorf("types = %v, %v", jobs[0].EmailType, jobs[1].EmailType)
	}
	for i, want := range []time.Time{now.Add(store.FollowUp1Offset), now.Add(store.FollowUp2Offset)} {
		if got := jobs[i].ScheduledFor; got.Sub(want) > time.Second || want.Sub(got) > time.Second {
			t.Errorf("job %d scheduled_for = %v, want ~%v", i, got, want)
		}
	}
	for i, job := range jobs {
		if job.Status != db.ScheduledEmailStatusScheduled {
			t.Errorf("job %d status = %v, want scheduled", i, job.Status)
		}
		if job.Attempts != 0 {
			t.Errorf("job %d attempts = %d, want 0", i, job.Attempts)
		}
	}
}

func TestScheduleFollowUps_RepeatCallLeavesCampaignAlone(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	now := time.Now().UTC()
	first, err := st.ScheduleFollowUps(ctx, customer.ID, now)
	if err != nil {
		t.Fatalf("ScheduleFollowUps: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("got %d jobs on first call, want 2", len(first))
	}

	// Queue redelivery and the publish-then-fallback race replay the same
	// call. The existing campaign must win.
	second, err := st.ScheduleFollowUps(ctx, customer.ID, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("repeat ScheduleFollowUps: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("repeat call created %d jobs, want 0", len(second))
	}

	jobs, err := q.ListScheduledEmailsByCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListScheduledEmailsByCustomer: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs after repeat call, want 2", len(jobs))
	}
	for _, job := range jobs {
		var want time.Time
		switch job.EmailType {
		case db.EmailTypeFollowup1:
			want = now.Add(store.FollowUp1Offset)
		case db.EmailTypeFollowup2:
			want = now.Add(store.FollowUp2Offset)
		}
		if got := job.ScheduledFor; got.Sub(want) > time.Second || want.Sub(got) > time.Second {
			t.Errorf("%s scheduled_for = %v, want original ~%v", job.EmailType, got, want)
		}
	}
}

// ─── SubmitReview ─────────────────────────────────────────────────────────────

func TestSubmitReview_NegativeRaisesAlert(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	review, err := st.SubmitReview(ctx, store.SubmitReviewParams{
		CustomerID: customer.ID,
		Rating:     1,
		Message:    "terrible service",
		Sentiment:  db.ReviewSentimentNegative,
		IsPublic:   false,
	})
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	alerts, err := q.ListAlertsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListAlertsByUser: %v", err)
	}
	var found bool
	for _, a := range alerts {
		if a.ReviewID == review.ID {
			found = true
			if a.Read {
				t.Error("new alert should be unread")
			}
			if a.Type != "negative" {
				t.Errorf("alert type = %q, want negative", a.Type)
			}
		}
	}
	if !found {
		t.Error("no alert raised for negative review")
	}
}

func TestSubmitReview_PositiveRaisesNoAlert(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	review, err := st.SubmitReview(ctx, store.SubmitReviewParams{
		CustomerID: customer.ID,
		Rating:     5,
		Message:    "fantastic",
		Sentiment:  db.ReviewSentimentPositive,
		IsPublic:   true,
	})
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if !review.IsPublic {
		t.Error("positive review should be public")
	}

	alerts, err := q.ListAlertsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListAlertsByUser: %v", err)
	}
	for _, a := range alerts {
		if a.ReviewID == review.ID {
			t.Error("positive review should not raise an alert")
		}
	}
}

func TestSubmitReview_UnknownCustomer(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	_, err := st.SubmitReview(ctx, store.SubmitReviewParams{
		CustomerID: uuid.New(),
		Rating:     5,
		Message:    "great",
		Sentiment:  db.ReviewSentimentPositive,
		IsPublic:   true,
	})
	if !errors.Is(err, store.ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}

// ─── DeleteCustomer ───────────────────────────────────────────────────────────

func TestDeleteCustomer_CascadesButKeepsEmailLogs(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	q := db.New(pool)
	st := store.New(pool, q)

	user := seedUser(t, ctx, pool, q)
	customer := seedCustomer(t, ctx, pool, st, user.ID)

	if _, err := st.ScheduleFollowUps(ctx, customer.ID, time.Now().UTC()); err != nil {
		t.Fatalf("ScheduleFollowUps: %v", err)
	}
	if _, err := st.SubmitReview(ctx, store.SubmitReviewParams{
		CustomerID: customer.ID,
		Rating:     1,
		Message:    "awful",
		Sentiment:  db.ReviewSentimentNegative,
		IsPublic:   false,
	}); err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if _, err := q.InsertEmailLog(ctx, db.InsertEmailLogParams{
		CustomerID:     customer.ID,
		EmailType:      "initial",
		RecipientEmail: customer.Email,
		Provider:       "simulation",
		Status:         "sent",
		SentAt:         time.Now().UTC(),
	}); err != nil {
		t.Fatalf("InsertEmailLog: %v", err)
	}

	if err := st.DeleteCustomer(ctx, customer.ID); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}

	if _, err := q.GetCustomerByID(ctx, customer.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("customer still present: err = %v", err)
	}
	jobs, err := q.ListScheduledEmailsByCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListScheduledEmailsByCustomer: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("got %d scheduled emails after delete, want 0", len(jobs))
	}
	alerts, err := q.ListAlertsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListAlertsByUser: %v", err)
	}
	if len(alerts) != 0 {
		t.Errorf("got %d alerts after delete, want 0", len(alerts))
	}

	// The audit trail must survive the customer.
	logs, err := q.ListEmailLogsByCustomer(ctx, customer.ID)
	if err != nil {
		t.Fatalf("ListEmailLogsByCustomer: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("got %d email logs after delete, want 1", len(logs))
	}
}

func TestDeleteCustomer_Unknown(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	st := store.New(pool, db.New(pool))

	err := st.DeleteCustomer(ctx, uuid.New())
	if !errors.Is(err, store.ErrCustomerNotFound) {
		t.Fatalf("err = %v, want ErrCustomerNotFound", err)
	}
}
