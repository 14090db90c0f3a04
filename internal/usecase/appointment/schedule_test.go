package appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	mu      sync.Mutex
	rows    map[string]models.Appointment
	writes  int
	listErr error
	saveErr error

	// gate, when set, blocks ListForDate for the given date until closed.
	gate map[string]chan struct{}
}

func newFakeRepo(rows ...models.Appointment) *fakeRepo {
	r := &fakeRepo{rows: map[string]models.Appointment{}}
	for _, ap := range rows {
		r.rows[ap.ID] = ap
	}
	return r
}

func (r *fakeRepo) ListForDate(ctx context.Context, owner, date string) ([]models.Appointment, error) {
	r.mu.Lock()
	gate := r.gate[date]
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []models.Appointment
	for _, ap := range r.rows {
		if ap.UserID == owner && ap.AppointmentDate == date {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, owner string, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.saveErr != nil {
		return r.saveErr
	}
	ap.UserID = owner
	r.rows[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, owner, id string, fields map[string]any) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	ap, ok := r.rows[id]
	if !ok || ap.UserID != owner {
		return nil, httperr.NotFoundError{Entity: "appointment", ID: id}
	}
	for k, v := range fields {
		switch k {
		case "client_name":
			ap.ClientName = v.(string)
		case "client_phone":
			ap.ClientPhone = v.(string)
		case "services":
			ap.Services = v.(models.ServiceItems)
		case "total_value":
			ap.TotalValue = v.(decimal.Decimal)
		case "appointment_date":
			ap.AppointmentDate = v.(string)
		case "appointment_time":
			ap.AppointmentTime = v.(string)
		case "observations":
			ap.Observations = v.(string)
		case "status":
			ap.Status = v.(string)
		}
	}
	r.rows[id] = ap
	return &ap, nil
}

func (r *fakeRepo) writeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

type fakeGateway struct {
	phone, message string
	err            error
}

func (g *fakeGateway) Send(ctx context.Context, phone, message string) error {
	g.phone, g.message = phone, message
	return g.err
}

// ======================================================
// HELPERS
// ======================================================

const owner = "owner-1"

var (
	brt   = time.FixedZone("BRT", -3*60*60)
	fixed = time.Date(2025, 3, 10, 14, 0, 0, 0, brt)
)

func item(name string, price int64) models.ServiceItem {
	return models.ServiceItem{ID: name, Name: name, Price: decimal.NewFromInt(price)}
}

func row(id, hhmm, status string, prices ...int64) models.Appointment {
	var items models.ServiceItems
	for i, p := range prices {
		items = append(items, item(fmt.Sprintf("s%d", i), p))
	}
	return models.Appointment{
		ID:              id,
		UserID:          owner,
		ClientName:      "Cliente " + id,
		ClientPhone:     "11987654321",
		Services:        items,
		TotalValue:      items.Total(),
		AppointmentDate: "2025-03-10",
		AppointmentTime: hhmm,
		Status:          status,
	}
}

func newTestSchedule(repo *fakeRepo, gw *fakeGateway) *Schedule {
	n := 0
	return NewSchedule(owner, repo, gw, nil, brt,
		WithClock(func() time.Time { return fixed }),
		WithIDs(func() string { n++; return fmt.Sprintf("new-%d", n) }),
	)
}

func ids(list []models.Appointment) []string {
	out := make([]string, len(list))
	for i, ap := range list {
		out[i] = ap.ID
	}
	return out
}

func validDraft() domain.Draft {
	return domain.Draft{
		ClientName:  "Ana",
		ClientPhone: "(11) 98765-4321",
		Services:    models.ServiceItems{item("Corte", 40), item("Escova", 25)},
		Date:        "2025-03-10",
		Time:        "16:00",
	}
}

// ======================================================
// TESTS
// ======================================================

func TestNewScheduleDefaultsToToday(t *testing.T) {
	s := newTestSchedule(newFakeRepo(), nil)
	if got := s.SelectedDate(); got != "2025-03-10" {
		t.Errorf("selected date = %q", got)
	}
}

func TestLoadDayOrdersByTime(t *testing.T) {
	repo := newFakeRepo(row("c", "17:00", ""), row("a", "08:00", ""), row("b", "12:30", ""))
	s := newTestSchedule(repo, nil)

	got, err := s.LoadDay(context.Background(), "2025-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ids(got)) != "[a b c]" {
		t.Errorf("order = %v", ids(got))
	}
	if s.Loading() {
		t.Error("loading flag left on")
	}
}

func TestLoadDayFailureClearsList(t *testing.T) {
	repo := newFakeRepo(row("a", "08:00", ""))
	s := newTestSchedule(repo, nil)
	if _, err := s.LoadDay(context.Background(), "2025-03-10"); err != nil {
		t.Fatal(err)
	}

	repo.listErr = errors.New("JWT expired")
	_, err := s.LoadDay(context.Background(), "2025-03-10")

	var fe httperr.FetchError
	if !errors.As(err, &fe) || fe.Error() != "JWT expired" {
		t.Fatalf("err = %v, want FetchError with store message", err)
	}
	if len(s.Appointments()) != 0 {
		t.Error("list not cleared after failed load")
	}
}

func TestLoadDayDiscardsSupersededResponse(t *testing.T) {
	old := row("old", "09:00", "")
	old.AppointmentDate = "2025-03-09"
	repo := newFakeRepo(old, row("current", "10:00", ""))
	repo.gate = map[string]chan struct{}{"2025-03-09": make(chan struct{})}
	s := newTestSchedule(repo, nil)

	staleErr := make(chan error, 1)
	go func() {
		_, err := s.LoadDay(context.Background(), "2025-03-09")
		staleErr <- err
	}()

	// wait until the first load has registered its generation
	for s.SelectedDate() != "2025-03-09" {
		time.Sleep(time.Millisecond)
	}

	if _, err := s.LoadDay(context.Background(), "2025-03-10"); err != nil {
		t.Fatal(err)
	}
	close(repo.gate["2025-03-09"])

	if err := <-staleErr; !errors.Is(err, ErrStaleLoad) {
		t.Errorf("superseded load err = %v, want ErrStaleLoad", err)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[current]" {
		t.Errorf("list = %v", ids(s.Appointments()))
	}
	if s.SelectedDate() != "2025-03-10" {
		t.Errorf("selected = %s", s.SelectedDate())
	}
}

func TestCreateValidatesAndComputesTotal(t *testing.T) {
	repo := newFakeRepo()
	s := newTestSchedule(repo, nil)
	ctx := context.Background()

	if _, err := s.Create(ctx, domain.Draft{ClientName: "Ana"}); !httperr.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if repo.writeCount() != 0 {
		t.Fatal("invalid draft reached the store")
	}

	ap, err := s.Create(ctx, validDraft())
	if err != nil {
		t.Fatal(err)
	}
	if !ap.TotalValue.Equal(decimal.NewFromInt(65)) {
		t.Errorf("total = %s", ap.TotalValue)
	}
	if ap.Status != "scheduled" {
		t.Errorf("status = %q", ap.Status)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[new-1]" {
		t.Errorf("day not reloaded: %v", ids(s.Appointments()))
	}
}

func TestCreatePersistenceError(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("new row violates row-level security policy")
	s := newTestSchedule(repo, nil)

	_, err := s.Create(context.Background(), validDraft())
	var pe httperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want PersistenceError", err)
	}
}

func TestEditOverwritesAndRecomputesTotal(t *testing.T) {
	orig := row("a", "08:00", "present", 100)
	orig.Observations = "old note"
	repo := newFakeRepo(orig)
	s := newTestSchedule(repo, nil)

	d := validDraft()
	d.Services = models.ServiceItems{item("Unha", 20), item("Pé", 15)}
	updated, err := s.Edit(context.Background(), "a", d)
	if err != nil {
		t.Fatal(err)
	}

	if !updated.TotalValue.Equal(decimal.NewFromInt(35)) {
		t.Errorf("total = %s", updated.TotalValue)
	}
	if updated.Observations != "" {
		t.Errorf("observations not overwritten: %q", updated.Observations)
	}
	if updated.Status != "present" {
		t.Errorf("status changed without draft status: %q", updated.Status)
	}
	if updated.ClientName != "Ana" || updated.AppointmentTime != "16:00" {
		t.Errorf("fields not replaced: %+v", updated)
	}
}

func TestChangeStatusLastWriteWins(t *testing.T) {
	repo := newFakeRepo(row("a", "08:00", "", 50))
	s := newTestSchedule(repo, nil)
	ctx := context.Background()
	if _, err := s.LoadDay(ctx, "2025-03-10"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ChangeStatus(ctx, "a", domain.StatusPresent); err != nil {
		t.Fatal(err)
	}
	got, err := s.ChangeStatus(ctx, "a", domain.StatusAbsent)
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != "absent" || repo.rows["a"].Status != "absent" {
		t.Errorf("status = %q / stored %q", got.Status, repo.rows["a"].Status)
	}
	if s.Appointments()[0].Status != "absent" {
		t.Errorf("in-memory row = %q", s.Appointments()[0].Status)
	}
	if repo.rows["a"].ClientName != "Cliente a" {
		t.Error("status change touched other fields")
	}
}

func TestChangeStatusRejectsOtherStatuses(t *testing.T) {
	repo := newFakeRepo(row("a", "08:00", ""))
	s := newTestSchedule(repo, nil)

	for _, st := range []domain.Status{domain.StatusScheduled, domain.StatusRescheduled, "cancelled"} {
		if _, err := s.ChangeStatus(context.Background(), "a", st); !httperr.IsValidation(err) {
			t.Errorf("ChangeStatus(%q) err = %v", st, err)
		}
	}
	if repo.writeCount() != 0 {
		t.Error("rejected status reached the store")
	}
}

func TestChangeStatusFailureLeavesListUntouched(t *testing.T) {
	repo := newFakeRepo(row("a", "08:00", ""))
	s := newTestSchedule(repo, nil)
	ctx := context.Background()
	if _, err := s.LoadDay(ctx, "2025-03-10"); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ChangeStatus(ctx, "missing", domain.StatusPresent); !httperr.IsNotFound(err) {
		t.Errorf("err = %v, want NotFoundError", err)
	}

	repo.saveErr = errors.New("timeout")
	_, err := s.ChangeStatus(ctx, "a", domain.StatusPresent)
	var pe httperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Errorf("err = %v, want PersistenceError", err)
	}
	if s.Appointments()[0].Status != "" {
		t.Errorf("list mutated: %q", s.Appointments()[0].Status)
	}
}

func TestRescheduleInitiationWritesNothing(t *testing.T) {
	orig := row("a", "08:00", "", 40)
	repo := newFakeRepo(orig)
	s := newTestSchedule(repo, nil)

	intent := s.Reschedule(orig)

	if repo.writeCount() != 0 {
		t.Fatalf("initiation wrote %d times", repo.writeCount())
	}
	if intent.Next.ClientName != orig.ClientName || intent.Next.ClientPhone != orig.ClientPhone {
		t.Errorf("next draft not pre-seeded: %+v", intent.Next)
	}
	if intent.Next.Date != "" || intent.Next.Time != "" || len(intent.Next.Services) != 0 {
		t.Errorf("next draft should be blank: %+v", intent.Next)
	}
	if repo.rows["a"].Status != "" || repo.rows["a"].AppointmentDate != "2025-03-10" {
		t.Error("original mutated")
	}
}

func TestCompleteRescheduleIssuesTwoWrites(t *testing.T) {
	orig := row("a", "08:00", "", 40)
	repo := newFakeRepo(orig)
	s := newTestSchedule(repo, nil)

	intent := s.Reschedule(orig)
	intent.Next.Date = "2025-03-12"
	intent.Next.Time = "09:00"
	intent.Next.Services = models.ServiceItems{item("Corte", 40)}

	original, created, err := s.CompleteReschedule(context.Background(), intent)
	if err != nil {
		t.Fatal(err)
	}

	if repo.writeCount() != 2 {
		t.Errorf("writes = %d, want 2", repo.writeCount())
	}
	if original.Status != "rescheduled" || original.AppointmentDate != "2025-03-10" {
		t.Errorf("original = %+v", original)
	}
	if created.Status != "scheduled" || created.AppointmentDate != "2025-03-12" || created.ClientName != orig.ClientName {
		t.Errorf("created = %+v", created)
	}
}

func TestReorder(t *testing.T) {
	repo := newFakeRepo(row("a", "08:00", ""), row("b", "09:00", ""), row("c", "10:00", ""), row("d", "11:00", "rescheduled"))
	s := newTestSchedule(repo, nil)
	ctx := context.Background()
	if _, err := s.LoadDay(ctx, "2025-03-10"); err != nil {
		t.Fatal(err)
	}

	if err := s.Reorder(1, 1); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[a b c d]" {
		t.Errorf("(i,i) changed order: %v", ids(s.Appointments()))
	}

	if err := s.Reorder(0, 2); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[b c a d]" {
		t.Errorf("after 0→2: %v", ids(s.Appointments()))
	}

	if err := s.Reorder(2, 0); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[a b c d]" {
		t.Errorf("after 2→0: %v", ids(s.Appointments()))
	}

	if err := s.Reorder(3, 0); !httperr.IsBusiness(err, "reorder_locked") {
		t.Errorf("rescheduled move err = %v", err)
	}
	if err := s.Reorder(0, 4); !httperr.IsValidation(err) {
		t.Errorf("out of range err = %v", err)
	}
	if repo.writeCount() != 0 {
		t.Error("reorder persisted something")
	}

	if _, err := s.LoadDay(ctx, "2025-03-10"); err != nil {
		t.Fatal(err)
	}
	if err := s.Reorder(0, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadDay(ctx, "2025-03-10"); err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(ids(s.Appointments())) != "[a b c d]" {
		t.Errorf("reload must restore time order: %v", ids(s.Appointments()))
	}
}

func TestSendReminder(t *testing.T) {
	gw := &fakeGateway{}
	s := newTestSchedule(newFakeRepo(), gw)
	ap := row("a", "14:30", "")
	ap.ClientName = "Ana"

	if err := s.SendReminder(context.Background(), ap); err != nil {
		t.Fatal(err)
	}
	want := "Oi, Ana! Tudo pronto para te receber no salão 💇‍♀️\n📍 Seu horário é: 10/03, às 14:30\nPosso confirmar sua presença?"
	if gw.message != want {
		t.Errorf("message = %q", gw.message)
	}
	if gw.phone != ap.ClientPhone {
		t.Errorf("phone = %q", gw.phone)
	}

	gw.err = errors.New("dial tcp: timeout")
	if err := s.SendReminder(context.Background(), ap); !httperr.IsMessaging(err) {
		t.Errorf("err = %v, want MessagingError", err)
	}
}

func TestTotalsAndView(t *testing.T) {
	repo := newFakeRepo(
		row("a", "08:00", "present", 40, 20),
		row("b", "13:00", "absent", 30),
		row("c", "18:00", "", 50),
	)
	s := newTestSchedule(repo, nil)
	if _, err := s.LoadDay(context.Background(), "2025-03-10"); err != nil {
		t.Fatal(err)
	}

	tot := s.Totals()
	if tot.Count != 3 || tot.Attended != 1 {
		t.Errorf("count/attended = %d/%d", tot.Count, tot.Attended)
	}
	if !tot.Sum.Equal(decimal.NewFromInt(140)) || !tot.Earnings.Equal(decimal.NewFromInt(60)) {
		t.Errorf("sum/earnings = %s/%s", tot.Sum, tot.Earnings)
	}

	view := s.View()
	if !view.Appointments[0].StatusActions || view.Appointments[2].StatusActions {
		t.Errorf("status actions = %v, %v", view.Appointments[0].StatusActions, view.Appointments[2].StatusActions)
	}
	if view.Appointments[2].Status != "scheduled" {
		t.Errorf("empty status must read as scheduled, got %q", view.Appointments[2].Status)
	}
}
