package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingSink) Log(owner, action, entity, entityID string, metadata any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Owner: owner, Action: action, Entity: entity, EntityID: entityID, Metadata: metadata})
	return nil
}

func TestDispatcherDeliversOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Owner: "o1", Action: "appointment_created", Entity: "appointment", EntityID: "a1"})
	d.Dispatch(Event{Owner: "o1", Action: "comanda_closed", Entity: "comanda", EntityID: "c1"})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("delivered %d events, want 2", len(sink.events))
	}
	if sink.events[0].Action != "appointment_created" {
		t.Errorf("first action = %q", sink.events[0].Action)
	}
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestLoggerWritesRow(t *testing.T) {
	db := openDB(t)

	l := New(db)
	if err := l.Log("o1", "plan_changed", "profile", "p1", map[string]string{"plan": "team"}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	var row models.AuditLog
	if err := db.First(&row).Error; err != nil {
		t.Fatal(err)
	}
	if row.UserID != "o1" || row.Metadata != `{"plan":"team"}` {
		t.Errorf("row = %+v", row)
	}
}

func TestLoggerListFiltersAndPages(t *testing.T) {
	l := New(openDB(t))

	for i := 0; i < 3; i++ {
		l.Log("o1", "appointment_created", "appointment", "a", nil)
	}
	l.Log("o1", "comanda_closed", "comanda", "c1", nil)
	l.Log("o2", "appointment_created", "appointment", "b", nil)

	logs, total, err := l.List(context.Background(), "o1", Query{Action: "appointment_created", Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(logs) != 2 {
		t.Errorf("total = %d, page = %d", total, len(logs))
	}

	logs, _, _ = l.List(context.Background(), "o1", Query{Action: "appointment_created", Limit: 2, Page: 2})
	if len(logs) != 1 {
		t.Errorf("page 2 = %d rows, want 1", len(logs))
	}

	_, total, _ = l.List(context.Background(), "o1", Query{To: time.Now().Add(-time.Hour)})
	if total != 0 {
		t.Errorf("events before an hour ago = %d", total)
	}
}
