package backup

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

type memObjects map[string][]byte

func (m memObjects) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	m[key] = body
	return "mem://" + key, nil
}

func TestExecuteArchivesEveryCollection(t *testing.T) {
	kv := store.NewMemoryKV()
	txs := store.NewLocalStore[models.Transaction](kv, "transactions")
	staff := store.NewLocalStore[models.Employee](kv, "staff")
	ctx := context.Background()

	txs.Insert(ctx, "o", &models.Transaction{ID: "t1", Kind: "income", Value: decimal.NewFromInt(10)})
	txs.Insert(ctx, "other", &models.Transaction{ID: "t2"})

	objects := memObjects{}
	uc := NewCreateBackup(objects, nil, txs, staff)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	res, err := uc.Execute(ctx, "o")
	if err != nil {
		t.Fatal(err)
	}
	if res.Key != "backups/o/20240301T123000Z.json" {
		t.Errorf("key = %q", res.Key)
	}

	var got Archive
	if err := json.Unmarshal(objects[res.Key], &got); err != nil {
		t.Fatal(err)
	}

	var rows []models.Transaction
	json.Unmarshal(got.Collections["transactions"], &rows)
	if len(rows) != 1 || rows[0].ID != "t1" {
		t.Errorf("transactions = %+v", rows)
	}
	if string(got.Collections["staff"]) != "[]" {
		t.Errorf("staff = %s", got.Collections["staff"])
	}
}
