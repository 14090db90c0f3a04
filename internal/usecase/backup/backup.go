package backup

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/storage"
)

// Snapshotter is a local collection that can dump an owner's raw rows.
type Snapshotter interface {
	Collection() string
	Snapshot(ctx context.Context, owner string) (json.RawMessage, error)
}

type Archive struct {
	Owner       string                     `json:"owner"`
	CreatedAt   time.Time                  `json:"created_at"`
	Collections map[string]json.RawMessage `json:"collections"`
}

type Result struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type CreateBackup struct {
	collections []Snapshotter
	objects     storage.ObjectStore
	audit       *audit.Dispatcher
	now         func() time.Time
}

func NewCreateBackup(objects storage.ObjectStore, auditor *audit.Dispatcher, collections ...Snapshotter) *CreateBackup {
	return &CreateBackup{
		collections: collections,
		objects:     objects,
		audit:       auditor,
		now:         time.Now,
	}
}

func (uc *CreateBackup) Execute(ctx context.Context, owner string) (*Result, error) {
	if uc.objects == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}

	archive := Archive{
		Owner:       owner,
		CreatedAt:   uc.now().UTC(),
		Collections: make(map[string]json.RawMessage, len(uc.collections)),
	}
	for _, c := range uc.collections {
		raw, err := c.Snapshot(ctx, owner)
		if err != nil {
			return nil, httperr.FetchError{Err: err}
		}
		archive.Collections[c.Collection()] = raw
	}

	body, err := json.Marshal(archive)
	if err != nil {
		return nil, err
	}

	stamp := archive.CreatedAt.Format("20060102T150405Z")
	key := "backups/" + owner + "/" + stamp + ".json"
	url, err := uc.objects.Put(ctx, key, "application/json", body)
	if err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}

	uc.audit.Dispatch(audit.Event{
		Owner:    owner,
		Action:   "backup_created",
		Entity:   "backup",
		EntityID: stamp,
		Metadata: map[string]string{"key": key},
	})

	return &Result{Key: key, URL: url}, nil
}
