package setup

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-gestor/internal/audit"
	domain "github.com/BruksfildServices01/studio-gestor/internal/domain/setup"
	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
	"github.com/BruksfildServices01/studio-gestor/internal/usecase/profile"
)

// ======================================================
// USE CASE
// ======================================================

type CompleteSetup struct {
	profiles *profile.Service
	services store.Store[models.Service]
	audit    *audit.Dispatcher
	newID    func() string
}

func NewCompleteSetup(
	profiles *profile.Service,
	services store.Store[models.Service],
	auditor *audit.Dispatcher,
) *CompleteSetup {
	return &CompleteSetup{
		profiles: profiles,
		services: services,
		audit:    auditor,
		newID:    uuid.NewString,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CompleteSetup) Execute(
	ctx context.Context,
	owner string,
	w *domain.Wizard,
) (*models.Profile, error) {

	if err := w.ValidateCompletion(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Perfil
	// --------------------------------------------------
	p, err := uc.profiles.Update(ctx, owner, store.Patch{
		"establishment_name": w.EstablishmentName,
		"display_name":       w.ProfessionalName,
		"categories":         models.StringList(w.SelectedCategories),
		"setup_completed":    true,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Catálogo de serviços (só no passo 3)
	// --------------------------------------------------
	if w.ReplacesServices() {
		uc.clearServices(ctx, owner)

		for _, svc := range w.CatalogServices() {
			svc := svc
			svc.ID = uc.newID()
			if err := uc.services.Insert(ctx, owner, &svc); err != nil {
				return nil, httperr.PersistenceError{Err: err}
			}
		}
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Owner:    owner,
		Action:   "setup_completed",
		Entity:   "profile",
		EntityID: p.ID,
		Metadata: map[string]int{"services": len(w.SelectedServices)},
	})

	return p, nil
}

// clearServices removes the old catalog; failures only get logged and the
// setup carries on.
func (uc *CompleteSetup) clearServices(ctx context.Context, owner string) {
	old, err := uc.services.List(ctx, owner, store.Query{})
	if err != nil {
		log.Printf("setup: could not list old services for %s: %v", owner, err)
		return
	}
	for _, svc := range old {
		if err := uc.services.Delete(ctx, owner, svc.ID); err != nil {
			log.Printf("setup: could not delete service %s: %v", svc.ID, err)
		}
	}
}
