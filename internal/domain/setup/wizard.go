// Package setup is the three-step onboarding: establishment identity,
// professional categories, initial services.
package setup

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
)

const (
	StepIdentity   = 1
	StepCategories = 2
	StepServices   = 3
)

type Wizard struct {
	Step int `json:"step"`

	EstablishmentName string `json:"establishment_name"`
	ProfessionalName  string `json:"professional_name"`

	// Categories keeps display order; ServicesByCategory follows it.
	Categories         []string            `json:"categories"`
	ServicesByCategory map[string][]string `json:"services_by_category"`

	SelectedCategories []string `json:"selected_categories"`
	SelectedServices   []string `json:"selected_services"`
}

// NewWizard starts at step 1, prefilled from an existing profile.
func NewWizard(p *models.Profile) *Wizard {
	w := &Wizard{
		Step:               StepIdentity,
		ServicesByCategory: map[string][]string{},
	}
	for _, c := range defaultCatalog {
		w.Categories = append(w.Categories, c.Category)
		w.ServicesByCategory[c.Category] = append([]string(nil), c.Services...)
	}

	if p != nil {
		w.EstablishmentName = p.EstablishmentName
		w.ProfessionalName = p.DisplayName
		w.SelectedCategories = append([]string(nil), p.Categories...)
	}
	return w
}

// Next validates the current step before moving on.
func (w *Wizard) Next() error {
	switch w.Step {
	case StepIdentity:
		var missing []string
		if strings.TrimSpace(w.EstablishmentName) == "" {
			missing = append(missing, "establishment_name")
		}
		if strings.TrimSpace(w.ProfessionalName) == "" {
			missing = append(missing, "professional_name")
		}
		if len(missing) > 0 {
			return httperr.ErrValidation(missing...)
		}
	case StepCategories:
		if len(w.SelectedCategories) == 0 {
			return httperr.ErrValidation("categories")
		}
	default:
		return httperr.ErrBusiness("last_step")
	}

	w.Step++
	return nil
}

func (w *Wizard) Prev() {
	if w.Step > StepIdentity {
		w.Step--
	}
}

func (w *Wizard) ToggleCategory(name string) {
	w.SelectedCategories = toggle(w.SelectedCategories, name)
}

func (w *Wizard) ToggleService(name string) {
	w.SelectedServices = toggle(w.SelectedServices, name)
}

// AddCustomCategory adds and selects a new, empty category.
func (w *Wizard) AddCustomCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(w.Categories, name) {
		return false
	}
	w.Categories = append(w.Categories, name)
	w.ServicesByCategory[name] = []string{}
	w.SelectedCategories = append(w.SelectedCategories, name)
	return true
}

// AddCustomService adds and selects a service under an existing category.
func (w *Wizard) AddCustomService(category, name string) bool {
	name = strings.TrimSpace(name)
	services, ok := w.ServicesByCategory[category]
	if name == "" || !ok || slices.Contains(services, name) {
		return false
	}
	w.ServicesByCategory[category] = append(services, name)
	w.SelectedServices = append(w.SelectedServices, name)
	return true
}

// CategoryOf returns the first category listing service, in display order.
func (w *Wizard) CategoryOf(service string) string {
	for _, c := range w.Categories {
		if slices.Contains(w.ServicesByCategory[c], service) {
			return c
		}
	}
	return CustomCategory
}

// ReplacesServices tells whether completing now rewrites the catalog.
func (w *Wizard) ReplacesServices() bool {
	return w.Step == StepServices
}

func (w *Wizard) ValidateCompletion() error {
	if w.ReplacesServices() && len(w.SelectedServices) == 0 {
		return httperr.ErrValidation("services")
	}
	return nil
}

// CatalogServices are the services completion inserts, priced at zero.
func (w *Wizard) CatalogServices() []models.Service {
	out := make([]models.Service, 0, len(w.SelectedServices))
	for _, name := range w.SelectedServices {
		out = append(out, models.Service{
			Name:     name,
			Category: w.CategoryOf(name),
			Value:    decimal.Zero,
			Active:   true,
		})
	}
	return out
}

func toggle(list []string, v string) []string {
	if i := slices.Index(list, v); i >= 0 {
		return slices.Delete(slices.Clone(list), i, i+1)
	}
	return append(list, v)
}
