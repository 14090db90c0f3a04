package profile

import (
	"context"
	"errors"
	"io"

	"github.com/BruksfildServices01/studio-gestor/internal/httperr"
	"github.com/BruksfildServices01/studio-gestor/internal/media"
	"github.com/BruksfildServices01/studio-gestor/internal/models"
	"github.com/BruksfildServices01/studio-gestor/internal/storage"
	"github.com/BruksfildServices01/studio-gestor/internal/store"
)

// SetLogo converts the upload to webp, stores it and points the profile
// at it. objects is nil when no bucket is configured.
func (s *Service) SetLogo(
	ctx context.Context,
	owner string,
	objects storage.ObjectStore,
	upload io.Reader,
) (*models.Profile, error) {

	if objects == nil {
		return nil, httperr.ErrBusiness("storage_not_configured")
	}

	img, err := media.NormalizeLogo(upload)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedImage) {
			return nil, httperr.ErrValidation("logo")
		}
		return nil, httperr.ErrBusiness("invalid_logo")
	}

	url, err := objects.Put(ctx, "logos/"+owner+".webp", media.LogoContentType, img)
	if err != nil {
		return nil, httperr.PersistenceError{Err: err}
	}

	return s.Update(ctx, owner, store.Patch{"logo_url": url})
}
