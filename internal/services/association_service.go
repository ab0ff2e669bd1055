package services

import (
	"context"
	"fmt"
	"strings"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/utils"
)

type AssociationService struct {
	Associations AssociationStore
	RequestID    string
}

func (s AssociationService) GetProfile(ctx context.Context, associationID int64) (models.Association, error) {
	return s.Associations.GetByID(ctx, associationID)
}

// UpdateProfile accepts a logo as a data-URL, an http(s) URL or empty.
func (s AssociationService) UpdateProfile(ctx context.Context, associationID int64, in models.AssociationProfileInput) (models.Association, error) {
	if err := validateInput(in); err != nil {
		return models.Association{}, err
	}
	logo := strings.TrimSpace(in.Logo)
	if logo != "" && !isLogoSource(logo) {
		return models.Association{}, domain.ValidationError{Field: "logo", Msg: "harus data-URL gambar atau URL http(s)"}
	}
	in.Logo = logo
	if err := s.Associations.UpdateProfile(ctx, associationID, in); err != nil {
		return models.Association{}, err
	}
	utils.LogEvent(s.RequestID, "association", "update_profile", fmt.Sprintf("association_id=%d logo=%t", associationID, logo != ""))
	return s.Associations.GetByID(ctx, associationID)
}

func isLogoSource(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "data:image/") ||
		strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://")
}
