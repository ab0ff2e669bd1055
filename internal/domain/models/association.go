package models

// Association is the organisation that runs excursions; its branding is
// printed on receipts.
type Association struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Logo         string `json:"logo,omitempty"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// AssociationProfileInput is the profile update payload. Logo is a data-URL,
// an http(s) URL, or empty to remove it.
type AssociationProfileInput struct {
	Name    string `json:"name" validate:"required,max=150"`
	Logo    string `json:"logo" validate:"omitempty"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Address string `json:"address" validate:"omitempty,max=255"`
}
