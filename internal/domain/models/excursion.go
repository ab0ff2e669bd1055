package models

// Excursion mirrors the excursions table. Stops is stored as a JSON array.
type Excursion struct {
	ID             int64    `json:"id"`
	AssociationID  int64    `json:"association_id"`
	Name           string   `json:"name"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Place          string   `json:"place"`
	Stops          []string `json:"stops"`
	Price          string   `json:"price"`
	AvailableSeats int      `json:"available_seats"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

// ExcursionInput is the create/update payload.
type ExcursionInput struct {
	Name           string   `json:"name" validate:"required,max=150"`
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string   `json:"time" validate:"required,datetime=15:04"`
	Place          string   `json:"place" validate:"required,max=150"`
	Stops          []string `json:"stops" validate:"dive,required,max=100"`
	Price          string   `json:"price" validate:"required,max=32"`
	AvailableSeats int      `json:"available_seats"`
}

// HasStop reports whether name is one of the excursion stops.
func (e Excursion) HasStop(name string) bool {
	for _, s := range e.Stops {
		if s == name {
			return true
		}
	}
	return false
}
