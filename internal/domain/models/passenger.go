package models

// Passenger is the occupant of one seat on an excursion.
type Passenger struct {
	ID          int64  `json:"id,omitempty"`
	ExcursionID int64  `json:"excursion_id,omitempty"`
	Seat        int    `json:"seat"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone,omitempty"`
	StopName    string `json:"stop_name,omitempty"`
}

// FullName joins name and surname, skipping empty parts.
func (p Passenger) FullName() string {
	switch {
	case p.Name == "":
		return p.Surname
	case p.Surname == "":
		return p.Name
	default:
		return p.Name + " " + p.Surname
	}
}

// PassengerInput carries the per-seat fields sent by the seat map on click.
type PassengerInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Surname  string `json:"surname" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	StopName string `json:"stop_name" validate:"omitempty,max=100"`
}
