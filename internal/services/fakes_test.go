package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/pdfdoc"
)

type memAssociations struct {
	byID map[int64]models.Association
	next int64
}

func newMemAssociations(as ...models.Association) *memAssociations {
	m := &memAssociations{byID: map[int64]models.Association{}}
	for _, a := range as {
		m.byID[a.ID] = a
		if a.ID > m.next {
			m.next = a.ID
		}
	}
	return m
}

func (m *memAssociations) Create(_ context.Context, a models.Association) (int64, error) {
	for _, x := range m.byID {
		if x.Email == a.Email {
			return 0, domain.ConflictError{Resource: "association", Msg: "email sudah terdaftar"}
		}
	}
	m.next++
	a.ID = m.next
	m.byID[a.ID] = a
	return a.ID, nil
}

func (m *memAssociations) GetByID(_ context.Context, id int64) (models.Association, error) {
	a, ok := m.byID[id]
	if !ok {
		return a, domain.NotFoundError{Resource: "association"}
	}
	return a, nil
}

func (m *memAssociations) GetByEmail(_ context.Context, email string) (models.Association, error) {
	for _, a := range m.byID {
		if a.Email == strings.ToLower(strings.TrimSpace(email)) {
			return a, nil
		}
	}
	return models.Association{}, domain.NotFoundError{Resource: "association"}
}

func (m *memAssociations) UpdateProfile(_ context.Context, id int64, in models.AssociationProfileInput) error {
	a, ok := m.byID[id]
	if !ok {
		return domain.NotFoundError{Resource: "association"}
	}
	a.Name, a.Logo, a.Phone, a.Address = in.Name, in.Logo, in.Phone, in.Address
	m.byID[id] = a
	return nil
}

type memExcursions struct {
	byID map[int64]models.Excursion
	next int64
}

func newMemExcursions(es ...models.Excursion) *memExcursions {
	m := &memExcursions{byID: map[int64]models.Excursion{}}
	for _, e := range es {
		m.byID[e.ID] = e
		if e.ID > m.next {
			m.next = e.ID
		}
	}
	return m
}

func (m *memExcursions) Create(_ context.Context, e models.Excursion) (int64, error) {
	m.next++
	e.ID = m.next
	m.byID[e.ID] = e
	return e.ID, nil
}

func (m *memExcursions) GetByID(_ context.Context, associationID, id int64) (models.Excursion, error) {
	e, ok := m.byID[id]
	if !ok || e.AssociationID != associationID {
		return models.Excursion{}, domain.NotFoundError{Resource: "excursion"}
	}
	return e, nil
}

func (m *memExcursions) ListByAssociation(_ context.Context, associationID int64) ([]models.Excursion, error) {
	out := []models.Excursion{}
	for _, e := range m.byID {
		if e.AssociationID == associationID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memExcursions) Update(_ context.Context, e models.Excursion) error {
	m.byID[e.ID] = e
	return nil
}

func (m *memExcursions) Delete(ctx context.Context, associationID, id int64) error {
	if _, err := m.GetByID(ctx, associationID, id); err != nil {
		return err
	}
	delete(m.byID, id)
	return nil
}

type seatKey struct {
	excursion int64
	seat      int
}

type memPassengers struct {
	rows map[seatKey]models.Passenger
	// extra rows returned after the stored ones, to simulate dirty data
	extra []models.Passenger
}

func newMemPassengers(ps ...models.Passenger) *memPassengers {
	m := &memPassengers{rows: map[seatKey]models.Passenger{}}
	for _, p := range ps {
		m.rows[seatKey{p.ExcursionID, p.Seat}] = p
	}
	return m
}

func (m *memPassengers) ListByExcursion(_ context.Context, excursionID int64) ([]models.Passenger, error) {
	out := []models.Passenger{}
	for k, p := range m.rows {
		if k.excursion == excursionID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seat < out[j].Seat })
	return append(out, m.extra...), nil
}

func (m *memPassengers) Upsert(_ context.Context, p models.Passenger) error {
	m.rows[seatKey{p.ExcursionID, p.Seat}] = p
	return nil
}

func (m *memPassengers) DeleteSeat(_ context.Context, excursionID int64, seat int) error {
	k := seatKey{excursionID, seat}
	if _, ok := m.rows[k]; !ok {
		return domain.NotFoundError{Resource: "passenger"}
	}
	delete(m.rows, k)
	return nil
}

func (m *memPassengers) ClearByExcursion(_ context.Context, excursionID int64) (int64, error) {
	var n int64
	for k := range m.rows {
		if k.excursion == excursionID {
			delete(m.rows, k)
			n++
		}
	}
	return n, nil
}

func (m *memPassengers) MaxSeat(_ context.Context, excursionID int64) (int, error) {
	max := 0
	for k := range m.rows {
		if k.excursion == excursionID && k.seat > max {
			max = k.seat
		}
	}
	return max, nil
}

type memSequence struct {
	value   int
	saves   int
	saveErr error
}

func (m *memSequence) Current(context.Context) (int, error) { return m.value, nil }

func (m *memSequence) Save(_ context.Context, v int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = v
	m.saves++
	return nil
}

type failingLogos struct{ calls int }

func (f *failingLogos) Fetch(context.Context, string) (*pdfdoc.Image, error) {
	f.calls++
	return nil, domain.AssetFetchError{Source: "https://example.invalid/logo.png", Err: errors.New("timeout")}
}

type staticLogos struct{}

func (staticLogos) Fetch(context.Context, string) (*pdfdoc.Image, error) {
	return &pdfdoc.Image{Name: "logo", Type: "PNG", Data: []byte{0x89, 'P', 'N', 'G'}}, nil
}

func sampleAssociation() models.Association {
	return models.Association{ID: 1, Name: "Pro Loco Bellagio", Email: "info@proloco.it", Logo: "https://example.invalid/logo.png"}
}

func sampleExcursion() models.Excursion {
	return models.Excursion{
		ID: 10, AssociationID: 1, Name: "Gita al lago", Date: "2024-06-01", Time: "07:30",
		Place: "Como", Stops: []string{"Centro", "Stazione"}, Price: "25", AvailableSeats: 30,
	}
}
