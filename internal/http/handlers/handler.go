package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/http/middleware"
	"busexcursion/internal/metrics"
	"busexcursion/internal/receipts"
	"busexcursion/internal/repositories"
	"busexcursion/internal/services"
)

// Handler carries what the endpoints share. A nil DB falls back to the
// process-wide connection.
type Handler struct {
	DB        *sql.DB
	JWTSecret []byte
	JWTTTL    time.Duration
	Geometry  receipts.Geometry
	Logos     services.LogoResolver
	Metrics   *metrics.Collector
}

func (h *Handler) associations() repositories.AssociationRepository {
	return repositories.AssociationRepository{DB: h.DB}
}

func (h *Handler) excursions() repositories.ExcursionRepository {
	return repositories.ExcursionRepository{DB: h.DB}
}

func (h *Handler) passengers() repositories.PassengerRepository {
	return repositories.PassengerRepository{DB: h.DB}
}

func (h *Handler) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Associations: h.associations(),
		Secret:       h.JWTSecret,
		TTL:          h.JWTTTL,
		RequestID:    middleware.GetRequestID(c),
	}
}

// ParseToken is the middleware's token parser.
func (h *Handler) ParseToken(token string) (int64, error) {
	return services.AuthService{Secret: h.JWTSecret}.ParseToken(token)
}

func (h *Handler) excursionService(c *gin.Context) services.ExcursionService {
	return services.ExcursionService{
		Excursions: h.excursions(),
		Passengers: h.passengers(),
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) passengerService(c *gin.Context) services.PassengerService {
	return services.PassengerService{
		Excursions: h.excursions(),
		Passengers: h.passengers(),
		RequestID:  middleware.GetRequestID(c),
	}
}

func (h *Handler) seatMapService(c *gin.Context) services.SeatMapService {
	return services.SeatMapService{
		Associations: h.associations(),
		Excursions:   h.excursions(),
		Passengers:   h.passengers(),
		Metrics:      h.Metrics,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (h *Handler) receiptService(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{
		Associations: h.associations(),
		Excursions:   h.excursions(),
		Passengers:   h.passengers(),
		Sequence:     repositories.ReceiptSequence{Settings: repositories.SettingsRepository{DB: h.DB}},
		Logos:        h.Logos,
		Engine:       receipts.NewEngine(h.Geometry),
		Metrics:      h.Metrics,
		RequestID:    middleware.GetRequestID(c),
	}
}
