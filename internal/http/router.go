package api

import (
	"log"
	stdhttp "net/http"

	intconfig "busexcursion/internal/config"
	h "busexcursion/internal/http/handlers"
	"busexcursion/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(hd.Metrics), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if env.MetricsEnabled && hd.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hd.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", hd.Register)
		auth.POST("/login", hd.Login)

		secured := api.Group("")
		secured.Use(middleware.RequireAssociation(hd.ParseToken))

		// Association profile
		secured.GET("/association", hd.GetAssociation)
		secured.PUT("/association", hd.UpdateAssociation)

		// Excursions
		excursions := secured.Group("/excursions")
		excursions.GET("", hd.ListExcursions)
		excursions.POST("", hd.CreateExcursion)
		excursions.GET("/:id", hd.GetExcursion)
		excursions.PUT("/:id", hd.UpdateExcursion)
		excursions.DELETE("/:id", hd.DeleteExcursion)

		// Seats & passengers
		excursions.GET("/:id/passengers", hd.ListPassengers)
		excursions.DELETE("/:id/passengers", hd.ClearPassengers)
		excursions.PUT("/:id/seats/:seat", hd.AssignSeat)
		excursions.DELETE("/:id/seats/:seat", hd.ClearSeat)

		// Seat maps
		excursions.GET("/:id/seatmap", hd.InteractiveSeatMap)
		excursions.GET("/:id/seatmap/print", hd.PrintSeatMap)
		excursions.GET("/:id/seatmap/print.pdf", hd.PrintSeatMapPDF)

		// Receipts
		excursions.GET("/:id/receipts", hd.PassengerReceipts)
		secured.GET("/receipts/blank", hd.BlankReceipts)

		secured.GET("/stops/color", hd.StopColor)
	}

	return r
}
