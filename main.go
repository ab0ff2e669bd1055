package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busexcursion/internal/config"
	intdb "busexcursion/internal/db"
	router "busexcursion/internal/http"
	"busexcursion/internal/http/handlers"
	"busexcursion/internal/metrics"
	"busexcursion/internal/receipts"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	geometry, err := intconfig.LoadReceiptGeometry(env.ReceiptConfig)
	if err != nil {
		log.Fatalf("Konfigurasi kwitansi tidak valid: %v", err)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatalf("Gagal konek ke database: %v", err)
	}
	defer intconfig.CloseDB()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := intdb.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		log.Fatalf("Gagal menyiapkan skema: %v", err)
	}
	cancelSchema()

	var mcol *metrics.Collector
	if env.MetricsEnabled {
		mcol = metrics.NewCollector()
	}

	hd := &handlers.Handler{
		DB:        db,
		JWTSecret: []byte(env.JWTSecret),
		JWTTTL:    env.JWTTTL,
		Geometry:  geometry,
		Logos:     receipts.LogoFetcher{Timeout: env.LogoFetchTimeout},
		Metrics:   mcol,
	}

	// Router (Gin engine)
	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
