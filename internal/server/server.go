package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agroklass/SmartFarm_Go/internal/catalog"
	"github.com/agroklass/SmartFarm_Go/internal/database"
	"github.com/agroklass/SmartFarm_Go/internal/farm"
	"github.com/agroklass/SmartFarm_Go/internal/handler"
	"github.com/agroklass/SmartFarm_Go/internal/inventory"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/metrics"
	"github.com/agroklass/SmartFarm_Go/internal/pet"
	"github.com/agroklass/SmartFarm_Go/internal/progression"
	"github.com/agroklass/SmartFarm_Go/internal/task"
	"github.com/agroklass/SmartFarm_Go/internal/user"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(
	port int,
	apiKey string,
	dbPool database.Pool,
	userSvc user.Service,
	inventorySvc inventory.Service,
	farmSvc farm.Service,
	petSvc pet.Service,
	catalogSvc catalog.Service,
	progressionSvc progression.Service,
	taskSvc task.Service,
) *Server {
	r := chi.NewRouter()

	// Middleware executes in the order defined, outermost first.
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	farmHandler := handler.NewFarmHandler(farmSvc)
	petHandler := handler.NewPetHandler(petSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	progressionHandlers := handler.NewProgressionHandlers(progressionSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)

	r.Route("/api/v1", func(r chi.Router) {
		// User routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(userSvc))
			r.Get("/", handler.HandleGetUser(userSvc))
			r.Get("/inventory", handler.HandleGetInventory(inventorySvc))
		})

		// Catalog routes
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/zones", catalogHandler.HandleListZones)
			r.Get("/zones/{zoneID}/seeds", catalogHandler.HandleListSeeds)
			r.Get("/zones/{zoneID}/animals", catalogHandler.HandleListAnimals)
			r.Get("/zones/{zoneID}/chains", catalogHandler.HandleListChains)
			r.Post("/invalidate-cache", catalogHandler.HandleInvalidateCache)
		})

		// Farm routes
		r.Route("/farm", func(r chi.Router) {
			r.Get("/zones/{zoneID}", farmHandler.HandleGetZoneState)
			r.Post("/plants", farmHandler.HandlePlantSeed)
			r.Post("/plants/{plantID}/harvest", farmHandler.HandleHarvestPlant)
			r.Post("/animals", farmHandler.HandlePlaceAnimal)
			r.Post("/animals/{placedID}/collect", farmHandler.HandleCollectAnimal)
			r.Post("/animals/{placedID}/feed", farmHandler.HandleFeedAnimal)
			r.Post("/productions", farmHandler.HandleStartProduction)
			r.Post("/productions/{productionID}/collect", farmHandler.HandleCollectProduction)
		})

		// Pet routes
		r.Route("/pet", func(r chi.Router) {
			r.Post("/", petHandler.HandleCreatePet)
			r.Get("/", petHandler.HandleGetPet)
			r.Post("/care", petHandler.HandleCarePet)
			r.Delete("/", petHandler.HandleDeletePet)
		})

		// Progression routes
		r.Route("/progress", func(r chi.Router) {
			r.Get("/", progressionHandlers.HandleGetAllProgress)
			r.Get("/{zoneID}", progressionHandlers.HandleGetZoneProgress)
		})

		// Task routes
		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.HandleCreateTask)
			r.Get("/zones/{zoneID}", taskHandler.HandleListTasks)
			r.Get("/zones/{zoneID}/pending", taskHandler.HandleListPending)
			r.Post("/{taskID}/submit", taskHandler.HandleSubmitTask)
			r.Get("/submissions", taskHandler.HandleListSubmissions)
			r.Post("/submissions/{submissionID}/grade", taskHandler.HandleGradeSubmission)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics endpoints are scraped constantly; logging
		// them drowns everything else.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
