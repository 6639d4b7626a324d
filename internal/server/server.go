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

	"github.com/f1tipp/F1Tipp_Go/internal/betting"
	"github.com/f1tipp/F1Tipp_Go/internal/calendar"
	"github.com/f1tipp/F1Tipp_Go/internal/database"
	"github.com/f1tipp/F1Tipp_Go/internal/handler"
	"github.com/f1tipp/F1Tipp_Go/internal/livetiming"
	"github.com/f1tipp/F1Tipp_Go/internal/logger"
	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
	"github.com/f1tipp/F1Tipp_Go/internal/prediction"
	"github.com/f1tipp/F1Tipp_Go/internal/profile"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	predictionService prediction.Service
	bettingService    betting.Service
	settlementService settlement.Service
	calendarService   calendar.Service
	profileService    profile.Service
	liveService       livetiming.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, predictionService prediction.Service, bettingService betting.Service, settlementService settlement.Service, calendarService calendar.Service, profileService profile.Service, liveService livetiming.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Profile routes
		profileHandler := handler.NewProfileHandler(profileService)
		r.Route("/profile", func(r chi.Router) {
			r.Post("/register", profileHandler.HandleRegister)
			r.Get("/", profileHandler.HandleGetProfile)
		})
		r.Get("/standings", profileHandler.HandleStandings)

		// Race calendar routes
		raceHandler := handler.NewRaceHandler(calendarService)
		r.Route("/races", func(r chi.Router) {
			r.Get("/", raceHandler.HandleListRaces)
			r.Get("/next", raceHandler.HandleNextRace)
			r.Get("/get", raceHandler.HandleGetRace)
			r.Post("/sync", raceHandler.HandleSyncCalendar)
		})

		// Prediction routes
		predictionHandler := handler.NewPredictionHandler(predictionService)
		r.Route("/prediction", func(r chi.Router) {
			r.Post("/", predictionHandler.HandleSubmitPrediction)
			r.Get("/", predictionHandler.HandleGetPrediction)
			r.Get("/list", predictionHandler.HandleListUserPredictions)
			r.Post("/bonus", predictionHandler.HandleSubmitBonusPrediction)
			r.Get("/bonus", predictionHandler.HandleGetBonusPrediction)
			r.Post("/season", predictionHandler.HandleSubmitSeasonPrediction)
			r.Get("/season", predictionHandler.HandleGetSeasonPrediction)
		})

		// Bet routes
		betHandler := handler.NewBetHandler(bettingService)
		r.Route("/bet", func(r chi.Router) {
			r.Post("/", betHandler.HandlePlaceBet)
			r.Get("/", betHandler.HandleGetBet)
			r.Get("/list", betHandler.HandleListUserBets)
		})

		// Settlement routes
		settlementHandler := handler.NewSettlementHandler(settlementService, profileService)
		r.Route("/settlement", func(r chi.Router) {
			r.Post("/run", settlementHandler.HandleRunSettlement)
			r.Post("/bets", settlementHandler.HandleSettleBets)
			r.Post("/season", settlementHandler.HandleSettleSeason)
			r.Post("/recompute", settlementHandler.HandleRecomputeAggregates)
		})

		// Live timing routes
		liveHandler := handler.NewLiveHandler(liveService)
		r.Route("/live", func(r chi.Router) {
			r.Get("/snapshot", liveHandler.HandleLiveSnapshot)
			r.Get("/projection", liveHandler.HandleProjection)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		predictionService: predictionService,
		bettingService:    bettingService,
		settlementService: settlementService,
		calendarService:   calendarService,
		profileService:    profileService,
		liveService:       liveService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
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

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
