package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/starhealth/internal/metrics"
	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/pkg/httputil"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	medicationsService  service.MedicationsServiceI
	remindersService    service.RemindersServiceI
	gamificationService service.GamificationServiceI
	jwtService          JWTServiceI
	metrics             metrics.MetricsCollector
	metricsHandler      http.Handler
	authLimiter         *IPRateLimiter
}

type ServicesList struct {
	UserService         service.UserServiceI
	MedicationsService  service.MedicationsServiceI
	RemindersService    service.RemindersServiceI
	GamificationService service.GamificationServiceI
	JwtService          JWTServiceI

	// Optional
	Metrics        metrics.MetricsCollector
	MetricsHandler http.Handler
	AuthLimiter    *IPRateLimiter
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		medicationsService:  servicesOptions.MedicationsService,
		remindersService:    servicesOptions.RemindersService,
		gamificationService: servicesOptions.GamificationService,
		jwtService:          servicesOptions.JwtService,
		metrics:             servicesOptions.Metrics,
		metricsHandler:      servicesOptions.MetricsHandler,
		authLimiter:         servicesOptions.AuthLimiter,
	}
	if s.metrics == nil {
		s.metrics = metrics.Noop{}
	}
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(middleware.RealIP)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)
	s.mx.Use(middleware.Recoverer)

	s.mx.Get("/health", s.Health)
	if s.metricsHandler != nil {
		s.mx.Method(http.MethodGet, "/metrics", s.metricsHandler)
	}

	s.mx.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if s.authLimiter != nil {
					r.Use(s.authLimiter.Middleware)
				}
				r.Post("/send-code", s.SendCode)
				r.Post("/verify-code", s.VerifyCode)
				r.Post("/send-reset-code", s.SendResetCode)
				r.Post("/reset-password", s.ResetPassword)
			})
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Post("/google", s.GoogleLogin)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Get("/profile", s.Profile)
				r.Patch("/profile", s.UpdateProfile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Route("/medications", func(r chi.Router) {
				r.Post("/", s.CreateMedication)
				r.Get("/", s.ListMedications)
				r.Get("/{id}", s.GetMedication)
				r.Put("/{id}", s.UpdateMedication)
				r.Delete("/{id}", s.DeleteMedication)
			})
			r.Route("/reminders", func(r chi.Router) {
				r.Get("/today", s.TodayReminders)
				r.Get("/all", s.AllReminders)
				r.Get("/history", s.ReminderHistory)
				r.Post("/mark-taken/{id}", s.MarkTaken)
				r.Delete("/delete/{id}", s.CancelReminder)
			})
			r.Route("/gamification", func(r chi.Router) {
				r.Get("/score", s.Score)
				r.Get("/planet", s.Planet)
				r.Get("/streak", s.Streak)
			})
		})
	})

	s.mx.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "route not found")
	})
}

// Handler exposes the router. MountEndpoints must be called first.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	s.MountEndpoints()
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown error: " + err.Error())
		return err
	}
	slog.Info("server stopped")
	return nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, "ok", map[string]any{
		"time": time.Now().UTC(),
	})
}
