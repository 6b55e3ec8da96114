package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/starhealth/internal/api"
	"github.com/limbo/starhealth/internal/metrics"
	"github.com/limbo/starhealth/internal/repository"
	"github.com/limbo/starhealth/internal/service"
	"github.com/limbo/starhealth/internal/worker/codesweeper"
	"github.com/limbo/starhealth/pkg/cleanup"
	"github.com/limbo/starhealth/pkg/config"
	"github.com/limbo/starhealth/pkg/googleauth"
	jwtservice "github.com/limbo/starhealth/pkg/jwt_service"
	"github.com/limbo/starhealth/pkg/mailer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	if cfg.RunMigrations {
		if err = repository.Migrate(cfg, cfg.MigrationsDir); err != nil {
			log.Fatal(err)
		}
	}
	pool, err := repository.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	var codeMailer metrics.CodeMailer
	mailCfg := mailer.Config{
		APIKey:         cfg.SendgridAPIKey,
		From:           cfg.MailFrom,
		FromName:       cfg.MailFromName,
		CodeTTLMinutes: int(cfg.VerificationCodeTTL / time.Minute),
	}
	if cfg.SendgridAPIKey != "" {
		codeMailer = mailer.NewSendgrid(mailCfg)
	} else {
		slog.Warn("SENDGRID_API_KEY is not set, codes will only be logged")
		codeMailer = mailer.NewLogMailer(slog.Default())
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	gamificationRepo := repository.NewGamificationRepoWithConn(pool)

	gamificationService := service.NewGamificationService(gamificationRepo, loc)
	userService := service.NewUserService(service.UserServiceOptions{
		Users:        usersRepo,
		Gamification: gamificationService,
		Mailer:       metrics.CountCodes(codeMailer, collector),
		Verifier:     googleauth.New(cfg.GoogleAudiences()),
		CodeTTL:      cfg.VerificationCodeTTL,
	})
	medicationsService := service.NewMedicationsService(repository.NewMedicationsRepoWithConn(pool))
	remindersService := service.NewRemindersService(repository.NewRemindersRepoWithConn(pool), gamificationService, loc)

	sweeper := codesweeper.New(usersRepo, collector)
	if err = sweeper.Start(cfg.CodeSweepSchedule); err != nil {
		log.Fatal(err)
	}
	cleanup.Register(&cleanup.Job{Name: "stopping code sweeper", F: sweeper.Stop})

	limiter := api.NewIPRateLimiter(cfg.AuthRatePerMinute, 5*time.Minute)
	cleanup.Register(&cleanup.Job{Name: "stopping rate limiter", F: func() error {
		limiter.Stop()
		return nil
	}})

	serv := api.New(&api.ServicesList{
		UserService:         userService,
		MedicationsService:  medicationsService,
		RemindersService:    remindersService,
		GamificationService: gamificationService,
		JwtService:          jwtservice.New(cfg.JWTSecret, cfg.JWTTTL),
		Metrics:             collector,
		MetricsHandler:      metrics.Handler(reg),
		AuthLimiter:         limiter,
	})
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
