package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"scholarhub/internal/auth"
	"scholarhub/internal/config"
	"scholarhub/internal/data"
	"scholarhub/internal/handler"
	"scholarhub/internal/payment"
	"scholarhub/internal/service"
	"scholarhub/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	client, err := data.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to mongo", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error(ctx, "mongo disconnect failed", zap.Error(err))
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	userRepo := data.NewUserRepository(db)
	sessionRepo := data.NewSessionRepository(db)
	noteRepo := data.NewNoteRepository(db)
	materialRepo := data.NewMaterialRepository(db)
	bookingRepo := data.NewBookedSessionRepository(db)
	reviewRepo := data.NewReviewRepository(db)

	tokenManager := auth.NewTokenManager(cfg.AccessTokenSecret, time.Hour)
	intents := payment.NewStripeIntentCreator(cfg.StripeSecretKey)

	userService := service.NewUserService(userRepo)
	sessionService := service.NewSessionService(sessionRepo)
	noteService := service.NewNoteService(noteRepo)
	materialService := service.NewMaterialService(materialRepo)
	bookingService := service.NewBookingService(bookingRepo)
	reviewService := service.NewReviewService(reviewRepo)
	paymentService := service.NewPaymentService(intents)

	router := handler.NewRouter(handler.RouterDeps{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		TokenParser:    tokenManager,
		RoleStore:      userRepo,

		Auth:      handler.NewAuthHandler(tokenManager),
		Users:     handler.NewUserHandler(userService),
		Sessions:  handler.NewSessionHandler(sessionService),
		Notes:     handler.NewNoteHandler(noteService),
		Materials: handler.NewMaterialHandler(materialService),
		Bookings:  handler.NewBookingHandler(bookingService),
		Reviews:   handler.NewReviewHandler(reviewService),
		Payments:  handler.NewPaymentHandler(paymentService),
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}
