package main

import (
	"context"
	"infomed-service/internal/app/config"
	"infomed-service/internal/app/delivery/http/middlewares"
	"infomed-service/internal/app/delivery/http/routers"
	"infomed-service/internal/app/drivers/database"
	"infomed-service/internal/app/drivers/logger"
	"infomed-service/internal/app/services/core/auth"
	"infomed-service/internal/app/services/core/formularios"
	"infomed-service/internal/app/services/core/relatorios"
	"infomed-service/internal/app/services/core/respostas"
	"infomed-service/internal/app/services/core/users"
	"infomed-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Formulario
	formularioRepository := formularios.NewFormularioPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	formularioUsecase := formularios.NewFormularioUsecase(formularioRepository, redisRepository)
	formularioController := formularios.NewFormularioController(bootstrap.Logger, formularioUsecase)

	// Resposta
	respostaRepository := respostas.NewRespostaPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	respostaUsecase := respostas.NewRespostaUsecase(respostaRepository, formularioRepository)
	respostaController := respostas.NewRespostaController(bootstrap.Logger, respostaUsecase)

	// Relatorio
	relatorioRepository := relatorios.NewRelatorioPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	relatorioUsecase := relatorios.NewRelatorioUsecase(relatorioRepository)
	relatorioController := relatorios.NewRelatorioController(bootstrap.Logger, relatorioUsecase)

	// Usuario
	usuarioRepository := users.NewUsuarioPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	usuarioUsecase := users.NewUsuarioUsecase(usuarioRepository)
	usuarioController := users.NewUsuarioController(bootstrap.Logger, usuarioUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(usuarioRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		formularioController,
		respostaController,
		relatorioController,
		authController,
		usuarioController,
	)
}
