package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "bizlend-backend/internal/adapter/http"
	"bizlend-backend/internal/adapter/middleware"
	"bizlend-backend/internal/auth"
	"bizlend-backend/internal/auth/social"
	"bizlend-backend/internal/config"
	"bizlend-backend/internal/domain/authorization"
	businessdomain "bizlend-backend/internal/domain/business"
	employeedomain "bizlend-backend/internal/domain/employee"
	loandomain "bizlend-backend/internal/domain/loan"
	locationdomain "bizlend-backend/internal/domain/location"
	userdomain "bizlend-backend/internal/domain/user"
	"bizlend-backend/internal/infrastructure/cache"
	"bizlend-backend/internal/infrastructure/db"
	businessuc "bizlend-backend/internal/usecase/business"
	employeeuc "bizlend-backend/internal/usecase/employee"
	loanuc "bizlend-backend/internal/usecase/loan"
	locationuc "bizlend-backend/internal/usecase/location"
	useruc "bizlend-backend/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	err = gdb.AutoMigrate(
		&userdomain.User{}, &authorization.Authorization{},
		&businessdomain.Business{}, &employeedomain.Employee{},
		&loandomain.Loan{}, &locationdomain.Location{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret)
	verifier := social.NewVerifier(social.Config{
		GoogleClientID: cfg.GoogleClientID,
		AppleClientID:  cfg.AppleClientID,
		CacheTTL:       cfg.JWKSCacheTTL,
		Redis:          rdb,
	})

	userUsecase := useruc.NewUsecase(gdb, tokens)

	handlers := httpadp.Handlers{
		Health:   httpadp.NewHandler(),
		User:     httpadp.NewUserHandler(userUsecase),
		Business: httpadp.NewBusinessHandler(businessuc.NewUsecase(gdb)),
		Employee: httpadp.NewEmployeeHandler(employeeuc.NewUsecase(gdb)),
		Loan:     httpadp.NewLoanHandler(loanuc.NewUsecase(gdb)),
		Location: httpadp.NewLocationHandler(locationuc.NewUsecase(gdb)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.RegisterRoutes(e, handlers,
		middleware.Session(tokens, userUsecase),
		middleware.Social(verifier),
	)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
