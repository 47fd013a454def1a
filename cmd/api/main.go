package main

import (
	"fmt"
	"net/http"

	"github.com/serenity-spa/payout-backend-go/internal/config"
	appHTTP "github.com/serenity-spa/payout-backend-go/internal/handler/http"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/cron"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/jwt"
	"github.com/serenity-spa/payout-backend-go/internal/repository/postgresql"
	commissionService "github.com/serenity-spa/payout-backend-go/internal/service/commission"
	payoutService "github.com/serenity-spa/payout-backend-go/internal/service/payout"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	salesRepo := postgresql.NewSalesRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	optionRepo := postgresql.NewOptionRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	commissionSvc := commissionService.NewCommissionService(salesRepo, staffRepo, optionRepo)
	payoutSvc := payoutService.NewPayoutService(db, payoutRepo, staffRepo, commissionSvc)

	commissionHandler := appHTTP.NewCommissionHandler(commissionSvc)
	payoutHandler := appHTTP.NewPayoutHandler(payoutSvc)

	scheduler := cron.NewScheduler()
	cron.NewPayoutJobs(payoutSvc, cfg.Payout).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		commissionHandler,
		payoutHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
