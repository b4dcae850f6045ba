package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shiftwise/wfm-backend-go/internal/config"
	appHTTP "github.com/shiftwise/wfm-backend-go/internal/handler/http"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/database"
	"github.com/shiftwise/wfm-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/wfm-backend-go/internal/repository/postgresql"
	paycalcService "github.com/shiftwise/wfm-backend-go/internal/service/paycalc"
	payruleService "github.com/shiftwise/wfm-backend-go/internal/service/payrule"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "wfm-backend"),
	)

	payRuleRepo := postgresql.NewPayRuleRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payCalcRepo := postgresql.NewPayCalculationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	thresholds := paycalcService.Thresholds{
		Regular:    cfg.Payroll.RegularDailyHours,
		DoubleTime: cfg.Payroll.DoubleTimeDailyHours,
	}
	payRuleSvc := payruleService.NewPayRuleService(payRuleRepo, payCalcRepo)
	payCalcSvc := paycalcService.NewCalcService(
		payRuleRepo,
		timeEntryRepo,
		employeeRepo,
		payCalcRepo,
		thresholds,
		cfg.Payroll.CalcWorkers,
		logger,
	)

	payRuleHandler := appHTTP.NewPayRuleHandler(payRuleSvc)
	payCalcHandler := appHTTP.NewPayCalcHandler(payCalcSvc)

	router := appHTTP.NewRouter(JWTService, payRuleHandler, payCalcHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("env", cfg.App.Env))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
	}
}
