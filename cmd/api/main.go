package main

import (
	"fmt"
	"net/http"

	"github.com/stafflog/attendance-backend-go/internal/config"
	appHTTP "github.com/stafflog/attendance-backend-go/internal/handler/http"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
	"github.com/stafflog/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafflog/attendance-backend-go/internal/repository/postgresql"
	reportService "github.com/stafflog/attendance-backend-go/internal/service/report"
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

	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(reportRepo)

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		reportHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
