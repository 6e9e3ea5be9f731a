package main

import (
	"fmt"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/config"
	appHTTP "github.com/emsuite/ems-backend-go/internal/handler/http"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/emsuite/ems-backend-go/internal/pkg/jwt"
	"github.com/emsuite/ems-backend-go/internal/repository/postgresql"
	reportService "github.com/emsuite/ems-backend-go/internal/service/report"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRepo, cfg.Report)

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(JWTService, reportHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
