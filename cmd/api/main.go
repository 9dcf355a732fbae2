package main

import (
	"fmt"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	appHTTP "github.com/stafftrack/attendance-backend-go/internal/handler/http"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/stafftrack/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/stafftrack/attendance-backend-go/internal/service/dashboard"
	reportService "github.com/stafftrack/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo)
	reportSvc := reportService.NewReportService(attendanceRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL: cfg.App.FrontendURL,
		Environment: cfg.App.Env,
	}, jwtService, authHandler, attendanceHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
