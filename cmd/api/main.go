package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shiftline-hr/workforce-backend-go/internal/config"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/employee"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/leave"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/schedule"
	"github.com/shiftline-hr/workforce-backend-go/internal/domain/timesheet"
	appHTTP "github.com/shiftline-hr/workforce-backend-go/internal/handler/http"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/database"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftline-hr/workforce-backend-go/internal/pkg/oauth"
	"github.com/shiftline-hr/workforce-backend-go/internal/repository/memory"
	"github.com/shiftline-hr/workforce-backend-go/internal/repository/postgresql"
	authService "github.com/shiftline-hr/workforce-backend-go/internal/service/auth"
	employeeService "github.com/shiftline-hr/workforce-backend-go/internal/service/employee"
	leaveService "github.com/shiftline-hr/workforce-backend-go/internal/service/leave"
	payrollService "github.com/shiftline-hr/workforce-backend-go/internal/service/payroll"
	scheduleService "github.com/shiftline-hr/workforce-backend-go/internal/service/schedule"
	timesheetService "github.com/shiftline-hr/workforce-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var (
		timeEntryRepo    timesheet.TimeEntryRepository
		scheduleRepo     schedule.ScheduleEntryRepository
		leaveRequestRepo leave.LeaveRequestRepository
		employeeRepo     employee.EmployeeRepository
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		timeEntryRepo, err = memory.NewTimeEntryRepository(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to open time entry store: ", err)
		}
		scheduleRepo, err = memory.NewScheduleEntryRepository(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to open schedule store: ", err)
		}
		leaveRequestRepo, err = memory.NewLeaveRequestRepository(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to open leave request store: ", err)
		}
		employeeRepo, err = memory.NewEmployeeRepository(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal("Failed to open employee store: ", err)
		}
	case config.StorageDriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		timeEntryRepo = postgresql.NewTimeEntryRepository(db)
		scheduleRepo = postgresql.NewScheduleEntryRepository(db)
		leaveRequestRepo = postgresql.NewLeaveRequestRepository(db)
		employeeRepo = postgresql.NewEmployeeRepository(db)
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	jwtSvc, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service: ", err)
	}
	googleSvc := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	timesheetSvc := timesheetService.NewTimesheetService(timeEntryRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	payrollSvc := payrollService.NewPayrollService(timesheetSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(employeeRepo, jwtSvc, googleSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, googleSvc, cfg.App.FrontendURL)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, employeeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		timesheetHandler,
		scheduleHandler,
		leaveHandler,
		payrollHandler,
		employeeHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
