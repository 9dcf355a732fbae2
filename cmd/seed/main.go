package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	"github.com/stafftrack/attendance-backend-go/internal/domain/attendance"
	"github.com/stafftrack/attendance-backend-go/internal/domain/user"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
)

type seedUser struct {
	Name         string
	Email        string
	Password     string
	Role         user.Role
	EmployeeCode string
	Department   string
}

var seedUsers = []seedUser{
	{Name: "Manager User", Email: "manager@test.com", Password: "manager123", Role: user.RoleManager},
	{Name: "John Doe", Email: "john@test.com", Password: "employee123", Role: user.RoleEmployee, EmployeeCode: "EMP001", Department: "Engineering"},
	{Name: "Jane Smith", Email: "jane@test.com", Password: "employee123", Role: user.RoleEmployee, EmployeeCode: "EMP002", Department: "Design"},
	{Name: "Bob Wilson", Email: "bob@test.com", Password: "employee123", Role: user.RoleEmployee, EmployeeCode: "EMP003", Department: "Engineering"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Start from a clean slate so the seed is repeatable
	if _, err := db.Exec(ctx, "TRUNCATE attendances, users CASCADE"); err != nil {
		log.Fatalf("Error clearing tables: %v", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	var employees []user.User
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing password: %v", err)
		}

		u := user.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         su.Role,
			Department:   su.Department,
		}
		if su.EmployeeCode != "" {
			code := su.EmployeeCode
			u.EmployeeCode = &code
		}

		created, err := userRepo.Create(ctx, u)
		if err != nil {
			log.Fatalf("Error creating user %s: %v", su.Email, err)
		}
		if created.Role == user.RoleEmployee {
			employees = append(employees, created)
		}
	}

	today := attendance.DayOf(time.Now())
	hours := decimal.NewFromFloat(8.5)

	for i := 0; i < 14; i++ {
		day := today.AddDate(0, 0, -i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}

		status := attendance.StatusPresent
		if i == 0 {
			status = attendance.StatusLate
		}

		for _, emp := range employees {
			checkIn := time.Date(day.Year(), day.Month(), day.Day(), 9, 30, 0, 0, day.Location())
			checkOut := time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, day.Location())
			h := hours

			record := attendance.Attendance{
				UserID:       emp.ID,
				Date:         day,
				CheckInTime:  &checkIn,
				CheckOutTime: &checkOut,
				Status:       status,
				TotalHours:   &h,
			}
			if _, err := attendanceRepo.Create(ctx, record); err != nil {
				log.Fatalf("Error creating attendance for %s on %s: %v", emp.Email, day.Format("2006-01-02"), err)
			}
		}
	}

	log.Println("Seed completed successfully!")
	log.Println("Manager: manager@test.com / manager123")
	log.Println("Employee: john@test.com / employee123")
}
