package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/voyage-hq/voyage-api/internal/config"
	"github.com/voyage-hq/voyage-api/internal/database"
	"github.com/voyage-hq/voyage-api/internal/handler"
	"github.com/voyage-hq/voyage-api/internal/middleware"
	"github.com/voyage-hq/voyage-api/internal/models"
	"github.com/voyage-hq/voyage-api/internal/repository"
	"github.com/voyage-hq/voyage-api/internal/router"
	"github.com/voyage-hq/voyage-api/internal/service"
	"github.com/voyage-hq/voyage-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Faculty{},
		&models.Program{},
		&models.Course{},
		&models.Content{},
		&models.Student{},
		&models.Assignment{},
		&models.StudentAssignment{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())
	crossref := utils.NewCrossRef("/admin")

	facultyRepo := repository.NewFacultyRepository(db)
	programRepo := repository.NewProgramRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	contentRepo := repository.NewContentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewStudentAssignmentRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	activityService := service.NewActivityService(activityRepo, logger)
	facultyService := service.NewFacultyService(facultyRepo, crossref, logger)
	programService := service.NewProgramService(programRepo, activityService, crossref, logger)
	courseService := service.NewCourseService(courseRepo, validate, activityService, crossref, logger)
	contentService := service.NewContentService(contentRepo, crossref, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, validate, activityService, crossref, logger)
	studentService := service.NewStudentService(studentRepo, submissionRepo, redisClient, cfg.DashboardCacheTTL, crossref, logger)
	gradingService := service.NewGradingService(submissionRepo, validate, activityService, logger)
	seedService := service.NewSeedService(service.SeedRepositories{
		Programs:    programRepo,
		Courses:     courseRepo,
		Faculty:     facultyRepo,
		Content:     contentRepo,
		Students:    studentRepo,
		Assignments: assignmentRepo,
		Submissions: submissionRepo,
	}, cfg.SeedEnabled, cfg.SeedToken, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		FacultyHandler:    handler.NewFacultyHandler(facultyService, logger),
		ProgramHandler:    handler.NewProgramHandler(programService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		ContentHandler:    handler.NewContentHandler(contentService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		GradingHandler:    handler.NewGradingHandler(gradingService, logger),
		ActivityHandler:   handler.NewActivityHandler(activityService, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
