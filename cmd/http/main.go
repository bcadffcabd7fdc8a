package main

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/delivery/http/routers"
	"carexpert-service/internal/app/drivers/database"
	"carexpert-service/internal/app/drivers/logger"
	"carexpert-service/internal/app/drivers/messaging"
	driverstorage "carexpert-service/internal/app/drivers/storage"
	"carexpert-service/internal/app/services/core/aichat"
	"carexpert-service/internal/app/services/core/appointments"
	"carexpert-service/internal/app/services/core/auth"
	"carexpert-service/internal/app/services/core/chat"
	"carexpert-service/internal/app/services/core/doctors"
	"carexpert-service/internal/app/services/core/notifications"
	"carexpert-service/internal/app/services/core/patients"
	"carexpert-service/internal/app/services/core/prescriptions"
	"carexpert-service/internal/app/services/core/reports"
	"carexpert-service/internal/app/services/core/session"
	"carexpert-service/internal/app/services/core/slots"
	"carexpert-service/internal/app/services/core/users"
	"carexpert-service/internal/app/services/shared/gemini"
	"carexpert-service/internal/app/services/shared/locker"
	"carexpert-service/internal/app/services/shared/ratelimiter"
	sharedredis "carexpert-service/internal/app/services/shared/redis"
	"carexpert-service/internal/app/services/shared/reportqueue"
	"carexpert-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("failed to load timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverstorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	bootstrapTheApp(workerCtx, config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("server listening", zap.String("addr", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("shutting down, waiting for in-flight requests")
	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(workerCtx context.Context, bootstrap config.Bootstrap) {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	objectStorage := storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	aiClient := gemini.NewClient(bootstrap.InternalConfig, log)

	reportQueue, err := reportqueue.NewService(bootstrap.RabbitMQ, log, bootstrap.InternalConfig.Report.WorkerCount)
	if err != nil {
		log.Fatal("failed to set up report queue", zap.Error(err))
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	slotRepository := slots.NewSlotMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	notificationRepository := notifications.NewNotificationMongoRepository(bootstrap.MongoDB, dbName)
	messageRepository := chat.NewChatMessageMongoRepository(bootstrap.MongoDB, dbName)
	roomRepository := chat.NewRoomMongoRepository(bootstrap.MongoDB, dbName)
	conversationRepository := chat.NewConversationMongoRepository(bootstrap.MongoDB, dbName)
	aiChatRepository := aichat.NewAiChatMongoRepository(bootstrap.MongoDB, dbName)
	reportRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, doctorRepository, patientRepository, roomRepository, redisRepository, bootstrap.InternalConfig, log)
	authController := auth.NewAuthController(log, bootstrap.InternalConfig, authUsecase)

	// Users
	userUsecase := users.NewUserUsecase(userRepository, doctorRepository, patientRepository, sessionService, log)
	userController := users.NewUserController(log, bootstrap.InternalConfig, userUsecase)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, log)
	doctorController := doctors.NewDoctorController(log, bootstrap.InternalConfig, doctorUsecase)

	// Slots
	slotUsecase := slots.NewSlotUsecase(slotRepository, doctorRepository, appointmentRepository, sessionService, log)
	slotController := slots.NewSlotController(log, bootstrap.InternalConfig, slotUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		slotRepository,
		doctorRepository,
		patientRepository,
		prescriptionRepository,
		notificationRepository,
		lockerService,
		sessionService,
		log,
	)
	appointmentController := appointments.NewAppointmentController(log, bootstrap.InternalConfig, appointmentUsecase)

	// Prescriptions
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, doctorRepository, sessionService, log)
	prescriptionController := prescriptions.NewPrescriptionController(log, bootstrap.InternalConfig, prescriptionUsecase)

	// Notifications
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, sessionService, log)
	notificationController := notifications.NewNotificationController(log, bootstrap.InternalConfig, notificationUsecase)

	// Chat
	hub := chat.NewHub(log)
	chatUsecase := chat.NewChatUsecase(messageRepository, roomRepository, conversationRepository, userRepository, log)
	chatController := chat.NewChatController(log, bootstrap.InternalConfig, chatUsecase, sessionService, hub)

	// AI triage
	aiChatUsecase := aichat.NewAiChatUsecase(aiChatRepository, aiClient, resourceLimiter, sessionService, log)
	aiChatController := aichat.NewAiChatController(log, aiChatUsecase)

	// Reports
	reportUsecase := reports.NewReportUsecase(reportRepository, objectStorage, reportQueue, sessionService, bootstrap.InternalConfig, log)
	reportController := reports.NewReportController(log, bootstrap.InternalConfig, reportUsecase)

	reportWorker := reports.NewWorker(
		reportQueue,
		reportRepository,
		objectStorage,
		reports.NewPlainTextExtractor(),
		aiClient,
		bootstrap.InternalConfig,
		log,
	)
	go reportWorker.Run(workerCtx)

	appMiddlewares := middlewares.NewMiddlewares(log, sessionService, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, &routers.Controllers{
		Auth:         authController,
		User:         userController,
		Doctor:       doctorController,
		Slot:         slotController,
		Appointment:  appointmentController,
		Prescription: prescriptionController,
		Notification: notificationController,
		Chat:         chatController,
		AiChat:       aiChatController,
		Report:       reportController,
	})
}
