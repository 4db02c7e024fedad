package app

import (
	"github.com/spf13/viper"

	httpController "github.com/ironclub/gym-server/internal/adapters/controller/http"
	postgresStorage "github.com/ironclub/gym-server/internal/adapters/database/postgres"
	"github.com/ironclub/gym-server/internal/adapters/feed"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/pkg/logger"
	"github.com/ironclub/gym-server/pkg/smtp"
)

func buildServices(a *App) (*httpController.Dependencies, func(), error) {
	userStorage := postgresStorage.NewUserStorage(a.DB)
	blockStorage := postgresStorage.NewClassBlockStorage(a.DB)
	attendanceStorage := postgresStorage.NewAttendanceStorage(a.DB)
	reservationStorage := postgresStorage.NewReservationStorage(a.DB)
	paymentStorage := postgresStorage.NewPaymentStorage(a.DB)
	eventStorage := postgresStorage.NewEventStorage(a.DB)
	productStorage := postgresStorage.NewProductStorage(a.DB)
	notificationStorage := postgresStorage.NewNotificationStorage(a.DB)

	feedLogger, err := logger.Named("feed")
	if err != nil {
		return nil, nil, err
	}
	attendanceFeed := feed.New(feedLogger, a.Redis.Feed)

	attendanceLogger, err := logger.Named("attendance")
	if err != nil {
		return nil, nil, err
	}
	notifyLogger, err := logger.Named("notify")
	if err != nil {
		return nil, nil, err
	}

	paymentLogger, err := logger.Named("payments")
	if err != nil {
		return nil, nil, err
	}

	smtpClient := smtp.NewClient(a.SMTPDialer)

	userService := service.NewUserService(userStorage)
	membershipService := service.NewMembershipService(userStorage)
	scheduleService := service.NewScheduleService(blockStorage)
	attendanceService := service.NewAttendanceService(attendanceLogger, attendanceStorage, attendanceFeed)
	notifyService := service.NewNotifyService(notifyLogger, notificationStorage, userStorage, smtpClient)
	paymentService := service.NewPaymentService(paymentLogger, paymentStorage, userStorage, notifyService)
	reservationService := service.NewReservationService(reservationStorage, blockStorage, userStorage)
	eventService := service.NewEventService(eventStorage)
	productService := service.NewProductService(productStorage, a.Redis.Carts, paymentService)

	deps := &httpController.Dependencies{
		Logger: a.Logger,

		DB:    a.DB,
		Redis: a.Redis,
		Feed:  a.Redis.Feed,
		Live:  attendanceFeed,

		Users:        userService,
		Memberships:  membershipService,
		Schedule:     scheduleService,
		Attendance:   attendanceService,
		Reservations: reservationService,
		Payments:     paymentService,
		Events:       eventService,
		Products:     productService,
		Notify:       notifyService,

		JWTSecret:  []byte(viper.GetString("service.auth.jwt-secret")),
		SessionTTL: SessionTTL(),
		StaticDir:  viper.GetString("service.http.static-dir"),
		LogoPath:   viper.GetString("service.http.logo-path"),
		Debug:      viper.GetBool("settings.debug"),
	}
	return deps, notifyService.StartExpiryScheduler, nil
}
