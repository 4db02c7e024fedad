package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/adapters/controller/http/handlers"
	"github.com/ironclub/gym-server/internal/adapters/controller/http/middleware"
	redisStorage "github.com/ironclub/gym-server/internal/adapters/database/redis"
	"github.com/ironclub/gym-server/internal/adapters/feed"
	"github.com/ironclub/gym-server/internal/domain/service"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

// Dependencies carries everything the HTTP layer needs wired in.
type Dependencies struct {
	Logger *types.Logger

	DB    *gorm.DB
	Redis *redisStorage.Client
	Feed  *redis.Client
	Live  *feed.Feed

	Users        *service.UserService
	Memberships  *service.MembershipService
	Schedule     *service.ScheduleService
	Attendance   *service.AttendanceService
	Reservations *service.ReservationService
	Payments     *service.PaymentService
	Events       *service.EventService
	Products     *service.ProductService
	Notify       *service.NotifyService

	JWTSecret  []byte
	SessionTTL time.Duration
	StaticDir  string
	LogoPath   string
	Debug      bool
}

type Server struct {
	logger *types.Logger
	engine *gin.Engine
}

func NewServer(deps Dependencies) *Server {
	if !deps.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	auth := middleware.NewAuth(deps.JWTSecret, deps.Redis.Sessions, deps.Users)

	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Users, deps.Memberships, deps.Redis.Sessions, deps.JWTSecret, deps.SessionTTL)
	userHandler := handlers.NewUserHandler(deps.Logger, deps.Users)
	scheduleHandler := handlers.NewScheduleHandler(deps.Logger, deps.Schedule)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Logger, deps.Attendance, deps.Users, deps.Live, deps.LogoPath)
	reservationHandler := handlers.NewReservationHandler(deps.Logger, deps.Reservations)
	paymentHandler := handlers.NewPaymentHandler(deps.Logger, deps.Payments)
	eventHandler := handlers.NewEventHandler(deps.Events)
	storeHandler := handlers.NewStoreHandler(deps.Logger, deps.Products)
	notificationHandler := handlers.NewNotificationHandler(deps.Notify)
	systemHandler := handlers.NewSystemHandler(deps.Logger, deps.DB, deps.Feed, deps.StaticDir)
	uploadHandler := handlers.NewUploadHandler(deps.Logger, deps.StaticDir)

	engine.GET("/health", systemHandler.Health)
	engine.GET("/manifest", systemHandler.Manifest)
	if deps.StaticDir != "" {
		engine.Static("/static", deps.StaticDir)
	}

	authGroup := engine.Group("/auth")
	{
		authGroup.POST("/sign-up", authHandler.SignUp)
		authGroup.POST("/sign-in", authHandler.SignIn)
		authGroup.DELETE("/sign-out", auth.Authenticate(), authHandler.SignOut)
	}

	engine.GET("/schedule/week", scheduleHandler.Week)
	engine.GET("/schedule/week.ics", scheduleHandler.WeekICS)
	engine.GET("/schedule/day", scheduleHandler.Day)
	engine.GET("/events", eventHandler.List)
	engine.GET("/events/upcoming", eventHandler.Upcoming)
	engine.GET("/events/:id", eventHandler.Get)
	engine.GET("/store/products", storeHandler.ListProducts)

	me := engine.Group("/me", auth.Authenticate())
	{
		me.GET("", userHandler.Me)
		me.GET("/checkin-code", attendanceHandler.MyCode)
		me.GET("/payments", paymentHandler.ListMine)
		me.GET("/notifications", notificationHandler.ListMine)
		me.POST("/notifications/:id/read", notificationHandler.MarkRead)
		me.GET("/reservations", reservationHandler.ListMine)
	}

	member := engine.Group("", auth.Authenticate())
	{
		member.POST("/reservations", reservationHandler.Book)
		member.DELETE("/reservations/:id", reservationHandler.Cancel)
		member.GET("/store/cart", storeHandler.GetCart)
		member.PUT("/store/cart", storeHandler.SaveCart)
		member.POST("/store/checkout", storeHandler.Checkout)
	}

	staff := engine.Group("/staff", auth.Authenticate(), auth.RequireStaff())
	{
		staff.POST("/attendance/mark", attendanceHandler.Mark)
		staff.POST("/attendance/check-in", attendanceHandler.CheckIn)
		staff.GET("/attendance", attendanceHandler.List)
		staff.GET("/attendance/stream", attendanceHandler.Stream)
	}

	admin := engine.Group("/admin", auth.Authenticate(), auth.RequireAdmin())
	{
		admin.GET("/users", userHandler.List)
		admin.GET("/users/:id", userHandler.Get)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.POST("/users/:id/authorize", userHandler.ToggleAuthorized)

		admin.POST("/schedule", scheduleHandler.Create)
		admin.PUT("/schedule/:id", scheduleHandler.Update)
		admin.DELETE("/schedule/:id", scheduleHandler.Delete)

		admin.GET("/attendance/export", attendanceHandler.Export)
		admin.GET("/reservations", reservationHandler.ListForDate)

		admin.POST("/payments", paymentHandler.Register)
		admin.GET("/payments", paymentHandler.ListAll)

		admin.POST("/events", eventHandler.Create)
		admin.PUT("/events/:id", eventHandler.Update)
		admin.DELETE("/events/:id", eventHandler.Delete)

		admin.POST("/uploads", uploadHandler.Upload)

		admin.POST("/store/products", storeHandler.CreateProduct)
		admin.PUT("/store/products/:id", storeHandler.UpdateProduct)
		admin.DELETE("/store/products/:id", storeHandler.DeleteProduct)
	}

	return &Server{
		logger: deps.Logger,
		engine: engine,
	}
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	s.logger.Infof("http server listening on %s", addr)
	return s.engine.Run(addr)
}
