package app

import (
	"time"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/ironclub/gym-server/internal/adapters/config"
	httpController "github.com/ironclub/gym-server/internal/adapters/controller/http"
	redisStorage "github.com/ironclub/gym-server/internal/adapters/database/redis"
	"github.com/ironclub/gym-server/pkg/logger"
	"github.com/ironclub/gym-server/pkg/logger/types"
)

type App struct {
	DB         *gorm.DB
	Redis      *redisStorage.Client
	SMTPDialer *gomail.Dialer
	Logger     *types.Logger

	server        *httpController.Server
	startNotifier func()
	addr          string
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}

	app := &App{
		DB:         cfg.Database,
		Redis:      cfg.Redis,
		SMTPDialer: cfg.SMTPDialer,
		Logger:     appLogger,
	}

	deps, startNotifier, err := buildServices(app)
	if err != nil {
		return nil, err
	}

	app.server = httpController.NewServer(*deps)
	app.startNotifier = startNotifier
	app.addr = viper.GetString("service.http.addr")
	if app.addr == "" {
		app.addr = ":8080"
	}
	return app, nil
}

// Start launches the expiry notice scheduler and blocks on the HTTP
// server.
func (a *App) Start() {
	a.startNotifier()
	if err := a.server.Run(a.addr); err != nil {
		a.Logger.Panicf("http server stopped: %v", err)
	}
}

// SessionTTL is how long issued sessions stay valid.
func SessionTTL() time.Duration {
	hours := viper.GetInt("service.auth.session-ttl-hours")
	if hours <= 0 {
		hours = 72
	}
	return time.Duration(hours) * time.Hour
}
