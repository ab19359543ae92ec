package app

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/config"
	"github.com/natividadesusana/drivenpass-go/internal/observability"
)

// App holds everything main needs to run and later tear down the process.
type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
}

func New(cfg *config.Config, logger *slog.Logger, server *http.Server, runtime *observability.Runtime, db *gorm.DB) *App {
	return &App{Config: cfg, Logger: logger, Server: server, Observability: runtime, DB: db}
}
