package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/app"
	"github.com/natividadesusana/drivenpass-go/internal/config"
	"github.com/natividadesusana/drivenpass-go/internal/database"
	"github.com/natividadesusana/drivenpass-go/internal/domain"
	"github.com/natividadesusana/drivenpass-go/internal/health"
	"github.com/natividadesusana/drivenpass-go/internal/http/handler"
	"github.com/natividadesusana/drivenpass-go/internal/http/router"
	"github.com/natividadesusana/drivenpass-go/internal/observability"
	"github.com/natividadesusana/drivenpass-go/internal/repository"
	"github.com/natividadesusana/drivenpass-go/internal/security"
	"github.com/natividadesusana/drivenpass-go/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideReadinessProbeRunner,
)

var RepositorySet = wire.NewSet(
	repository.NewUserRepository,
	repository.NewCredentialRepository,
	repository.NewCardRepository,
	repository.NewNoteRepository,
)

var SecuritySet = wire.NewSet(
	provideJWTManager,
	provideFieldCipher,
)

var ServiceSet = wire.NewSet(
	service.NewUserService,
	service.NewAuthService,
	service.NewCardService,
	provideCredentialService,
	provideNoteService,
	provideCardVault,
	provideEraseService,
	wire.Bind(new(service.AuthServiceInterface), new(*service.AuthService)),
	wire.Bind(new(service.EraseServiceInterface), new(*service.EraseService)),
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	handler.NewCredentialHandler,
	handler.NewCardHandler,
	handler.NewNoteHandler,
	handler.NewEraseHandler,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret, cfg.JWTTTL)
}

func provideFieldCipher(cfg *config.Config) (domain.Cipher, error) {
	return security.NewFieldCipher(cfg.VaultEncryptionKey)
}

func provideCredentialService(repo repository.VaultRepository[*domain.Credential], cipher domain.Cipher) service.Vault[*domain.Credential] {
	return service.NewVaultService[*domain.Credential]("credential", repo, cipher)
}

func provideNoteService(repo repository.VaultRepository[*domain.Note], cipher domain.Cipher) service.Vault[*domain.Note] {
	return service.NewVaultService[*domain.Note]("note", repo, cipher)
}

func provideCardVault(cards *service.CardService) service.Vault[*domain.Card] {
	return cards
}

func provideEraseService(
	users *service.UserService,
	credentials service.Vault[*domain.Credential],
	cards service.Vault[*domain.Card],
	notes service.Vault[*domain.Note],
) *service.EraseService {
	return service.NewEraseService(users, credentials, cards, notes)
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	credentialHandler *handler.CredentialHandler,
	cardHandler *handler.CardHandler,
	noteHandler *handler.NoteHandler,
	eraseHandler *handler.EraseHandler,
	jwt *security.JWTManager,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	return router.Dependencies{
		AuthHandler:       authHandler,
		CredentialHandler: credentialHandler,
		CardHandler:       cardHandler,
		NoteHandler:       noteHandler,
		EraseHandler:      eraseHandler,
		JWTManager:        jwt,
		CORSOrigins:       cfg.CORSAllowedOrigins,
		Readiness:         readiness,
		EnableOTelHTTP:    cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 1)
	if c := health.NewDBChecker(db); c != nil {
		checkers = append(checkers, c)
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, checkers...)
}
