package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Notifuse/emailbuilder/config"
	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/internal/editor"
	"github.com/Notifuse/emailbuilder/internal/service"
	"github.com/Notifuse/emailbuilder/pkg/logger"
	"github.com/Notifuse/emailbuilder/pkg/mjml"
	"github.com/Notifuse/emailbuilder/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger

	// Methods for initialization steps
	InitTracing() error
	InitServices() error

	// Service getters used by the commands
	GetTemplateService() *service.TemplateService
	GetContactService() domain.ContactService
	GetContactGroupService() domain.ContactGroupService
	GetCampaignService() domain.CampaignService
	GetPreviewService() *service.PreviewService

	NewEditorSession(opts ...editor.Option) *editor.Session
}

// App encapsulates the application dependencies and configuration
type App struct {
	config     *config.Config
	logger     logger.Logger
	httpClient domain.HTTPClient
	tokens     domain.TokenProvider

	// Services
	templateService     *service.TemplateService
	contactService      *service.ContactService
	contactGroupService *service.ContactGroupService
	campaignService     *service.CampaignService
	previewService      *service.PreviewService

	stopTracing func()
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithHTTPClient sets the client used to reach the backend
func WithHTTPClient(client domain.HTTPClient) AppOption {
	return func(a *App) {
		a.httpClient = client
	}
}

// WithTokenProvider sets where the backend bearer token comes from
func WithTokenProvider(tokens domain.TokenProvider) AppOption {
	return func(a *App) {
		a.tokens = tokens
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	app := &App{
		config:      cfg,
		logger:      logger.NewLoggerWithLevel(cfg.LogLevel),
		stopTracing: func() {},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	stop, err := tracing.InitTracing(a.config.Tracing, a.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.stopTracing = stop

	if a.config.Tracing.Enabled {
		a.logger.WithField("trace_exporter", a.config.Tracing.TraceExporter).
			WithField("sampling_rate", a.config.Tracing.SamplingProbability).
			Info("Tracing initialized successfully")
	}
	return nil
}

// InitServices creates the backend client and the services built on it.
// The backend URL is only checked by the commands that call the backend.
func (a *App) InitServices() error {
	if a.httpClient == nil {
		client := &http.Client{Timeout: a.config.Backend.Timeout}
		if a.config.Tracing.Enabled {
			client = tracing.WrapHTTPClient(client)
		}
		a.httpClient = client
	}
	if a.tokens == nil {
		a.tokens = service.NewStaticTokenProvider(a.config.Backend.APIToken)
	}

	apiClient := service.NewAPIClient(a.config.Backend.URL, a.httpClient, a.tokens, a.logger.WithField("component", "api"))

	a.templateService = service.NewTemplateService(apiClient, a.logger)
	a.contactService = service.NewContactService(apiClient, a.logger)
	a.contactGroupService = service.NewContactGroupService(apiClient, a.logger)
	a.campaignService = service.NewCampaignService(apiClient, a.templateService, a.contactGroupService, a.logger)

	compiler := mjml.NewCompiler(mjml.NewLiquidEngineWithOptions(a.config.Preview.RenderTimeout, a.config.Preview.MaxTemplateSize))
	a.previewService = service.NewPreviewService(a.templateService, compiler, a.logger)

	return nil
}

// Initialize sets up every application component
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Debug("Starting email builder")

	if err := a.InitTracing(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	a.logger.Debug("Application successfully initialized")
	return nil
}

// Shutdown flushes the tracing exporter
func (a *App) Shutdown(ctx context.Context) error {
	if a.stopTracing != nil {
		a.stopTracing()
	}
	return ctx.Err()
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

func (a *App) GetTemplateService() *service.TemplateService {
	return a.templateService
}

func (a *App) GetContactService() domain.ContactService {
	return a.contactService
}

func (a *App) GetContactGroupService() domain.ContactGroupService {
	return a.contactGroupService
}

func (a *App) GetCampaignService() domain.CampaignService {
	return a.campaignService
}

func (a *App) GetPreviewService() *service.PreviewService {
	return a.previewService
}

// NewEditorSession starts an empty editing session
func (a *App) NewEditorSession(opts ...editor.Option) *editor.Session {
	return editor.NewSession(a.logger.WithField("component", "editor"), opts...)
}
