// Package app wires configuration, infrastructure and services into a
// runnable application. Transport adapters build on top of this.
package app

import (
	identityapp "github.com/planora/backend/internal/application/identity"
	planningapp "github.com/planora/backend/internal/application/planning"
	reportapp "github.com/planora/backend/internal/application/report"
	"github.com/planora/backend/internal/infrastructure/auth"
	"github.com/planora/backend/internal/infrastructure/config"
	"github.com/planora/backend/internal/infrastructure/logger"
	"github.com/planora/backend/internal/infrastructure/persistence"
	"github.com/planora/backend/internal/infrastructure/validation"
	"go.uber.org/zap"
)

// Application holds the wired services and the resources behind them
type Application struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *persistence.Database

	Accounts *identityapp.AccountService
	Invites  *identityapp.InviteService
	Projects *planningapp.ProjectService
	Tasks    *planningapp.TaskService
	Metrics  *reportapp.MetricsService
}

// New builds the application from configuration: logger, database
// connection, repositories and services.
func New(cfg *config.Config) (*Application, error) {
	log, err := logger.NewFromConfig(cfg.Log)
	if err != nil {
		return nil, err
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		_ = logger.Sync(log)
		return nil, err
	}

	userRepo := persistence.NewGormUserRepository(db.DB)
	memberRepo := persistence.NewGormTeamMemberRepository(db.DB)
	inviteRepo := persistence.NewGormInviteRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	taskRepo := persistence.NewGormTaskRepository(db.DB)
	identityUow := persistence.NewGormIdentityUnitOfWork(db.DB)
	planningUow := persistence.NewGormPlanningUnitOfWork(db.DB)

	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewJWTService(cfg.JWT)
	validator := validation.New()

	return &Application{
		Config:   cfg,
		Logger:   log,
		DB:       db,
		Accounts: identityapp.NewAccountService(userRepo, memberRepo, identityUow, hasher, tokens, validator, log),
		Invites:  identityapp.NewInviteService(inviteRepo, userRepo, identityUow, hasher, validator, log),
		Projects: planningapp.NewProjectService(projectRepo, planningUow, validator, log),
		Tasks:    planningapp.NewTaskService(taskRepo, projectRepo, validator, log),
		Metrics:  reportapp.NewMetricsService(projectRepo, taskRepo, log),
	}, nil
}

// Close releases the database connection and flushes the logger
func (a *Application) Close() error {
	err := a.DB.Close()
	_ = logger.Sync(a.Logger)
	return err
}
