package bootstrap

import (
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studiodesk-io/studiodesk/internal/config"
	"github.com/studiodesk-io/studiodesk/internal/dispatch"
	"github.com/studiodesk-io/studiodesk/internal/infra/db"
	"github.com/studiodesk-io/studiodesk/internal/infra/logger"
	"github.com/studiodesk-io/studiodesk/internal/modules/handler"
	"github.com/studiodesk-io/studiodesk/internal/modules/repo"
	"github.com/studiodesk-io/studiodesk/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// store (schema ensured inside Open)
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return db.Open(cfg, log)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ClientRepo, error) {
		return repo.NewClientRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.FinanceRepo, error) {
		return repo.NewFinanceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EquipmentRepo, error) {
		return repo.NewEquipmentRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TeamRepo, error) {
		return repo.NewTeamRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CalendarRepo, error) {
		return repo.NewCalendarRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ClientService, error) {
		return service.NewClientService(
			do.MustInvoke[repo.ClientRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(do.MustInvoke[repo.TaskRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.FinanceService, error) {
		return service.NewFinanceService(do.MustInvoke[repo.FinanceRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EquipmentService, error) {
		return service.NewEquipmentService(do.MustInvoke[repo.EquipmentRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		return service.NewTeamService(do.MustInvoke[repo.TeamRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CalendarService, error) {
		return service.NewCalendarService(do.MustInvoke[repo.CalendarRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ClientHandler, error) {
		return handler.NewClientHandler(do.MustInvoke[service.ClientService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FinanceHandler, error) {
		return handler.NewFinanceHandler(do.MustInvoke[service.FinanceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EquipmentHandler, error) {
		return handler.NewEquipmentHandler(do.MustInvoke[service.EquipmentService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CalendarHandler, error) {
		return handler.NewCalendarHandler(do.MustInvoke[service.CalendarService](i)), nil
	})

	// Dispatcher, populated once with every operation
	do.Provide(inj, func(i *do.Injector) (*dispatch.Dispatcher, error) {
		d := dispatch.New()
		do.MustInvoke[*handler.ClientHandler](i).Register(d)
		do.MustInvoke[*handler.ProjectHandler](i).Register(d)
		do.MustInvoke[*handler.TaskHandler](i).Register(d)
		do.MustInvoke[*handler.FinanceHandler](i).Register(d)
		do.MustInvoke[*handler.EquipmentHandler](i).Register(d)
		do.MustInvoke[*handler.TeamHandler](i).Register(d)
		do.MustInvoke[*handler.CalendarHandler](i).Register(d)
		return d, nil
	})

	return inj
}
