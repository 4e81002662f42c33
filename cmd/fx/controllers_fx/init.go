package controllers_fx

import (
	"go.uber.org/fx"

	"carebuilds/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSolutionController),
	fx.Provide(controllers.NewJournalController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewDashboardController))
