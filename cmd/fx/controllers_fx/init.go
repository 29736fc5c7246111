package controllers_fx

import (
	"go.uber.org/fx"

	"innkeep/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController))
