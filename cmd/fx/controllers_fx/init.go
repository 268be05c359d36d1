package controllers_fx

import (
	"go.uber.org/fx"

	"careercompass/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewEvaluationController),
	fx.Provide(controllers.NewRecommendationController),
	fx.Provide(controllers.NewCareerController),
	fx.Provide(controllers.NewSpecializationController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewTestController))
