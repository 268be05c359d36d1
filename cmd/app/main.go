package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"careercompass/cmd/fx/catalog_fx"
	"careercompass/cmd/fx/clients_fx"
	"careercompass/cmd/fx/controllers_fx"
	"careercompass/cmd/fx/db_fx"
	"careercompass/cmd/fx/evaluation_fx"
	"careercompass/cmd/fx/favorite_fx"
	"careercompass/cmd/fx/memcache_fx"
	"careercompass/cmd/fx/recommendation_fx"
	"careercompass/internal/api/controllers"
	"careercompass/internal/infra"
	"careercompass/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		clients_fx.Module,
		memcache_fx.Module,
		evaluation_fx.Module,
		catalog_fx.Module,
		recommendation_fx.Module,
		favorite_fx.Module,
		controllers_fx.Module,

		fx.Invoke(infra.AutoMigrate),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	evaluationController *controllers.EvaluationController,
	recommendationController *controllers.RecommendationController,
	careerController *controllers.CareerController,
	specializationController *controllers.SpecializationController,
	favoriteController *controllers.FavoriteController,
	testController *controllers.TestController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		evaluationController,
		recommendationController,
		careerController,
		specializationController,
		favoriteController,
		testController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	evaluationController *controllers.EvaluationController,
	recommendationController *controllers.RecommendationController,
	careerController *controllers.CareerController,
	specializationController *controllers.SpecializationController,
	favoriteController *controllers.FavoriteController,
	testController *controllers.TestController) {

	evaluations := r.Group("/evaluations")
	evaluations.GET("/tests/:kind/start", evaluationController.StartTestHandler)
	evaluations.POST("/tests/:kind/users/:userId/submit", evaluationController.SubmitTestHandler)
	evaluations.GET("/users/:userId/history", evaluationController.GetHistoryHandler)
	evaluations.GET("/users/:userId/detail/:id", evaluationController.GetEvaluationDetailHandler)

	recommendations := r.Group("/recommendations")
	recommendations.GET("/careers/:userId", recommendationController.GetCareerRecommendationsHandler)
	recommendations.GET("/specializations/:userId", recommendationController.GetSpecializationRecommendationsHandler)

	careers := r.Group("/careers")
	careers.GET("", careerController.ListCareersHandler)
	careers.GET("/:id", careerController.GetCareerDetailHandler)

	specializations := r.Group("/specializations")
	specializations.GET("", specializationController.ListSpecializationsHandler)
	specializations.GET("/:id", specializationController.GetSpecializationDetailHandler)

	favorites := r.Group("/favorites")
	favorites.POST("/careers/:userId", favoriteController.AddCareerFavoriteHandler)
	favorites.DELETE("/careers/:userId/:careerId", favoriteController.RemoveCareerFavoriteHandler)
	favorites.GET("/careers/:userId", favoriteController.ListCareerFavoritesHandler)
	favorites.POST("/specializations/:userId", favoriteController.AddSpecializationFavoriteHandler)
	favorites.DELETE("/specializations/:userId/:specializationId", favoriteController.RemoveSpecializationFavoriteHandler)
	favorites.GET("/specializations/:userId", favoriteController.ListSpecializationFavoritesHandler)

	admin := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/tests", testController.ListTestsHandler)
	admin.GET("/tests/:id", testController.GetTestDetailHandler)
	admin.POST("/tests", testController.CreateTestHandler)
	admin.PUT("/tests/:id", testController.UpdateTestHandler)
	admin.PATCH("/tests/:id/status", testController.SetTestStatusHandler)
	admin.POST("/careers", careerController.CreateCareerHandler)
	admin.PUT("/careers/:id", careerController.UpdateCareerHandler)
	admin.DELETE("/careers/:id", careerController.DeleteCareerHandler)
	admin.POST("/specializations", specializationController.CreateSpecializationHandler)
	admin.PUT("/specializations/:id", specializationController.UpdateSpecializationHandler)
	admin.DELETE("/specializations/:id", specializationController.DeleteSpecializationHandler)
}
