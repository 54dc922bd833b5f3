package internal

import (
	"dsatrack/internal/controllers"
	"dsatrack/internal/providers"
	"net/http"
)

func InitRoutes(analyticsController *controllers.AnalyticsController, problemController *controllers.ProblemController, listController *controllers.ListController, userController *controllers.UserController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/analytics", http.HandlerFunc(analyticsController.GetAnalytics))

	routers.Get("/problems", http.HandlerFunc(problemController.List))
	routers.Post("/problems", http.HandlerFunc(problemController.Create))
	routers.Get("/problems/{id}", http.HandlerFunc(problemController.Get))
	routers.Put("/problems/{id}", http.HandlerFunc(problemController.Update))
	routers.Delete("/problems/{id}", http.HandlerFunc(problemController.Delete))
	routers.Post("/problems/{id}/solve", http.HandlerFunc(problemController.MarkSolved))
	routers.Post("/problems/{id}/revise", http.HandlerFunc(problemController.Revise))

	routers.Get("/patterns", http.HandlerFunc(problemController.Patterns))
	routers.Post("/patterns/auto-tag", http.HandlerFunc(problemController.AutoTagAll))
	routers.Post("/patterns/suggest", http.HandlerFunc(problemController.SuggestPatterns))

	routers.Get("/lists", http.HandlerFunc(listController.Lists))
	routers.Post("/lists", http.HandlerFunc(listController.Import))
	routers.Get("/lists/{id}", http.HandlerFunc(listController.List))
	routers.Get("/lists/{id}/progress", http.HandlerFunc(listController.Progress))
	routers.Post("/lists/{id}/problems/{problemId}/complete", http.HandlerFunc(listController.ToggleCompleted))
	routers.Post("/lists/{id}/problems/{problemId}/revise", http.HandlerFunc(listController.IncrementRevision))

	routers.Post("/users", http.HandlerFunc(userController.Create))
	routers.Get("/users/me", http.HandlerFunc(userController.Me))
	return routers
}
