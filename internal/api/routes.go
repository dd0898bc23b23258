package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/reset-password", handler.ResetPassword)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("/biometrics", handler.UpdateBiometrics)
	profile.Patch("/goals", handler.UpdateGoals)

	dailyLog := api.Group("/log", handler.AuthRequired)
	dailyLog.Get("", handler.GetDailyLogs)
	dailyLog.Get("/today", handler.GetTodayLog)
	dailyLog.Patch("/today", handler.UpdateTodayLog)

	nutrition := api.Group("/nutrition", handler.AuthRequired)
	nutrition.Get("", handler.GetNutritionDay)
	nutrition.Post("", handler.CreateNutritionEntry)
	nutrition.Delete("/:id", handler.DeleteNutritionEntry)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkouts)
	workouts.Get("/today", handler.GetTodayWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Put("/:id", handler.UpdateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/summary", handler.GetDashboardSummary)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
	settings.Post("/clear-data", handler.ClearAllData)
	settings.Delete("/delete-account", handler.DeleteAccount)
}
