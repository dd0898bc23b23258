package api

import (
	"time"

	"github.com/arodena/fitdash/internal/db"
	"github.com/arodena/fitdash/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const authCookieName = "fitdash_session"

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories     *db.Repositories
	authService      *services.AuthService
	profileService   *services.ProfileService
	dayService       *services.DayService
	nutritionService *services.NutritionService
	workoutService   *services.WorkoutService
	dashboardService *services.DashboardService
	settingsService  *services.SettingsService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	handler.dayService = services.NewDayService(handler.repositories.DailyLogs)
	handler.nutritionService = services.NewNutritionService(handler.repositories.NutritionEntries)
	handler.workoutService = services.NewWorkoutService(handler.repositories.Workouts)
	handler.dashboardService = services.NewDashboardService(
		handler.repositories.Users,
		handler.dayService,
		handler.nutritionService,
		handler.workoutService,
	)
	handler.settingsService = services.NewSettingsService(handler.repositories.Users)
	return handler
}
