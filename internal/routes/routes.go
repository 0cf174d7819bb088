package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kvartirnik/house-booking/internal/audit"
	"github.com/kvartirnik/house-booking/internal/cache"
	"github.com/kvartirnik/house-booking/internal/config"
	"github.com/kvartirnik/house-booking/internal/handlers"
	infraRepo "github.com/kvartirnik/house-booking/internal/infra/repository"
	"github.com/kvartirnik/house-booking/internal/middleware"
	ucBooking "github.com/kvartirnik/house-booking/internal/usecase/booking"
	ucUser "github.com/kvartirnik/house-booking/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	houseCache := cache.NewHouseCache(cfg, 5*time.Minute)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		houseCache,
	)

	updateCommentUC := ucBooking.NewUpdateBookingComment(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListUserBookings(bookingRepo)

	createUserUC := ucUser.NewCreateUser(userRepo)
	findUserUC := ucUser.NewFindUserByPhone(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, createUserUC, findUserUC, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateCommentUC,
		listBookingsUC,
		findUserUC,
	)

	houseHandler := handlers.NewHouseHandler(bookingRepo, houseCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/houses", houseHandler.List)
		api.GET("/houses/:id", houseHandler.Get)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/booking", bookingHandler.Create)
		api.PUT("/booking/:id", bookingHandler.Update)

		// ------------------------------
		// PROTECTED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", authHandler.Profile)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
