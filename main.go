package main

import (
	"fmt"
	"log"
	"os"

	_ "school_mgmt/docs"
	"school_mgmt/internal/handlers"
	"school_mgmt/internal/models"
	"school_mgmt/internal/storage"
	"school_mgmt/internal/tasks"
	"school_mgmt/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title	Управление расписанием занятий школы
func main() {
	key := os.Getenv("ENV_CHEK")
	if key == "" {
		fmt.Println("Подключение к .env")
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Ошибка получения .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.Room{}, &models.Booking{}); err != nil {
		log.Fatal("Ошибка при миграции... ", err.Error())
	}

	storage.InitRedis()

	tasks.InitScheduler()

	go ws.HubInstance.Run()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/calendar/holidays", handlers.GetHolidaysHandler)

	rooms := r.Group("/rooms")
	{
		rooms.POST("", handlers.CreateRoomHandler)
		rooms.GET("", handlers.GetRoomsHandler)
		rooms.DELETE("/:id", handlers.DeleteRoomHandler)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", handlers.CreateBookingHandler)
		bookings.GET("", handlers.GetBookingsHandler)
		bookings.POST("/check", handlers.CheckConflictsHandler)
		bookings.GET("/:id", handlers.GetBookingHandler)
		bookings.PUT("/:id", handlers.UpdateBookingHandler)
		bookings.DELETE("/:id", handlers.DeleteBookingHandler)
	}

	progress := r.Group("/progress-cards")
	{
		progress.POST("/summary", handlers.GetProgressSummaryHandler)
		progress.POST("/export", handlers.ExportProgressCSVHandler)
	}

	wsGroup := r.Group("/api/rooms")
	{
		wsGroup.GET("/:room/ws", ws.RoomWebSocketHandler)
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Ошибка запуска сервера...", err.Error())
	}
}
