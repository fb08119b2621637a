package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sank4512/plutocollection.in/models"
	"github.com/sank4512/plutocollection.in/routes"
	"github.com/sank4512/plutocollection.in/session"
	"github.com/sank4512/plutocollection.in/storage"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// One default admin account on first run
	if err := seedAdmin(db); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	// Session store: Redis when reachable, in-memory otherwise
	store, redisClient := initSessionStore()

	// Gin setup
	r := gin.Default()

	// Allow large image uploads
	r.MaxMultipartMemory = 32 << 20 // 32 MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", storage.Root())

	// Setup routes
	routes.SetupRoutes(r, db, store, redisClient)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initSessionStore connects to Redis for cart sessions, falling back to the
// in-process store (carts then live only as long as the process).
func initSessionStore() (session.CartStore, *redis.Client) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}
	store, err := session.NewRedisStore(addr)
	if err != nil {
		log.Printf("⚠️ Failed to connect to Redis at %s: %v. Using in-memory cart sessions.", addr, err)
		return session.NewMemoryStore(), nil
	}
	log.Println("✅ Redis connected for cart sessions")
	return store, store.Client()
}

// seedAdmin provisions the default admin account if it does not exist yet.
func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Admin user created: username=admin")
	return nil
}
