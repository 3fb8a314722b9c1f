package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/auth"
	"github.com/Shubrajit22/Zestwear-sub000/gateway"
	"github.com/Shubrajit22/Zestwear-sub000/mailer"
	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/repository"
	"github.com/Shubrajit22/Zestwear-sub000/routes"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

func main() {
	log.Println("Starting application...")

	_ = godotenv.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.ProductCategory{},
		&models.Product{},
		&models.SizeOption{},
		&models.StockImage{},
		&models.Review{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ReturnRequest{},
		&models.ReturnItem{},
		&models.UploadedFile{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	pay, err := gateway.NewRazorpayFromEnv()
	if err != nil {
		log.Fatalf("Razorpay init failed: %v", err)
	}

	mail, err := mailer.NewSMTPFromEnv()
	if err != nil {
		log.Fatalf("SMTP init failed: %v", err)
	}

	businessEmail := getEnv("BUSINESS_EMAIL", "orders@zestwear.in")

	catalogStore := repository.NewCatalogStore(db)
	cartStore := repository.NewCartStore(db)
	userStore := repository.NewUserStore(db)
	orderStore := repository.NewOrderStore(db)
	returnStore := repository.NewReturnStore(db)

	deps := routes.Deps{
		DB:       db,
		Cart:     services.NewCartService(catalogStore, cartStore),
		Checkout: services.NewCheckoutService(pay),
		Orders:   services.NewOrderService(orderStore, userStore, catalogStore, pay, mail, businessEmail),
		Returns:  services.NewReturnService(returnStore, orderStore, userStore, mail, businessEmail),
		OTP:      auth.NewOTPStore(rdb),
		Mail:     mail,
	}

	r := gin.Default()

	// Allow large file uploads for excel imports and product imagery
	r.MaxMultipartMemory = 1 << 30

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uploadsDir := getEnv("UPLOAD_DIR", "./uploads")
	backupDir := getEnv("UPLOAD_BACKUP_DIR", "./backup/uploads")

	r.Static("/uploads", uploadsDir)

	routes.SetupRoutes(r, deps)

	// Back up uploaded images at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(uploadsDir, backupDir, 4*24*time.Hour, 2, 0)

	port := getEnv("PORT", "8080")
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// startDailyBackupAtFixedTime backs up images daily at a fixed hour and removes old backups
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		time.Sleep(next.Sub(now))

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destDir := filepath.Join(backupDir, timestamp)

		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("Failed to back up images: %v", err)
		} else {
			log.Printf("Images backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("Failed to remove old backup %s: %v", folderPath, err)
			}
		}
	}
}
