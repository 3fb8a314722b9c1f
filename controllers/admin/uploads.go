package adminController

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shubrajit22/Zestwear-sub000/models"
)

func uploadBaseDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadFile saves an image to the uploads directory and records it.
func UploadFile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := filepath.Join(uploadBaseDir(), "files")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		ext := filepath.Ext(fileHeader.Filename)
		base := strings.TrimSuffix(filepath.Base(fileHeader.Filename), ext)
		base = strings.ReplaceAll(base, " ", "_")
		filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

		if err := c.SaveUploadedFile(fileHeader, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		upload := models.UploadedFile{
			FileName: fileHeader.Filename,
			FileURL:  fmt.Sprintf("/uploads/files/%s", filename),
		}
		if err := db.Create(&upload).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "File uploaded", "data": upload})
	}
}

// GetUploads lists recorded uploads, newest first.
func GetUploads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uploads []models.UploadedFile
		if err := db.Order("created_at DESC").Find(&uploads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
			return
		}
		c.JSON(http.StatusOK, uploads)
	}
}

// DeleteUpload removes the record and the file on disk.
func DeleteUpload(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var upload models.UploadedFile
		if err := db.First(&upload, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if upload.FileURL != "" {
			localPath := filepath.Join(uploadBaseDir(), "files", filepath.Base(upload.FileURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&upload).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete upload"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Upload deleted"})
	}
}
