package handlers

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/summer0102/real-estate-showcase/logger"
	"github.com/summer0102/real-estate-showcase/models"
	"github.com/summer0102/real-estate-showcase/prometheus"
	"github.com/summer0102/real-estate-showcase/services"
	"github.com/summer0102/real-estate-showcase/utils"
)

// ImageStorage is the blob-storage collaborator the admin handlers need.
type ImageStorage interface {
	Upload(body io.ReadSeeker, filename, contentType string) (string, error)
	Delete(filename string) error
	PublicURL(filename string) string
}

type AdminController struct {
	svc      services.PropertyService
	sessions *services.SessionStore
	images   ImageStorage
	log      *zap.Logger
}

func NewAdminController(svc services.PropertyService, sessions *services.SessionStore, images ImageStorage) *AdminController {
	return &AdminController{
		svc:      svc,
		sessions: sessions,
		images:   images,
		log:      logger.Get(),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// checkAdminPassword prefers a bcrypt hash; the plaintext env var is the
// fallback for local setups.
func checkAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	return adminPassword != "" && password == adminPassword
}

func (ac *AdminController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	prometheus.AuthAttemptsCounter.Inc()

	if !checkAdminPassword(req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Incorrect password"})
	}

	sessionID := uuid.NewString()
	session := models.AdminSession{
		Authenticated: true,
		IssuedAt:      time.Now(),
	}
	if err := ac.sessions.Save(c.Request().Context(), sessionID, session); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create session"})
	}

	token, err := utils.GenerateSessionToken(sessionID, ac.sessions.MaxAge())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	prometheus.AuthSuccessCounter.Inc()

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (ac *AdminController) Logout(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	if sessionID != "" {
		if err := ac.sessions.Clear(c.Request().Context(), sessionID); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear session"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

func (ac *AdminController) CreateProperty(c echo.Context) error {
	var input models.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	property, err := ac.svc.Create(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	prometheus.RecordPropertyOperation("create")

	return c.JSON(http.StatusCreated, property)
}

func (ac *AdminController) UpdateProperty(c echo.Context) error {
	var update models.PropertyUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	property, err := ac.svc.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	prometheus.RecordPropertyOperation("update")

	return c.JSON(http.StatusOK, property)
}

// DeleteProperty removes the row only. Stored images are not cascade
// deleted; orphaned blobs are an operational concern, so the fact is
// logged rather than hidden.
func (ac *AdminController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")

	if err := ac.svc.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}

	prometheus.RecordPropertyOperation("delete")
	ac.log.Info("property deleted, stored images not cascade-deleted",
		zap.String("property_id", id))

	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

// UploadImage validates the file before any store call and stores it
// under a collision-resistant name. Associating the returned URL with a
// property is a separate update call; the two steps are not atomic.
func (ac *AdminController) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image file is required"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := utils.ValidateImageUpload(contentType, fileHeader.Size); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to read image file"})
	}
	defer file.Close()

	filename := utils.GenerateImageFilename(fileHeader.Filename)
	url, err := ac.images.Upload(file, filename, contentType)
	if err != nil {
		ac.log.Error("image upload failed", zap.String("filename", filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload image"})
	}

	prometheus.ImageUploadsCounter.Inc()

	return c.JSON(http.StatusCreated, map[string]string{
		"url":      url,
		"filename": filename,
	})
}

// DeleteImage is best-effort: a storage failure is reported but not
// fatal, since the caller drops the URL from the property row either way.
func (ac *AdminController) DeleteImage(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Filename is required"})
	}

	if err := ac.images.Delete(filename); err != nil {
		prometheus.ImageDeleteErrorsCounter.Inc()
		ac.log.Warn("image delete failed, blob may be orphaned",
			zap.String("filename", filename), zap.Error(err))
		return c.JSON(http.StatusOK, map[string]interface{}{
			"deleted": false,
			"message": "Image removal failed; reference can still be dropped",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"deleted": true})
}
