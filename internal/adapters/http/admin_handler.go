package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/l-sayginsoy/drk-display/internal/application/services"
	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// maxImageBytes caps uploaded images; they are embedded into the document as
// data URIs and large blobs would bloat every subsequent save.
const maxImageBytes = 8 << 20

// MessageResponse is a simple message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// AdminHandler handles the editor mutations
type AdminHandler struct {
	admin  *services.AdminService
	logger *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *services.AdminService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		logger: logger,
	}
}

// UpdateUrgentMessage merges fields into the urgent message
func (h *AdminHandler) UpdateUrgentMessage(c echo.Context) error {
	var req ports.UpdateUrgentMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc := h.admin.UpdateUrgentMessage(c.Request().Context(), req)
	return c.JSON(http.StatusOK, doc.UrgentMessage)
}

// UploadUrgentMessageImage replaces the urgent message background image
func (h *AdminHandler) UploadUrgentMessageImage(c echo.Context) error {
	dataURI, err := readImageAsDataURI(c, "image")
	if err != nil {
		return err
	}

	doc := h.admin.SetUrgentMessageImage(c.Request().Context(), dataURI)
	return c.JSON(http.StatusOK, doc.UrgentMessage)
}

// UpdateSlideshow updates slideshow configuration
func (h *AdminHandler) UpdateSlideshow(c echo.Context) error {
	var req ports.UpdateSlideshowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc := h.admin.UpdateSlideshow(c.Request().Context(), req)
	return c.JSON(http.StatusOK, doc.Slideshow)
}

// AddSlide appends a new slideshow image from a multipart form with a
// caption field and an image file
func (h *AdminHandler) AddSlide(c echo.Context) error {
	caption := c.FormValue("caption")
	if caption == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Caption is required")
	}

	dataURI, err := readImageAsDataURI(c, "image")
	if err != nil {
		return err
	}

	slide, err := h.admin.AddSlide(c.Request().Context(), ports.AddSlideRequest{
		Caption:  caption,
		ImageURL: dataURI,
	})
	if err != nil {
		if errors.Is(err, entities.ErrMissingSlideInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Add slide failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not add slide")
	}

	return c.JSON(http.StatusCreated, slide)
}

// DeleteSlide removes a slideshow image by id
func (h *AdminHandler) DeleteSlide(c echo.Context) error {
	doc := h.admin.DeleteSlide(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, doc.Slideshow)
}

// UpsertEvent replaces a day's event list with a single event
func (h *AdminHandler) UpsertEvent(c echo.Context) error {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Week must be an integer")
	}

	var req ports.UpsertEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.admin.UpsertEvent(c.Request().Context(), week, c.Param("day"), req)
	if err != nil {
		if errors.Is(err, entities.ErrUnknownDay) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Upsert event failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not save event")
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent clears a day's event list
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Week must be an integer")
	}

	if err := h.admin.DeleteEvent(c.Request().Context(), week, c.Param("day")); err != nil {
		if errors.Is(err, entities.ErrUnknownDay) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Errorw("Delete event failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not delete event")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Event deleted"})
}

// SetQuotes replaces the quote list
func (h *AdminHandler) SetQuotes(c echo.Context) error {
	var req ports.SetQuotesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc := h.admin.SetQuotes(c.Request().Context(), req.Quotes)
	return c.JSON(http.StatusOK, doc.Quotes)
}

// SetLocations replaces the known-locations list
func (h *AdminHandler) SetLocations(c echo.Context) error {
	var req ports.SetLocationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc := h.admin.SetLocations(c.Request().Context(), req.Locations)
	return c.JSON(http.StatusOK, doc.Locations)
}

// readImageAsDataURI reads an uploaded image file and encodes it as a
// self-contained base64 data URI. The read must complete before any store
// mutation happens; a failed read aborts only this operation.
func readImageAsDataURI(c echo.Context, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Image file is required")
	}
	if fileHeader.Size > maxImageBytes {
		return "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Could not open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Could not read uploaded image")
	}
	if len(data) > maxImageBytes {
		return "", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image exceeds the size limit")
	}

	mimeType := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
}
