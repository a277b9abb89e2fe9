package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// AdminService implements the editor mutations. Every operation is
// last-write-wins and immediately persisted through the content service.
type AdminService struct {
	content *ContentService
	logger  *logger.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(content *ContentService, logger *logger.Logger) *AdminService {
	return &AdminService{
		content: content,
		logger:  logger,
	}
}

// UpdateUrgentMessage merges the given fields into the urgent message.
// Toggling Active never clears title, text or image.
func (s *AdminService) UpdateUrgentMessage(ctx context.Context, req ports.UpdateUrgentMessageRequest) entities.AppData {
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		if req.Active != nil {
			doc.UrgentMessage.Active = *req.Active
		}
		if req.Title != nil {
			doc.UrgentMessage.Title = *req.Title
		}
		if req.Text != nil {
			doc.UrgentMessage.Text = *req.Text
		}
		if req.ActiveUntil != nil {
			doc.UrgentMessage.ActiveUntil = *req.ActiveUntil
		}
	})

	s.logger.LogContentMutation("urgent_message_updated", map[string]interface{}{
		"active": doc.UrgentMessage.Active,
	})

	return doc
}

// SetUrgentMessageImage replaces the urgent message background image with an
// already-encoded embeddable representation.
func (s *AdminService) SetUrgentMessageImage(ctx context.Context, imageURL string) entities.AppData {
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		doc.UrgentMessage.ImageURL = imageURL
	})

	s.logger.LogContentMutation("urgent_message_image_replaced", nil)
	return doc
}

// UpdateSlideshow updates slideshow configuration; the image list is
// untouched.
func (s *AdminService) UpdateSlideshow(ctx context.Context, req ports.UpdateSlideshowRequest) entities.AppData {
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		if req.Active != nil {
			doc.Slideshow.Active = *req.Active
		}
		if req.ActiveUntil != nil {
			doc.Slideshow.ActiveUntil = *req.ActiveUntil
		}
	})

	s.logger.LogContentMutation("slideshow_updated", map[string]interface{}{
		"active": doc.Slideshow.Active,
	})

	return doc
}

// AddSlide appends a new slideshow image with a fresh id. Both caption and
// image are required.
func (s *AdminService) AddSlide(ctx context.Context, req ports.AddSlideRequest) (entities.SlideshowImage, error) {
	if strings.TrimSpace(req.Caption) == "" || req.ImageURL == "" {
		return entities.SlideshowImage{}, entities.ErrMissingSlideInput
	}

	slide := entities.SlideshowImage{
		ID:      uuid.New().String(),
		URL:     req.ImageURL,
		Caption: req.Caption,
	}

	s.content.Update(ctx, func(doc *entities.AppData) {
		doc.Slideshow.Images = append(doc.Slideshow.Images, slide)
	})

	s.logger.LogContentMutation("slide_added", map[string]interface{}{
		"slide_id": slide.ID,
		"caption":  slide.Caption,
	})

	return slide, nil
}

// DeleteSlide removes a slideshow image by id. An absent id is a no-op.
func (s *AdminService) DeleteSlide(ctx context.Context, id string) entities.AppData {
	removed := false
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		images := doc.Slideshow.Images[:0]
		for _, img := range doc.Slideshow.Images {
			if img.ID == id {
				removed = true
				continue
			}
			images = append(images, img)
		}
		doc.Slideshow.Images = images
	})

	if removed {
		s.logger.LogContentMutation("slide_deleted", map[string]interface{}{"slide_id": id})
	}

	return doc
}

// UpsertEvent replaces the day's event list with a single event. A new event
// gets a fresh id, an edited one keeps the id supplied. The target week is
// materialized to a full 7-day skeleton when absent.
func (s *AdminService) UpsertEvent(ctx context.Context, week int, dayName string, req ports.UpsertEventRequest) (entities.Event, error) {
	dayIndex := dayIndexOf(dayName)
	if dayIndex < 0 {
		return entities.Event{}, fmt.Errorf("%w: %q", entities.ErrUnknownDay, dayName)
	}

	event := entities.Event{
		ID:       req.ID,
		Time:     req.Time,
		Title:    req.Title,
		Location: req.Location,
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	s.content.Update(ctx, func(doc *entities.AppData) {
		days := entities.MaterializeWeek(doc, week)
		days[dayIndex].Events = []entities.Event{event}
		doc.WeeklySchedule[entities.WeekKey(week)] = days
	})

	s.logger.LogContentMutation("event_upserted", map[string]interface{}{
		"week":     week,
		"day":      dayName,
		"event_id": event.ID,
	})

	return event, nil
}

// DeleteEvent clears the day's event list.
func (s *AdminService) DeleteEvent(ctx context.Context, week int, dayName string) error {
	dayIndex := dayIndexOf(dayName)
	if dayIndex < 0 {
		return fmt.Errorf("%w: %q", entities.ErrUnknownDay, dayName)
	}

	s.content.Update(ctx, func(doc *entities.AppData) {
		days := entities.MaterializeWeek(doc, week)
		days[dayIndex].Events = []entities.Event{}
		doc.WeeklySchedule[entities.WeekKey(week)] = days
	})

	s.logger.LogContentMutation("event_deleted", map[string]interface{}{
		"week": week,
		"day":  dayName,
	})

	return nil
}

// SetQuotes replaces the quote list.
func (s *AdminService) SetQuotes(ctx context.Context, quotes []string) entities.AppData {
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		doc.Quotes = append([]string(nil), quotes...)
	})

	s.logger.LogContentMutation("quotes_replaced", map[string]interface{}{"count": len(quotes)})
	return doc
}

// SetLocations replaces the known-locations list.
func (s *AdminService) SetLocations(ctx context.Context, locations []string) entities.AppData {
	doc := s.content.Update(ctx, func(doc *entities.AppData) {
		doc.Locations = append([]string(nil), locations...)
	})

	s.logger.LogContentMutation("locations_replaced", map[string]interface{}{"count": len(locations)})
	return doc
}

func dayIndexOf(name string) int {
	for i, day := range entities.DayNames {
		if strings.EqualFold(day, name) {
			return i
		}
	}
	return -1
}
