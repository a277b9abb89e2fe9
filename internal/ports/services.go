package ports

// Request types for admin mutations. Pointer fields are merged only when
// present, so toggling a flag never clears its sibling fields.

// UpdateUrgentMessageRequest merges fields into the urgent message.
type UpdateUrgentMessageRequest struct {
	Active      *bool   `json:"active"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Text        *string `json:"text" validate:"omitempty,max=2000"`
	ActiveUntil *string `json:"activeUntil" validate:"omitempty,datetime=15:04"`
}

// UpdateSlideshowRequest updates slideshow configuration; the image list is
// managed through AddSlideRequest / delete-by-id.
type UpdateSlideshowRequest struct {
	Active      *bool   `json:"active"`
	ActiveUntil *string `json:"activeUntil" validate:"omitempty,datetime=15:04"`
}

// AddSlideRequest appends a new slideshow image. ImageURL must already be a
// self-contained embeddable representation (base64 data URI).
type AddSlideRequest struct {
	Caption  string `json:"caption" validate:"required,max=200"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// UpsertEventRequest replaces a day's event list with a single event. An
// empty ID creates a new event, a present ID is preserved on edit.
type UpsertEventRequest struct {
	ID       string `json:"id"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Title    string `json:"title" validate:"required,max=200"`
	Location string `json:"location" validate:"required,max=200"`
}

// SetQuotesRequest replaces the quote list.
type SetQuotesRequest struct {
	Quotes []string `json:"quotes" validate:"required,dive,max=500"`
}

// SetLocationsRequest replaces the known-locations list.
type SetLocationsRequest struct {
	Locations []string `json:"locations" validate:"required,dive,max=200"`
}
