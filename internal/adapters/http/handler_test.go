package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/l-sayginsoy/drk-display/internal/application/services"
	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/infrastructure/logger"
)

type memRepo struct {
	stored []byte
}

func (r *memRepo) Load(context.Context) ([]byte, error) {
	if r.stored == nil {
		return nil, entities.ErrDocumentNotFound
	}
	return r.stored, nil
}

func (r *memRepo) Save(_ context.Context, raw []byte) error {
	r.stored = raw
	return nil
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type testEnv struct {
	echo    *echo.Echo
	display *DisplayHandler
	admin   *AdminHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNop()
	content := services.NewContentService(&memRepo{}, log)
	content.Load(context.Background())

	adminService := services.NewAdminService(content, log)
	displayService := services.NewDisplayService(content, log)

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	return &testEnv{
		echo:    e,
		display: NewDisplayHandler(displayService, nil, log),
		admin:   NewAdminHandler(adminService, log),
	}
}

func (env *testEnv) request(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, env.echo.NewContext(req, rec)
}

func TestGetContentReturnsDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodGet, "/api/v1/display/content", "")
	if err := env.display.GetContent(c); err != nil {
		t.Fatalf("GetContent returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var doc entities.AppData
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not a content document: %v", err)
	}
	if len(doc.Meals) != 3 {
		t.Errorf("meals = %d, want 3", len(doc.Meals))
	}
}

func TestGetFocusReturnsSelection(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodGet, "/api/v1/display/focus", "")
	if err := env.display.GetFocus(c); err != nil {
		t.Fatalf("GetFocus returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var focus entities.FocusContent
	if err := json.Unmarshal(rec.Body.Bytes(), &focus); err != nil {
		t.Fatalf("response is not a focus selection: %v", err)
	}
	if focus.Kind == "" {
		t.Error("focus kind is empty")
	}
}

func TestUpdateUrgentMessageMergesFields(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodPut, "/api/v1/admin/urgent-message",
		`{"active":true,"title":"Wasserausfall","text":"Bitte Vorrat nutzen"}`)
	if err := env.admin.UpdateUrgentMessage(c); err != nil {
		t.Fatalf("UpdateUrgentMessage returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var msg entities.UrgentMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("response is not an urgent message: %v", err)
	}
	if !msg.Active || msg.Title != "Wasserausfall" {
		t.Errorf("merged message = %+v", msg)
	}

	// The mutation must be visible on the display side.
	rec, c = env.request(http.MethodGet, "/api/v1/display/content", "")
	if err := env.display.GetContent(c); err != nil {
		t.Fatalf("GetContent returned error: %v", err)
	}
	var doc entities.AppData
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not a content document: %v", err)
	}
	if doc.UrgentMessage.Title != "Wasserausfall" {
		t.Errorf("content title = %q after mutation", doc.UrgentMessage.Title)
	}
}

func TestUpdateUrgentMessageRejectsBadCutoff(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.request(http.MethodPut, "/api/v1/admin/urgent-message",
		`{"activeUntil":"25:99"}`)
	err := env.admin.UpdateUrgentMessage(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestAddSlideRequiresCaption(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.request(http.MethodPost, "/api/v1/admin/slideshow/images", "")
	err := env.admin.AddSlide(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestDeleteSlideUnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodDelete, "/api/v1/admin/slideshow/images/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := env.admin.DeleteSlide(c); err != nil {
		t.Fatalf("DeleteSlide returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestUpsertEventAssignsID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodPut, "/api/v1/admin/schedule/24/Montag",
		`{"time":"14:30","title":"Gymnastik","location":"Saal 1"}`)
	c.SetParamNames("week", "day")
	c.SetParamValues("24", "Montag")
	if err := env.admin.UpsertEvent(c); err != nil {
		t.Fatalf("UpsertEvent returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var event entities.Event
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("response is not an event: %v", err)
	}
	if event.ID == "" {
		t.Error("event ID was not assigned")
	}
	if event.Time != "14:30" {
		t.Errorf("event time = %q", event.Time)
	}
}

func TestUpsertEventRejectsUnknownDay(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.request(http.MethodPut, "/api/v1/admin/schedule/24/Funday",
		`{"time":"14:30","title":"Gymnastik","location":"Saal 1"}`)
	c.SetParamNames("week", "day")
	c.SetParamValues("24", "Funday")
	err := env.admin.UpsertEvent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestDeleteEventRejectsNonIntegerWeek(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.request(http.MethodDelete, "/api/v1/admin/schedule/abc/Montag", "")
	c.SetParamNames("week", "day")
	c.SetParamValues("abc", "Montag")
	err := env.admin.DeleteEvent(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}

func TestSetQuotesReplacesList(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.request(http.MethodPut, "/api/v1/admin/quotes",
		`{"quotes":["Der Weg ist das Ziel."]}`)
	if err := env.admin.SetQuotes(c); err != nil {
		t.Fatalf("SetQuotes returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var quotes []string
	if err := json.Unmarshal(rec.Body.Bytes(), &quotes); err != nil {
		t.Fatalf("response is not a quote list: %v", err)
	}
	if len(quotes) != 1 || quotes[0] != "Der Weg ist das Ziel." {
		t.Errorf("quotes = %v", quotes)
	}
}
