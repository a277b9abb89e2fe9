package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PagesHandler serves the minimal HTML shells for the three client routes.
// Rendering itself happens on the kiosk; these shells only bootstrap it.
type PagesHandler struct{}

// NewPagesHandler creates a new pages handler
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Landing serves the unattended landing page. The meta refresh advances to
// the display view after 10 seconds unless the visitor navigates first.
func (h *PagesHandler) Landing(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html lang="de">
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="10;url=/display">
  <title>DRK Melm</title>
</head>
<body>
  <main>
    <h1>Willkommen im DRK Melm</h1>
    <p>Die Anzeige startet gleich &hellip;</p>
    <nav><a href="/display">Display</a> &middot; <a href="/admin">Verwaltung</a></nav>
  </main>
</body>
</html>`)
}

// Display serves the kiosk shell, driven by the display API and the
// websocket stream.
func (h *PagesHandler) Display(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html lang="de">
<head>
  <meta charset="utf-8">
  <title>DRK Melm &ndash; Anzeige</title>
</head>
<body data-api="/api/v1/display" data-stream="/api/v1/display/stream">
  <div id="app"></div>
  <script src="/assets/display.js"></script>
</body>
</html>`)
}

// Admin serves the editor shell, driven by the admin API.
func (h *PagesHandler) Admin(c echo.Context) error {
	return c.HTML(http.StatusOK, `<!DOCTYPE html>
<html lang="de">
<head>
  <meta charset="utf-8">
  <title>DRK Melm &ndash; Verwaltung</title>
</head>
<body data-api="/api/v1/admin">
  <div id="app"></div>
  <script src="/assets/admin.js"></script>
</body>
</html>`)
}
