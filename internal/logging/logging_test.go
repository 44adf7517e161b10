package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	app := fiber.New()
	app.Use(AccessLog(logger))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusTeapot) })
	app.Get("/fail", func(c *fiber.Ctx) error { return fiber.NewError(http.StatusServiceUnavailable, "down") })

	for _, path := range []string{"/ok", "/fail"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("app.Test error: %v", err)
		}
		_ = resp.Body.Close()
	}

	out := buf.String()
	for _, want := range []string{"path=/ok", "status=418", "path=/fail", "status=503", "ERRO"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
