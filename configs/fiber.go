package configs

import (
	"errors"
	"html"
	"net/http"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/views"

	"github.com/gofiber/fiber/v2"
	htmlengine "github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

// NewTemplateEngine gömülü şablonlardan html motorunu kurar.
func NewTemplateEngine(reload bool) *htmlengine.Engine {
	engine := htmlengine.NewFileSystem(http.FS(views.FS), ".html")
	engine.Reload(reload)
	// Metinler HTML-escape edilmiş olarak saklanır; şablon tekrar escape etmeden önce çözülür
	engine.AddFunc("unescape", html.UnescapeString)
	return engine
}

// NewFiberApp uygulama ayarlarıyla yeni bir Fiber uygulaması oluşturur.
func NewFiberApp(cfg AppConfig) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "Card Catalog",
		Views:        NewTemplateEngine(!cfg.IsProduction()),
		ErrorHandler: ErrorHandler,
	})
}

// ErrorHandler handler'lardan dönen hataları hata sayfasına çevirir.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	template := "errors/500"
	title := "Internal Server Error"
	message := "Something went wrong. Please try again later."
	switch {
	case code == fiber.StatusNotFound:
		template = "errors/404"
		title = "Not Found"
		message = fiberErr.Message
	case code < fiber.StatusInternalServerError && fiberErr != nil:
		title = http.StatusText(code)
		message = fiberErr.Message
	default:
		configslog.Log.Error("Request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	renderErr := c.Status(code).Render(template, fiber.Map{
		"Title":   title,
		"Status":  code,
		"Message": message,
	}, "layouts/error_layout")
	if renderErr != nil {
		configslog.Log.Error("Error page could not be rendered", zap.Error(renderErr))
		return c.Status(code).SendString(message)
	}
	return nil
}
