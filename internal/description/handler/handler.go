package handler

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hellodesc/hellodesc/internal/description"
	"github.com/hellodesc/hellodesc/pkg/logger"
	"github.com/hellodesc/hellodesc/pkg/metrics"
)

//go:embed templates/*.html static/favicon.ico
var assets embed.FS

const faviconContentType = "image/vnd.microsoft.icon"

// Describer produces a description for a name.
type Describer interface {
	Describe(ctx context.Context, name string) (string, error)
}

// Recorder persists a name/description pair and returns the new document id.
type Recorder interface {
	Store(ctx context.Context, rec description.Record) (string, error)
}

// Handler serves the landing page, the favicon and the /hello form target.
type Handler struct {
	describer Describer
	recorder  Recorder
}

func NewHandler(d Describer, r Recorder) *Handler {
	return &Handler{describer: d, recorder: r}
}

// RegisterRoutes installs the page templates and routes on r.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.SetHTMLTemplate(template.Must(template.ParseFS(assets, "templates/*.html")))
	r.GET("/", h.Index)
	r.GET("/favicon.ico", h.Favicon)
	r.POST("/hello", h.Hello)
}

func (h *Handler) Index(c *gin.Context) {
	logger.Infof("Request for index page received")
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) Favicon(c *gin.Context) {
	b, err := assets.ReadFile("static/favicon.ico")
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, faviconContentType, b)
}

// Hello redirects blank submissions home; otherwise it always renders the
// result page, substituting the fallback text when generation fails and
// ignoring (after logging) persistence failures.
func (h *Handler) Hello(c *gin.Context) {
	name := c.PostForm("name")
	if strings.TrimSpace(name) == "" {
		logger.Infof("Request for hello page received with no name or blank name -- redirecting")
		c.Redirect(http.StatusFound, "/")
		return
	}
	logger.Infof("Request for hello page received with name=%s", name)

	ctx := c.Request.Context()
	text, err := h.describer.Describe(ctx, name)
	if err != nil {
		logger.Errorf("An error occurred while requesting the completion service (kind=%s): %v", description.KindOf(err), err)
		text = description.FallbackText
		metrics.Descriptions.WithLabelValues("fallback").Inc()
	} else {
		logger.Debugf("generated description: %s", text)
		metrics.Descriptions.WithLabelValues("generated").Inc()
	}

	id, err := h.recorder.Store(ctx, description.Record{Name: name, Description: text})
	if err != nil {
		logger.Errorf("An error occurred while inserting document: %v", err)
	} else {
		logger.Infof("Document inserted with id: %s", id)
	}

	c.HTML(http.StatusOK, "hello.html", gin.H{"Name": name, "Description": text})
}
