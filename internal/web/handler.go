package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xfocus/xfocus/internal/config"
	"github.com/xfocus/xfocus/internal/models"
	"github.com/xfocus/xfocus/internal/reporter"
	"github.com/xfocus/xfocus/pkg/client"
)

const defaultEventLimit = 100

// Store is the read side of the sample repository
type Store interface {
	GetEventsSince(since time.Time) ([]*models.FocusSample, error)
	GetLatest() (*models.FocusSample, error)
	GetAppSummarySince(since time.Time) ([]models.AppSummary, error)
}

type Handler struct {
	config   *config.Config
	store    Store
	client   client.Client
	reporter *reporter.Reporter
}

func NewHandler(cfg *config.Config, store Store, c client.Client) *Handler {
	return &Handler{
		config:   cfg,
		store:    store,
		client:   c,
		reporter: reporter.New(cfg, store),
	}
}

// CurrentResponse is the body of GET /api/current
type CurrentResponse struct {
	Supported   bool    `json:"supported"`
	Application *string `json:"application"`
}

func (h *Handler) SetupRoutes(r gin.IRouter) {
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	api.GET("/current", h.handleCurrent)
	api.GET("/events", h.handleEvents)
	api.GET("/events/latest", h.handleLatestEvent)
	api.GET("/report", h.handleReport)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleCurrent(c *gin.Context) {
	resp := CurrentResponse{Supported: h.client.Supported()}
	if resp.Supported {
		if app, ok := h.client.CurrentApplication(); ok {
			resp.Application = &app
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleEvents(c *gin.Context) {
	limit := defaultEventLimit
	if s := c.Query("limit"); s != "" {
		l, err := strconv.Atoi(s)
		if err != nil || l <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = l
	}

	samples, err := h.store.GetEventsSince(time.Now().Add(-24 * time.Hour))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(samples) > limit {
		samples = samples[len(samples)-limit:]
	}
	if samples == nil {
		samples = []*models.FocusSample{}
	}
	c.JSON(http.StatusOK, samples)
}

func (h *Handler) handleLatestEvent(c *gin.Context) {
	sample, err := h.store.GetLatest()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sample == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no samples recorded"})
		return
	}
	c.JSON(http.StatusOK, sample)
}

func (h *Handler) handleReport(c *gin.Context) {
	period := c.DefaultQuery("period", "day")

	if _, err := h.reporter.Period(period); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reporter.GenerateReport(period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
