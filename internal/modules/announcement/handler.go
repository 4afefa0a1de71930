package announcement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"confportal/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type PublishRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/announcements", h.List)
	rg.GET("/announcements/ws", h.Subscribe)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/announcements", h.Publish)
}

// List godoc
// @Summary      List announcements, newest first
// @Tags         Announcements
// @Produce      json
// @Param        limit query int false "Max rows (default 50)"
// @Success      200 {array} domain.Announcement
// @Router       /announcements [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": items})
}

// Publish godoc
// @Summary      Publish an announcement (admin)
// @Tags         Announcements
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body PublishRequest true "Announcement payload"
// @Success      201 {object} domain.Announcement
// @Router       /announcements [post]
func (h *Handler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	a, err := h.service.Publish(c.Request.Context(), c.GetInt64("user_id"), req.Title, req.Body)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": a})
}

// Subscribe upgrades to a websocket and streams announcements published while
// the connection is open. Reads are drained only to detect disconnects.
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
