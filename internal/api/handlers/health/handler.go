package health

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/mati-tech/microservices1112/internal/api/respond"
)

// Handler serves the liveness probe and the endpoint listing of one service.
type Handler struct {
	service   string
	welcome   string
	endpoints map[string]string
}

func NewHandler(service, welcome string, endpoints map[string]string) *Handler {
	return &Handler{service: service, welcome: welcome, endpoints: endpoints}
}

func (h *Handler) Health(c *ginext.Context) {
	respond.OK(c.Writer, map[string]string{"status": "healthy", "service": h.service})
}

func (h *Handler) Root(c *ginext.Context) {
	respond.OK(c.Writer, map[string]any{"message": h.welcome, "endpoints": h.endpoints})
}
