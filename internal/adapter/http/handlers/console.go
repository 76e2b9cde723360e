package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Timomoulin/Todo0/internal/adapter/http/dto"
)

// RowCounter is implemented by every repository.
type RowCounter interface {
	Count(ctx context.Context) (int64, error)
}

type NamedCounter struct {
	Table   string
	Counter RowCounter
}

// ConsoleHandler is the development database console. It is only routed
// when DEV_CONSOLE is enabled.
type ConsoleHandler struct {
	counters []NamedCounter
}

func NewConsoleHandler(counters ...NamedCounter) *ConsoleHandler {
	return &ConsoleHandler{counters: counters}
}

func (h *ConsoleHandler) Tables(c *gin.Context) {
	tables := make([]dto.TableCount, 0, len(h.counters))
	for _, counter := range h.counters {
		rows, err := counter.Counter.Count(c.Request.Context())
		if err != nil {
			handleServiceError(c, err, "failed to count rows")
			return
		}
		tables = append(tables, dto.TableCount{Table: counter.Table, Rows: rows})
	}

	render(c, http.StatusOK, "console.tmpl", "consoleTitle", gin.H{
		"Tables": tables,
	})
}
