package api

import (
	"strings"

	"QuantScout/internal/domain/models"
	xhttp "QuantScout/pkg/http"
	xlogger "QuantScout/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScanSource yields the most recent completed scan pass.
type ScanSource interface {
	Latest() *models.ScanResult
}

// ScanStream additionally streams each completed pass.
type ScanStream interface {
	ScanSource
	Subscribe() (<-chan *models.ScanResult, func())
}

// ScansHandler exposes the latest scan pass over HTTP.
type ScansHandler struct {
	logger  *xlogger.Logger
	scanner ScanSource
}

func NewScansHandler(logger *xlogger.Logger, scanner ScanSource) *ScansHandler {
	return &ScansHandler{logger: logger, scanner: scanner}
}

func (h *ScansHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/scan", h.Scan)
	g.GET("/scan/:symbol", h.ScanRow)
	g.GET("/summary", h.Summary)
	e.GET("/health", h.Health)
}

// Scan returns the most recent full pass. 404 until the first pass completes.
func (h *ScansHandler) Scan(c echo.Context) error {
	res := h.scanner.Latest()
	if res == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no scan completed yet"))
	}
	return xhttp.SuccessResponse(c, res)
}

// ScanRow returns a single symbol's row from the most recent pass.
func (h *ScansHandler) ScanRow(c echo.Context) error {
	req := &models.ScanRowRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.scanner.Latest()
	if res == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no scan completed yet"))
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	for i := range res.Rows {
		if res.Rows[i].Symbol == symbol {
			return xhttp.SuccessResponse(c, res.Rows[i])
		}
	}
	return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("symbol %s not in last scan", symbol))
}

// Summary returns only the aggregate counters of the most recent pass.
func (h *ScansHandler) Summary(c echo.Context) error {
	res := h.scanner.Latest()
	if res == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no scan completed yet"))
	}
	return xhttp.SuccessResponse(c, res.Summary)
}

func (h *ScansHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
