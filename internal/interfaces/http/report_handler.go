package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/application/reports"
)

// ReportHandler handles aggregated sales reads (protected).
type ReportHandler struct {
	sales *reports.SalesUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(sales *reports.SalesUseCase) *ReportHandler {
	return &ReportHandler{sales: sales}
}

// Sales godoc
// @Summary      Sales totals per location
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Narrow to one location"
// @Param        from         query  string  false  "Window start (RFC 3339)"
// @Param        to           query  string  false  "Window end (RFC 3339)"
// @Success      200  {array}   dto.SalesReportRow
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC 3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC 3339"})
	}
	rows, err := h.sales.SalesByLocation(c.Context(), orgID, c.Query("location_id"), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(rows), "items": rows})
}

func parseTimeQuery(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
