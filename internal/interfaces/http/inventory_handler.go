package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tumaini/duka-api/internal/application/dto"
	"github.com/tumaini/duka-api/internal/application/inventory"
	"github.com/tumaini/duka-api/internal/application/receipt"
	"github.com/tumaini/duka-api/internal/domain"
	"github.com/tumaini/duka-api/pkg/format"
)

// InventoryHandler handles the inventory read, transfers, sales and receipts
// (protected).
type InventoryHandler struct {
	list     *inventory.ListUseCase
	transfer *inventory.TransferUseCase
	sale     *inventory.SaleUseCase
	receipt  *receipt.UseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(
	list *inventory.ListUseCase,
	transfer *inventory.TransferUseCase,
	sale *inventory.SaleUseCase,
	receiptUC *receipt.UseCase,
) *InventoryHandler {
	return &InventoryHandler{list: list, transfer: transfer, sale: sale, receipt: receiptUC}
}

// List godoc
// @Summary      Organization-wide inventory
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	items, err := h.list.GetInventory(c.Context(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// Transfer godoc
// @Summary      Move stock between locations
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "product_id, from_location_id, to_location_id, quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	err := h.transfer.Transfer(c.Context(), inventory.TransferInput{
		OrgID:          orgID,
		UserID:         userID,
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
	})
	if err != nil {
		return writeStockError(c, err)
	}
	CountTransfer()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "transfer recorded"})
}

// Sell godoc
// @Summary      Record a cart sale
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaleRequest  true  "location_id, items"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *InventoryHandler) Sell(c *fiber.Ctx) error {
	orgID, userID := GetOrgID(c), GetUserID(c)
	if orgID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	items := make([]inventory.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, inventory.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	result, err := h.sale.ProcessSale(c.Context(), orgID, in.LocationID, userID, items)
	if err != nil {
		return writeStockError(c, err)
	}
	CountSale()
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		Reference: result.Reference,
		Total:     result.Total,
		Display:   format.Currency(result.Total),
	})
}

// Receipt godoc
// @Summary      Sale receipt PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        reference  path  string  true  "Sale reference"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{reference}/receipt [get]
func (h *InventoryHandler) Receipt(c *fiber.Ctx) error {
	orgID := GetOrgID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	reference := c.Params("reference")
	pdfBytes, err := h.receipt.GenerateForSale(c.Context(), orgID, reference)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no sale found for reference"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="receipt-`+reference+`.pdf"`)
	return c.Send(pdfBytes)
}

// writeStockError maps the stock-movement sentinels onto HTTP statuses.
func writeStockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid input"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product or location not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "resource belongs to another organization"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
