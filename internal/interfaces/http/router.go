package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tumaini/duka-api/internal/application/approval"
	"github.com/tumaini/duka-api/internal/application/auth"
	"github.com/tumaini/duka-api/internal/application/inventory"
	"github.com/tumaini/duka-api/internal/application/receipt"
	"github.com/tumaini/duka-api/internal/application/reports"
	"github.com/tumaini/duka-api/internal/application/usecase"
	"github.com/tumaini/duka-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OrganizationUC *usecase.OrganizationUseCase
	LocationUC     *usecase.LocationUseCase
	ProductUC      *usecase.ProductUseCase
	InventoryList  *inventory.ListUseCase
	TransferUC     *inventory.TransferUseCase
	SaleUC         *inventory.SaleUseCase
	ApprovalUC     *approval.UseCase
	ReceiptUC      *receipt.UseCase
	SalesReportUC  *reports.SalesUseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Organizations (public, bootstrap path for a fresh deployment)
	orgs := api.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	orgs.Get("/", orgHandler.List)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/:id", orgHandler.GetByID)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)

	// Locations and staff (writes restricted to admin/manager)
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations := protected.Group("/locations")
	locations.Get("/", locationHandler.List)
	locations.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), locationHandler.Create)
	protected.Get("/staff", locationHandler.Staff)

	// Products (writes restricted to admin/manager)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleManager), productHandler.Delete)

	// Inventory reads and transfers
	inventoryHandler := NewInventoryHandler(deps.InventoryList, deps.TransferUC, deps.SaleUC, deps.ReceiptUC)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/transfers", inventoryHandler.Transfer)

	// Sales and receipts
	sales := protected.Group("/sales")
	sales.Post("/", inventoryHandler.Sell)
	sales.Get("/:reference/receipt", inventoryHandler.Receipt)

	// Approval queue (responding restricted to admin/manager)
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	approvals := protected.Group("/approvals")
	approvals.Post("/requests", approvalHandler.Request)
	approvals.Get("/pending", approvalHandler.Pending)
	approvals.Post("/:id/respond", RequireRole(entity.RoleAdmin, entity.RoleManager), approvalHandler.Respond)

	// Reports
	reportHandler := NewReportHandler(deps.SalesReportUC)
	protected.Get("/reports/sales", reportHandler.Sales)
}
