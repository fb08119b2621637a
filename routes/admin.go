package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/sank4512/plutocollection.in/controllers/admin"
	orderControllers "github.com/sank4512/plutocollection.in/controllers/order"
	productcontroller "github.com/sank4512/plutocollection.in/controllers/product"
	"github.com/sank4512/plutocollection.in/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Every route passes
// the admin gate; there are no exceptions.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(db), middleware.RequireAdmin())
	{
		adminGroup.GET("/dashboard", adminController.Dashboard(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/bulk-delete", productcontroller.BulkDeleteProducts(db))
			productAdmin.DELETE("/:id/images/:image_id", productcontroller.DeleteProductImage(db))
			productAdmin.DELETE("/:id/images", productcontroller.CleanupProductImages(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeed)
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrder(db))
			orderAdmin.POST("/cleanup", orderControllers.BulkDeleteOrders(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
		}
	}
}
