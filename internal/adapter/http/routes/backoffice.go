package routes

import (
	"turismo_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOperatorCosts = "/operator-costs"
	PathReports       = "/reports"
	PathServiceTypes  = "/service-types"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	costHandler *handlers.OperatorCostHandler,
	historyHandler *handlers.HistoryHandler,
	reportHandler *handlers.ReportHandler,
	serviceTypeHandler *handlers.ServiceTypeHandler,
) {
	costs := rg.Group(PathOperatorCosts)
	{
		costs.GET("", costHandler.ListByRequestID)
		costs.GET("/:id", costHandler.GetByID)
		costs.PATCH("/:id", costHandler.UpdateDetails)
		costs.PATCH("/:id/approve", costHandler.ApprovePayment)
		costs.PATCH("/:id/lock", costHandler.Lock)
		costs.PATCH("/:id/unlock", costHandler.Unlock)
		costs.GET("/:id/history", historyHandler.GetByEntityID)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/payment-status", reportHandler.PaymentStatus)
		reports.GET("/supplier-balance", reportHandler.SupplierBalance)
		reports.GET("/cashflow", reportHandler.Cashflow)
	}

	serviceTypes := rg.Group(PathServiceTypes)
	{
		serviceTypes.GET("", serviceTypeHandler.List)
		serviceTypes.PATCH("/sort-order", serviceTypeHandler.Reorder)
	}
}
