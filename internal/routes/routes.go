package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/logger"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
)

// InitRouter собирает все зависимости и регистрирует маршруты API.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, log *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger.Named(log, "auth"))

	// --- репозитории ---
	companyRepo := repositories.NewCompanyRepository(dbConn)
	departmentRepo := repositories.NewDepartmentRepository(dbConn)
	employeeRepo := repositories.NewEmployeeRepository(dbConn)
	brandRepo := repositories.NewBrandRepository(dbConn)
	supplierRepo := repositories.NewSupplierRepository(dbConn)
	typeRepo := repositories.NewEquipmentTypeRepository(dbConn)
	statusRepo := repositories.NewEquipmentStatusRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	historyRepo := repositories.NewEquipmentHistoryRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	maintenanceStatusRepo := repositories.NewMaintenanceStatusRepository(dbConn)
	invoiceRepo := repositories.NewInvoiceRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- сервисы ---
	authService := services.NewAuthService(employeeRepo, jwtSvc, logger.Named(log, "auth"))
	companyService := services.NewCompanyService(companyRepo, log)
	departmentService := services.NewDepartmentService(departmentRepo, log)
	employeeService := services.NewEmployeeService(employeeRepo, logger.Named(log, "employee"))
	brandService := services.NewBrandService(brandRepo, log)
	supplierService := services.NewSupplierService(supplierRepo, log)
	typeService := services.NewEquipmentTypeService(typeRepo, log)
	statusService := services.NewEquipmentStatusService(statusRepo, log)
	equipmentService := services.NewEquipmentService(
		dbConn, equipmentRepo, historyRepo, employeeRepo, statusRepo, cacheRepo,
		logger.Named(log, "equipment"),
	)
	historyService := services.NewEquipmentHistoryService(historyRepo, logger.Named(log, "history"))
	maintenanceService := services.NewMaintenanceService(
		dbConn, maintenanceRepo, maintenanceStatusRepo, equipmentRepo, employeeRepo,
		logger.Named(log, "maintenance"),
	)
	maintenanceStatusService := services.NewMaintenanceStatusService(maintenanceStatusRepo, log)
	invoiceService := services.NewInvoiceService(dbConn, invoiceRepo, logger.Named(log, "invoice"))
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Dashboard.CacheTTL, log)
	reportService := services.NewReportService(reportRepo, log)

	// --- контроллеры ---
	authCtrl := controllers.NewAuthController(authService, log)
	companyCtrl := controllers.NewCompanyController(companyService, log)
	departmentCtrl := controllers.NewDepartmentController(departmentService, log)
	employeeCtrl := controllers.NewEmployeeController(employeeService, log)
	brandCtrl := controllers.NewBrandController(brandService, log)
	supplierCtrl := controllers.NewSupplierController(supplierService, log)
	typeCtrl := controllers.NewEquipmentTypeController(typeService, log)
	statusCtrl := controllers.NewEquipmentStatusController(statusService, log)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, historyService, log)
	historyCtrl := controllers.NewEquipmentHistoryController(historyService, log)
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, maintenanceStatusService, log)
	invoiceCtrl := controllers.NewInvoiceController(invoiceService, log)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, log)
	reportCtrl := controllers.NewReportController(reportService, log)

	runAuthRouter(api, authCtrl)

	// Все остальные маршруты требуют авторизации и понимают заголовок X-Company-ID.
	secureGroup := api.Group("", authMW.Auth, middleware.CompanyScope())

	runCompanyRouter(secureGroup, companyCtrl, authMW)
	runDepartmentRouter(secureGroup, departmentCtrl, authMW)
	runEmployeeRouter(secureGroup, employeeCtrl, authMW)
	runBrandRouter(secureGroup, brandCtrl, authMW)
	runSupplierRouter(secureGroup, supplierCtrl, authMW)
	runEquipmentTypeRouter(secureGroup, typeCtrl, authMW)
	runEquipmentStatusRouter(secureGroup, statusCtrl, authMW)
	runEquipmentRouter(secureGroup, equipmentCtrl, authMW)
	runEquipmentHistoryRouter(secureGroup, historyCtrl)
	runMaintenanceRouter(secureGroup, maintenanceCtrl, authMW)
	runInvoiceRouter(secureGroup, invoiceCtrl, authMW)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runReportRouter(secureGroup, reportCtrl)

	log.Info("Маршруты API зарегистрированы")
}
