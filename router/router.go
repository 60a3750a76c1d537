package router

import (
	"net/http"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/controllers"
	"github.com/enapu/yard-backend/dto"
	"github.com/enapu/yard-backend/middlewares"
	"github.com/enapu/yard-backend/services"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// crud registers the list/create/detail/update/delete handlers of one
// resource. PUT and PATCH share the partial update handler.
func crud(g *gin.RouterGroup, path string, list, create, get, update, remove gin.HandlerFunc) {
	g.GET(path, list)
	g.POST(path, create)
	g.GET(path+"/:id", get)
	g.PUT(path+"/:id", update)
	g.PATCH(path+"/:id", update)
	g.DELETE(path+"/:id", remove)
}

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	if err := middlewares.RegisterValidators(); err != nil {
		utils.ErrorLogger.Errorf("Failed to register validators: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))

	hasher := utils.NewPasswordHasher(cfg.PasswordHasher, cfg.PBKDF2Iter)
	userSvc := services.NewUserService(db, hasher)
	ticketSvc := services.NewTicketService(db, dto.TicketPreloads...)
	paymentSvc := services.NewPaymentService(db)
	reportSvc := services.NewReportService(db, paymentSvc)

	roleCtrl := controllers.NewRoleController(db)
	levelCtrl := controllers.NewAccessLevelController(db)
	userCtrl := controllers.NewUserController(db, userSvc)
	zoneCtrl := controllers.NewZoneController(db)
	slotCtrl := controllers.NewSlotController(db)
	shipCtrl := controllers.NewShipController(db)
	appointmentCtrl := controllers.NewAppointmentController(db)
	containerCtrl := controllers.NewContainerController(db)
	ticketCtrl := controllers.NewTicketController(db, ticketSvc)
	invoiceCtrl := controllers.NewInvoiceController(db, paymentSvc)
	paymentCtrl := controllers.NewPaymentController(db)
	reportCtrl := controllers.NewReportController(db, reportSvc)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group(cfg.APIPrefix)

	// ----------------------------------------------------------------
	//                      USERS & ACCESS
	// ----------------------------------------------------------------
	crud(api, "/roles", roleCtrl.GetAllRoles, roleCtrl.CreateRole, roleCtrl.GetRoleByID,
		roleCtrl.UpdateRole, roleCtrl.DeleteRole)
	crud(api, "/niveles", levelCtrl.GetAllLevels, levelCtrl.CreateLevel, levelCtrl.GetLevelByID,
		levelCtrl.UpdateLevel, levelCtrl.DeleteLevel)

	api.POST("/usuarios/login", userCtrl.Login)
	api.GET("/usuarios/by_role", userCtrl.GetUsersByRole)
	crud(api, "/usuarios", userCtrl.GetAllUsers, userCtrl.CreateUser, userCtrl.GetUserByID,
		userCtrl.UpdateUser, userCtrl.DeleteUser)

	// ----------------------------------------------------------------
	//                      YARD
	// ----------------------------------------------------------------
	crud(api, "/zonas", zoneCtrl.GetAllZones, zoneCtrl.CreateZone, zoneCtrl.GetZoneByID,
		zoneCtrl.UpdateZone, zoneCtrl.DeleteZone)
	crud(api, "/ubicaciones-slot", slotCtrl.GetAllSlots, slotCtrl.CreateSlot, slotCtrl.GetSlotByID,
		slotCtrl.UpdateSlot, slotCtrl.DeleteSlot)
	crud(api, "/buques", shipCtrl.GetAllShips, shipCtrl.CreateShip, shipCtrl.GetShipByID,
		shipCtrl.UpdateShip, shipCtrl.DeleteShip)
	crud(api, "/citas-recojo", appointmentCtrl.GetAllAppointments, appointmentCtrl.CreateAppointment,
		appointmentCtrl.GetAppointmentByID, appointmentCtrl.UpdateAppointment, appointmentCtrl.DeleteAppointment)
	crud(api, "/contenedores", containerCtrl.GetAllContainers, containerCtrl.CreateContainer,
		containerCtrl.GetContainerByID, containerCtrl.UpdateContainer, containerCtrl.DeleteContainer)

	// TICKETS
	api.GET("/tickets/by_estado", ticketCtrl.GetTicketsByStatus)
	api.GET("/tickets/by_usuario", ticketCtrl.GetTicketsByUser)
	api.PATCH("/tickets/:id/cambiar_estado", ticketCtrl.ChangeStatus)
	crud(api, "/tickets", ticketCtrl.GetAllTickets, ticketCtrl.CreateTicket, ticketCtrl.GetTicketByID,
		ticketCtrl.UpdateTicket, ticketCtrl.DeleteTicket)

	// ----------------------------------------------------------------
	//                      BILLING & REPORTS
	// ----------------------------------------------------------------
	api.GET("/facturas/:id/pagos", invoiceCtrl.GetInvoicePayments)
	crud(api, "/facturas", invoiceCtrl.GetAllInvoices, invoiceCtrl.CreateInvoice, invoiceCtrl.GetInvoiceByID,
		invoiceCtrl.UpdateInvoice, invoiceCtrl.DeleteInvoice)
	crud(api, "/pagos", paymentCtrl.GetAllPayments, paymentCtrl.CreatePayment, paymentCtrl.GetPaymentByID,
		paymentCtrl.UpdatePayment, paymentCtrl.DeletePayment)

	api.GET("/reportes/exportar", reportCtrl.ExportReport)
	crud(api, "/reportes", reportCtrl.GetAllReports, reportCtrl.CreateReport, reportCtrl.GetReportByID,
		reportCtrl.UpdateReport, reportCtrl.DeleteReport)

	api.GET("/dashboard", dashboardCtrl.GetDashboardStats)

	return r
}
