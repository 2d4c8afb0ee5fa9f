package cmd

import (
	"log/slog"
	"time"

	httpadapter "skiservice/internal/adapters/in/http"
	"skiservice/internal/adapters/out/auth/jwtissuer"
	"skiservice/internal/adapters/out/auth/passwordhash"
	"skiservice/internal/adapters/out/postgres"
	"skiservice/internal/adapters/out/postgres/servicetyperepo"
	"skiservice/internal/core/application/usecases/commands"
	"skiservice/internal/core/application/usecases/queries"
	"skiservice/internal/core/domain/services"
	"skiservice/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	issuer     *jwtissuer.Issuer
	hasher     passwordhash.BcryptHasher
	clock      ClockFunc
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	issuer, err := jwtissuer.New([]byte(cfg.JWTSecret), cfg.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:     issuer,
		hasher:     passwordhash.New(cfg.BcryptCost),
		clock:      func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) employeeUoWFactory() commands.EmployeeUoWFactory {
	return FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) serviceOrderUoWFactory() commands.ServiceOrderUoWFactory {
	return FuncServiceOrderUoWFactory(func() commands.ServiceOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.employeeUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginEmployeeCommandHandler() commands.LoginEmployeeCommandHandler {
	return commands.NewLoginEmployeeCommandHandler(c.employeeUoWFactory(), c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateUnlockEmployeeCommandHandler() commands.UnlockEmployeeCommandHandler {
	return commands.NewUnlockEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	return commands.NewCreateServiceOrderCommandHandler(c.serviceOrderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommentCommandHandler() commands.UpdateOrderCommentCommandHandler {
	return commands.NewUpdateOrderCommentCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteServiceOrderCommandHandler() commands.DeleteServiceOrderCommandHandler {
	return commands.NewDeleteServiceOrderCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteAllServiceOrdersCommandHandler() commands.DeleteAllServiceOrdersCommandHandler {
	return commands.NewDeleteAllServiceOrdersCommandHandler(c.serviceOrderUoWFactory())
}

func (c *CompositionRoot) CreateListServiceOrdersQueryHandler() queries.ListServiceOrdersQueryHandler {
	return queries.NewListServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueServiceOrdersQueryHandler() queries.GetOverdueServiceOrdersQueryHandler {
	return queries.NewGetOverdueServiceOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceTypesQueryHandler() queries.GetServiceTypesQueryHandler {
	return queries.NewGetServiceTypesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServiceTypeQuoteQueryHandler() queries.GetServiceTypeQuoteQueryHandler {
	return queries.NewGetServiceTypeQuoteQueryHandler(
		servicetyperepo.NewGormServiceTypeRepository(c.gormDB),
		services.NewPriceCalculator(),
	)
}

// CreateRouter wires every use case into the echo router.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	createEmployee := c.CreateCreateEmployeeCommandHandler()
	loginEmployee := c.CreateLoginEmployeeCommandHandler()
	unlockEmployee := c.CreateUnlockEmployeeCommandHandler()
	createServiceOrder := c.CreateCreateServiceOrderCommandHandler()
	updateOrderComment := c.CreateUpdateOrderCommentCommandHandler()
	updateOrderStatus := c.CreateUpdateOrderStatusCommandHandler()
	deleteServiceOrder := c.CreateDeleteServiceOrderCommandHandler()
	deleteAllServiceOrders := c.CreateDeleteAllServiceOrdersCommandHandler()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateEmployee:         &createEmployee,
		LoginEmployee:          &loginEmployee,
		UnlockEmployee:         &unlockEmployee,
		CreateServiceOrder:     &createServiceOrder,
		UpdateOrderComment:     &updateOrderComment,
		UpdateOrderStatus:      &updateOrderStatus,
		DeleteServiceOrder:     &deleteServiceOrder,
		DeleteAllServiceOrders: &deleteAllServiceOrders,
		ListServiceOrders:      c.CreateListServiceOrdersQueryHandler(),
		GetServiceTypes:        c.CreateGetServiceTypesQueryHandler(),
		GetServiceTypeQuote:    c.CreateGetServiceTypeQuoteQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, c.issuer, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueServiceOrdersQueryHandler(),
		c.clock,
		c.cfg.OverdueJobSchedule,
		c.logger,
	)
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncServiceOrderUoWFactory func() commands.ServiceOrderUoW

func (f FuncServiceOrderUoWFactory) Create() commands.ServiceOrderUoW {
	return f()
}

// ClockFunc adapts a function to ports.Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}
