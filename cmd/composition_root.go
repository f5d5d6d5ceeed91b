package cmd

import (
	"log/slog"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/notify"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/adapters/out/postgres"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/queries"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/loyalty"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/services"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	loyaltyCfg loyalty.Config
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	loyaltyCfg := loyalty.DefaultConfig()

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, loyaltyCfg),
		notifier:   notify.NewSlogNotifier(logger),
		loyaltyCfg: loyaltyCfg,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewAgentAssigner(), c.notifier, c.loyaltyCfg, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f)
}

func (c *CompositionRoot) CreateCollectCodPaymentCommandHandler() commands.CollectCodPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCollectCodPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRequestReturnExchangeCommandHandler() commands.RequestReturnExchangeCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestReturnExchangeCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateReturnStatusCommandHandler() commands.UpdateReturnStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReturnStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateRedeemPointsCommandHandler() commands.RedeemPointsCommandHandler {
	var f commands.LoyaltyUoWFactory = FuncLoyaltyUoWFactory(func() commands.LoyaltyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRedeemPointsCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyReferralCommandHandler() commands.ApplyReferralCommandHandler {
	var f commands.LoyaltyUoWFactory = FuncLoyaltyUoWFactory(func() commands.LoyaltyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyReferralCommandHandler(f, c.loyaltyCfg)
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentOrdersQueryHandler() queries.GetAgentOrdersQueryHandler {
	return queries.NewGetAgentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedOrdersQueryHandler() queries.GetUnassignedOrdersQueryHandler {
	return queries.NewGetUnassignedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoyaltyDashboardQueryHandler() queries.GetLoyaltyDashboardQueryHandler {
	return queries.NewGetLoyaltyDashboardQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncLoyaltyUoWFactory func() commands.LoyaltyUoW

func (f FuncLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}
