// Package http provides the inbound HTTP adapter. It translates echo
// requests into commands and queries, and domain errors into HTTP status
// codes. The acting user arrives in the X-User-Id and X-User-Role headers;
// an API gateway in front of the service is expected to authenticate them.
package http

import (
	"net/http"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/commands"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/queries"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	markOrderPaidHandler         commands.MarkOrderPaidCommandHandler
	collectCodPaymentHandler     commands.CollectCodPaymentCommandHandler
	confirmDeliveryHandler       commands.ConfirmDeliveryCommandHandler
	requestReturnExchangeHandler commands.RequestReturnExchangeCommandHandler
	updateReturnStatusHandler    commands.UpdateReturnStatusCommandHandler
	registerAgentHandler         commands.RegisterAgentCommandHandler
	redeemPointsHandler          commands.RedeemPointsCommandHandler
	applyReferralHandler         commands.ApplyReferralCommandHandler

	// Query handlers
	getAllAgentsHandler        queries.GetAllAgentsQueryHandler
	getAgentOrdersHandler      queries.GetAgentOrdersQueryHandler
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler
	getLoyaltyDashboardHandler queries.GetLoyaltyDashboardQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	markOrderPaidHandler commands.MarkOrderPaidCommandHandler,
	collectCodPaymentHandler commands.CollectCodPaymentCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	requestReturnExchangeHandler commands.RequestReturnExchangeCommandHandler,
	updateReturnStatusHandler commands.UpdateReturnStatusCommandHandler,
	registerAgentHandler commands.RegisterAgentCommandHandler,
	redeemPointsHandler commands.RedeemPointsCommandHandler,
	applyReferralHandler commands.ApplyReferralCommandHandler,
	getAllAgentsHandler queries.GetAllAgentsQueryHandler,
	getAgentOrdersHandler queries.GetAgentOrdersQueryHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	getLoyaltyDashboardHandler queries.GetLoyaltyDashboardQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		markOrderPaidHandler:         markOrderPaidHandler,
		collectCodPaymentHandler:     collectCodPaymentHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		requestReturnExchangeHandler: requestReturnExchangeHandler,
		updateReturnStatusHandler:    updateReturnStatusHandler,
		registerAgentHandler:         registerAgentHandler,
		redeemPointsHandler:          redeemPointsHandler,
		applyReferralHandler:         applyReferralHandler,
		getAllAgentsHandler:          getAllAgentsHandler,
		getAgentOrdersHandler:        getAgentOrdersHandler,
		getUnassignedOrdersHandler:   getUnassignedOrdersHandler,
		getLoyaltyDashboardHandler:   getLoyaltyDashboardHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/paid", s.MarkOrderPaid)
	api.PUT("/orders/:id/cod-payment", s.CollectCodPayment)
	api.PUT("/orders/:id/deliver", s.ConfirmDelivery)
	api.POST("/orders/:id/return-exchange", s.RequestReturnExchange)
	api.PUT("/orders/:id/return-exchange-status", s.UpdateReturnStatus)

	api.POST("/agents", s.RegisterAgent)
	api.GET("/agents", s.GetAgents)
	api.GET("/agents/:id/orders", s.GetAgentOrders)

	api.GET("/loyalty/dashboard", s.GetLoyaltyDashboard)
	api.POST("/loyalty/redeem", s.RedeemPoints)
	api.POST("/loyalty/apply-referral", s.ApplyReferral)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the
// calling customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request CreateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.NewOrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := parseUUID(item.ProductID, "productId")
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, commands.NewOrderItem{
			ProductID: productID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		items,
		request.City,
		request.Pincode,
		paymentMethod,
		request.RewardPointsToRedeem,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	createdOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:             createdOrder.ID().String(),
		ItemsTotal:     createdOrder.ItemsTotal(),
		RewardDiscount: createdOrder.RewardPointsUsed().DiscountAmount,
		AmountPayable:  createdOrder.AmountPayable(),
		AgentAssigned:  createdOrder.Agent() != nil,
	})
}

// MarkOrderPaid handles POST /api/v1/orders/:id/paid - the payment gateway
// callback for prepaid orders.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markOrderPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CollectCodPayment handles PUT /api/v1/orders/:id/cod-payment - the
// assigned agent records the cash collection.
func (s *Server) CollectCodPayment(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	agentID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCollectCodPaymentCommand(orderID, agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.collectCodPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles PUT /api/v1/orders/:id/deliver - the assigned
// agent marks the order delivered.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	agentID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestReturnExchange handles POST /api/v1/orders/:id/return-exchange -
// the buyer opens a return or exchange request.
func (s *Server) RequestReturnExchange(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	customerID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ReturnExchangeRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	requestType, err := order.ReturnTypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRequestReturnExchangeCommand(orderID, customerID, requestType, request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestReturnExchangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateReturnStatus handles PUT /api/v1/orders/:id/return-exchange-status - an admin
// decides on a request, or the assigned agent advances the physical flow.
func (s *Server) UpdateReturnStatus(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("id"), "order id")
	if err != nil {
		return respondError(ctx, err)
	}

	actorID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	actorRole, err := userRole(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateReturnStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	nextStatus, err := order.ReturnStatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateReturnStatusCommand(orderID, actorID, actorRole, nextStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateReturnStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterAgent handles POST /api/v1/agents - registers a delivery agent.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	var request RegisterAgentRequest
	if err := ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(
		agentID, request.Name, request.ServiceArea, request.ServicePincodes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.registerAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterAgentResponse{ID: agentID.String()})
}

// GetAgents handles GET /api/v1/agents - lists agents with derived loads.
func (s *Server) GetAgents(ctx echo.Context) error {
	query := queries.NewGetAllAgentsQuery()

	agents, err := s.getAllAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			ID:              a.ID.String(),
			Name:            a.Name,
			ServiceArea:     a.ServiceArea,
			ServicePincodes: a.ServicePincodes,
			CurrentLoad:     a.CurrentLoad,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAgentOrders handles GET /api/v1/agents/:id/orders - an agent's work
// queue.
func (s *Server) GetAgentOrders(ctx echo.Context) error {
	agentID, err := parseUUID(ctx.Param("id"), "agent id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAgentOrdersQuery(agentID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAgentOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AgentOrder, len(orders))
	for i, o := range orders {
		response[i] = AgentOrder{
			ID:                 o.ID.String(),
			CustomerID:         o.CustomerID.String(),
			City:               o.City,
			Pincode:            o.Pincode,
			PaymentMethod:      o.PaymentMethod,
			IsPaid:             o.IsPaid,
			CodPaymentReceived: o.CodPaymentReceived,
			IsDelivered:        o.IsDelivered,
			ReturnStatus:       o.ReturnStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned - the backlog
// awaiting agent assignment.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UnassignedOrder, len(orders))
	for i, o := range orders {
		response[i] = UnassignedOrder{
			ID:            o.ID.String(),
			CustomerID:    o.CustomerID.String(),
			City:          o.City,
			Pincode:       o.Pincode,
			PaymentMethod: o.PaymentMethod,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLoyaltyDashboard handles GET /api/v1/loyalty/dashboard - the calling
// customer's loyalty state.
func (s *Server) GetLoyaltyDashboard(ctx echo.Context) error {
	callerID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetLoyaltyDashboardQuery(callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	dashboard, err := s.getLoyaltyDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]LoyaltyHistoryEntry, len(dashboard.History))
	for i, entry := range dashboard.History {
		var entryOrderID *string
		if entry.OrderID != nil {
			raw := entry.OrderID.String()
			entryOrderID = &raw
		}
		history[i] = LoyaltyHistoryEntry{
			Delta:      entry.Delta,
			Category:   entry.Category,
			OrderID:    entryOrderID,
			OccurredAt: entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, LoyaltyDashboard{
		UserID:       dashboard.UserID.String(),
		Points:       dashboard.Points,
		TotalSpent:   dashboard.TotalSpent,
		Tier:         dashboard.Tier,
		ReferralCode: dashboard.ReferralCode,
		History:      history,
	})
}

// RedeemPoints handles POST /api/v1/loyalty/redeem - converts the calling
// customer's points into a discount amount.
func (s *Server) RedeemPoints(ctx echo.Context) error {
	callerID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request RedeemPointsRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRedeemPointsCommand(callerID, request.Points)
	if err != nil {
		return respondError(ctx, err)
	}

	discount, err := s.redeemPointsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RedeemPointsResponse{Discount: discount})
}

// ApplyReferral handles POST /api/v1/loyalty/apply-referral - links the
// calling user to the owner of the given referral code and credits both.
func (s *Server) ApplyReferral(ctx echo.Context) error {
	callerID, err := userID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request ApplyReferralRequest
	if err = ctx.Bind(&request); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewApplyReferralCommand(request.Code, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.applyReferralHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// userID reads the acting user's identifier from the X-User-Id header.
func userID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerUserID)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(headerUserID + " header")
	}
	return parseUUID(raw, headerUserID+" header")
}

// userRole reads the acting user's role from the X-User-Role header.
func userRole(ctx echo.Context) (commands.ActorRole, error) {
	raw := ctx.Request().Header.Get(headerUserRole)
	if raw == "" {
		return commands.ActorRoleUnknown, errs.NewValueIsRequiredError(headerUserRole + " header")
	}
	return commands.ActorRoleFromString(raw)
}

func parseUUID(raw string, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}
