package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one purchased line item in a checkout request.
type NewOrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrderRequest is the checkout payload. The customer comes from the
// X-User-Id header, not the body.
type CreateOrderRequest struct {
	Items                []NewOrderItem `json:"items"`
	City                 string         `json:"city"`
	Pincode              string         `json:"pincode"`
	PaymentMethod        string         `json:"paymentMethod"`
	RewardPointsToRedeem int            `json:"rewardPointsToRedeem"`
}

// CreateOrderResponse confirms a placed order.
type CreateOrderResponse struct {
	ID             string  `json:"id"`
	ItemsTotal     float64 `json:"itemsTotal"`
	RewardDiscount float64 `json:"rewardDiscount"`
	AmountPayable  float64 `json:"amountPayable"`
	AgentAssigned  bool    `json:"agentAssigned"`
}

// ReturnExchangeRequest opens a return or exchange on a delivered order.
type ReturnExchangeRequest struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// UpdateReturnStatusRequest advances a return/exchange request.
type UpdateReturnStatusRequest struct {
	Status string `json:"status"`
}

// RegisterAgentRequest registers a delivery agent with their coverage.
type RegisterAgentRequest struct {
	Name            string   `json:"name"`
	ServiceArea     string   `json:"serviceArea"`
	ServicePincodes []string `json:"servicePincodes"`
}

// RegisterAgentResponse returns the new agent's identifier.
type RegisterAgentResponse struct {
	ID string `json:"id"`
}

// Agent is one delivery agent in the read model, load included.
type Agent struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ServiceArea     string   `json:"serviceArea"`
	ServicePincodes []string `json:"servicePincodes"`
	CurrentLoad     int      `json:"currentLoad"`
}

// UnassignedOrder is one order awaiting agent assignment.
type UnassignedOrder struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	City          string    `json:"city"`
	Pincode       string    `json:"pincode"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AgentOrder is one order in an agent's work queue.
type AgentOrder struct {
	ID                 string `json:"id"`
	CustomerID         string `json:"customerId"`
	City               string `json:"city"`
	Pincode            string `json:"pincode"`
	PaymentMethod      string `json:"paymentMethod"`
	IsPaid             bool   `json:"isPaid"`
	CodPaymentReceived bool   `json:"codPaymentReceived"`
	IsDelivered        bool   `json:"isDelivered"`
	ReturnStatus       string `json:"returnStatus"`
}

// RedeemPointsRequest converts points into a discount amount.
type RedeemPointsRequest struct {
	Points int `json:"points"`
}

// RedeemPointsResponse reports the discount obtained.
type RedeemPointsResponse struct {
	Discount float64 `json:"discount"`
}

// ApplyReferralRequest links the calling user to a referrer's code.
type ApplyReferralRequest struct {
	Code string `json:"code"`
}

// LoyaltyHistoryEntry is one points movement in the dashboard.
type LoyaltyHistoryEntry struct {
	Delta      int       `json:"delta"`
	Category   string    `json:"category"`
	OrderID    *string   `json:"orderId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// LoyaltyDashboard is the customer's loyalty read model.
type LoyaltyDashboard struct {
	UserID       string                `json:"userId"`
	Points       int                   `json:"points"`
	TotalSpent   float64               `json:"totalSpent"`
	Tier         string                `json:"tier"`
	ReferralCode string                `json:"referralCode"`
	History      []LoyaltyHistoryEntry `json:"history"`
}
