package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"salesdesk/internal/domain/entities"
	"salesdesk/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrOrderAlreadyPaid           = errors.New("order already paid")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IOrderPaymentUseCase charges an order through the configured payment
// gateway and marks it paid in the order store.

type IOrderPaymentUseCase interface {
	Pay(ctx context.Context, orderID string, payload json.RawMessage) (entities.Order, error)
}

type OrderPaymentUseCase struct {
	orders  IOrderStore
	gateway interfaces.IPaymentGateway
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(orders IOrderStore, gateway interfaces.IPaymentGateway) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{orders: orders, gateway: gateway}
}

// Pay validates the order, charges through the gateway (or fabricates an
// approved response in mock mode) and flips the order's payment status to
// Paid via the store. The charged amount is always taken from the stored
// order, never from the caller payload.
func (u *OrderPaymentUseCase) Pay(ctx context.Context, orderID string, payload json.RawMessage) (entities.Order, error) {
	log.Printf("[payment][usecase] pay start raw_order_id=%q payload_len=%d", orderID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) order_id=%s", orderID)
		return entities.Order{}, ErrInvalidPaymentPayload
	}

	order, ok := u.orders.Get(orderID)
	if !ok {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Payment == entities.PaymentStatusPaid {
		log.Printf("[payment][usecase] order already paid order_id=%s", orderID)
		return entities.Order{}, ErrOrderAlreadyPaid
	}

	amount := order.FinalizedPrice
	if amount == 0 {
		amount = order.Amount
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Order %s", orderID)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway order_id=%s", orderID)
	} else {
		if u.gateway == nil {
			log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
			return entities.Order{}, errors.New("payment gateway not configured")
		}
		providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
			if isGatewayUnauthorized(err) {
				return entities.Order{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Order{}, ErrPaymentGatewayBadRequest
			}
			return entities.Order{}, err
		}
		log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)
	}

	paid := entities.PaymentStatusPaid
	if err := u.orders.Update(ctx, entities.OrderPatch{ID: orderID, Payment: &paid}); err != nil {
		log.Printf("[payment][usecase] order store update failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}

	updated, _ := u.orders.Get(orderID)
	log.Printf("[payment][usecase] pay success order_id=%s payment=%s", orderID, updated.Payment)
	return updated, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
