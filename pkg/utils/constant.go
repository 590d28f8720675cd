package utils

// Notification titles fired by the status-transition workflow
const (
	TITLE_DELIVERY_ASSIGNED  = "New Delivery Assigned"
	TITLE_AGENT_ASSIGNED     = "Delivery Agent Assigned"
	TITLE_AGENT_ACCEPTED     = "Delivery Agent Accepted Order"
	TITLE_PRODUCT_PICKED     = "Product Picked Up"
	TITLE_AGENT_NEAR         = "Delivery Agent is Near Your Location"
	TITLE_ORDER_DELIVERED    = "Order Delivered!"
	TITLE_PRODUCT_DELIVERED  = "Product Delivered Successfully"
	TITLE_DELIVERY_COMPLETED = "Delivery Completed"
	TITLE_ORDER_READY        = "New Order Ready for Delivery"
	TITLE_PAYMENT_CONFIRMED  = "Payment Confirmed"
)

// Notification message templates; all take the short order id first
const (
	MESS_DELIVERY_ASSIGNED  = "You have been assigned to deliver order %v to %v. Please accept the delivery."
	MESS_AGENT_ASSIGNED     = "Your order (%v) has been assigned to %v. Delivery will begin soon."
	MESS_AGENT_ACCEPTED     = "Delivery agent %v has accepted your order (%v). Your order will be picked up soon."
	MESS_PRODUCT_PICKED     = "Your product for order %v has been picked up by delivery agent %v."
	MESS_AGENT_NEAR         = "Delivery agent %v is near your location with order (%v). Please be ready to receive your delivery."
	MESS_ORDER_DELIVERED    = "Your order (%v) has been delivered successfully by %v. Thank you for your purchase!"
	MESS_PRODUCT_DELIVERED  = "Your product has been delivered successfully to %v for order %v."
	MESS_DELIVERY_COMPLETED = "Order %v has been delivered to %v by %v."
	MESS_ORDER_READY        = "Order %v from %v has been paid and is ready for delivery agent assignment."
	MESS_PAYMENT_CONFIRMED  = "Your order (%v) payment has been confirmed. Delivery agent will be assigned soon."
)

const (
	DEFAULT_CUSTOMER_NAME = "Customer"
	DEFAULT_AGENT_NAME    = "Delivery Agent"
)

// ShortIDLen is how much of an order id shows up in user-facing messages
const ShortIDLen = 8

const MinPasswordLen = 6
