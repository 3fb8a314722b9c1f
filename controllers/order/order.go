package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type CheckoutInput struct {
	Amount float64 `json:"amount" binding:"required"`
}

type UpdateShippingStatusInput struct {
	ShippingStatus string `json:"shippingStatus" binding:"required"`
}

func fail(c *gin.Context, err error) {
	status, msg := services.HTTPError(err)
	c.JSON(status, gin.H{"error": msg})
}

func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return v.(string), true
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// POST /orders/checkout — registers the amount with the payment gateway and
// hands the gateway order back to the client, which completes the payment.
func Checkout(checkout *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := checkout.CreateGatewayOrder(input.Amount)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /orders/confirm — persists the order after the client reports a
// completed gateway payment.
func ConfirmPayment(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.ConfirmPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := orders.ConfirmPayment(input)
		if err != nil {
			fail(c, err)
			return
		}
		BroadcastOrderEvent("order.placed", *order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /admin/orders
func GetAllOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.Orders()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/orders
func GetMyOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		list, err := orders.OrdersForUser(userID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /user/orders/:orderID — owner only.
func GetMyOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := orders.OrderForUser(id, userID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders/:orderID — admin lookup, no ownership restriction.
func GetOrderByID(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := orders.Order(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /user/orders/:orderID/cancel
func CancelOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		order, err := orders.CancelOrder(id, userID)
		if err != nil {
			fail(c, err)
			return
		}
		BroadcastOrderEvent("order.cancelled", *order)
		c.JSON(http.StatusOK, order)
	}
}

// PATCH /admin/orders/:orderID/shipping-status
func UpdateShippingStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var input UpdateShippingStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := orders.SetShippingStatus(id, models.ShippingStatus(input.ShippingStatus))
		if err != nil {
			fail(c, err)
			return
		}
		BroadcastOrderEvent("order.shipping-status", *order)
		c.JSON(http.StatusOK, order)
	}
}
