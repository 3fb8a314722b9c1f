package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shubrajit22/Zestwear-sub000/models"
	"github.com/Shubrajit22/Zestwear-sub000/services"
)

type ReturnRequestInput struct {
	OrderID   uint                       `json:"orderId" binding:"required"`
	UserEmail string                     `json:"userEmail" binding:"required,email"`
	Reason    string                     `json:"reason" binding:"required"`
	Products  []services.ReturnItemInput `json:"products"`
}

// POST /user/returns
func RequestReturn(returns *services.ReturnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReturnRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		req, err := returns.Request(input.OrderID, input.UserEmail, input.Reason, input.Products)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, req)
	}
}

// GET /admin/returns?status=requested
func ListReturns(returns *services.ReturnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := returns.List(models.ReturnStatus(c.Query("status")))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func returnIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("returnID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid return request id"})
		return 0, false
	}
	return uint(id), true
}

// POST /admin/returns/:returnID/approve
func ApproveReturn(returns *services.ReturnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := returnIDParam(c)
		if !ok {
			return
		}
		req, err := returns.Approve(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

// POST /admin/returns/:returnID/reject
func RejectReturn(returns *services.ReturnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := returnIDParam(c)
		if !ok {
			return
		}
		req, err := returns.Reject(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}

// POST /admin/returns/:returnID/refund
func RefundReturn(returns *services.ReturnService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := returnIDParam(c)
		if !ok {
			return
		}
		req, err := returns.MarkRefunded(id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, req)
	}
}
