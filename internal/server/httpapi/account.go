package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/dmitrijs2005/gophwallet/internal/money"
	"github.com/gin-gonic/gin"
)

// Error codes carried in the "code" field of account error responses.
const (
	CodeInvalidAmount      = "InvalidAmount"
	CodeSelfTransfer       = "SelfTransfer"
	CodeInsufficientFunds  = "InsufficientFunds"
	CodeAccountNotFound    = "AccountNotFound"
	CodeRecipientNotFound  = "RecipientNotFound"
	CodeTimeout            = "Timeout"
	CodeTransactionAborted = "TransactionAborted"
	CodeUnexpected         = "Unexpected"
	CodeInvalidRequest     = "InvalidRequest"
)

// TransferRequest carries the amount in display units. Amount is decoded
// loosely so that a non-numeric value is reported as an invalid amount.
type TransferRequest struct {
	Amount any    `json:"amount"`
	To     string `json:"to"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// transferError maps a transfer or balance error to a status and body.
func transferError(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, common.ErrInvalidAmount):
		return http.StatusBadRequest, errorResponse{common.ErrInvalidAmount.Error(), CodeInvalidAmount}
	case errors.Is(err, common.ErrSelfTransfer):
		return http.StatusBadRequest, errorResponse{common.ErrSelfTransfer.Error(), CodeSelfTransfer}
	case errors.Is(err, common.ErrInsufficientFunds):
		return http.StatusBadRequest, errorResponse{common.ErrInsufficientFunds.Error(), CodeInsufficientFunds}
	case errors.Is(err, common.ErrAccountNotFound):
		return http.StatusNotFound, errorResponse{common.ErrAccountNotFound.Error(), CodeAccountNotFound}
	case errors.Is(err, common.ErrRecipientNotFound):
		return http.StatusNotFound, errorResponse{common.ErrRecipientNotFound.Error(), CodeRecipientNotFound}
	case errors.Is(err, common.ErrTransferTimeout):
		return http.StatusGatewayTimeout, errorResponse{common.ErrTransferTimeout.Error(), CodeTimeout}
	case errors.Is(err, common.ErrTxAborted):
		return http.StatusInternalServerError, errorResponse{common.ErrTxAborted.Error(), CodeTransactionAborted}
	default:
		return http.StatusInternalServerError, errorResponse{"transfer failed", CodeUnexpected}
	}
}

func (s *Server) balance(c *gin.Context) {
	b, err := s.wallet.Balance(c.Request.Context(), c.GetString(userIDKey))
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{"Account not found", CodeAccountNotFound})
			return
		}
		s.logger.Error(c.Request.Context(), "balance lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{"Failed to fetch balance", CodeUnexpected})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": money.ToDisplayUnits(b)})
}

func (s *Server) transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{"invalid request body", CodeInvalidRequest})
		return
	}

	amount, ok := req.Amount.(float64)
	if !ok {
		status, body := transferError(common.ErrInvalidAmount)
		c.JSON(status, body)
		return
	}

	if err := s.wallet.Transfer(c.Request.Context(), c.GetString(userIDKey), req.To, amount); err != nil {
		status, body := transferError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transfer successful"})
}
