package handler

import (
	"net/http"
	"strconv"

	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/domain/usecase/wallet"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet and ledger HTTP requests
type WalletHandler struct {
	walletUseCase *wallet.UseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase *wallet.UseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// ApplyTransaction handles the POST /api/wallet/transactions endpoint
func (h *WalletHandler) ApplyTransaction(c *gin.Context) {
	var req dto.ApplyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid wallet transaction request", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.walletUseCase.ApplyTransaction(c.Request.Context(), req.UserID, req.Amount, req.Type, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplyTransactionResponse{
		Success:     true,
		Transaction: dto.NewTransactionResponse(result.Transaction),
		NewBalance:  result.NewBalance,
	})
}

// GetBalance handles the GET /api/wallet/:userId endpoint. Unknown users
// get a 200 with exists=false rather than a 404.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid user ID format")
		return
	}

	view, err := h.walletUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:           view.UserID,
		Balance:          view.Balance,
		TransactionCount: view.TransactionCount,
		Exists:           view.Exists,
	})
}

// ListTransactions handles the GET /api/wallet/transactions endpoint
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil || userID == 0 {
		respondBadRequest(c, "Missing or invalid userId query parameter")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(wallet.DefaultPageLimit)))

	result, err := h.walletUseCase.ListTransactions(c.Request.Context(), userID, page, limit,
		c.Query("type"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(result))
}
