package handler

import (
	"errors"
	"fmt"
	"lendboard/internal/aave"
	"lendboard/internal/core"
	"lendboard/internal/dashboard"
	"lendboard/internal/http/handler/middleware"
	"lendboard/internal/http/payload"
	"lendboard/internal/wallet"
	"net/http"

	"github.com/ethereum/go-ethereum/accounts/keystore"
)

var (
	GetDashboard     = "GET /lendboard/dashboard"
	GetStatus        = "GET /lendboard/status"
	GetAccounts      = "GET /lendboard/wallet/accounts"
	ConnectWallet    = "POST /lendboard/wallet/connect"
	DisconnectWallet = "POST /lendboard/wallet/disconnect"

	Supply      = "POST /lendboard/supply"
	Borrow      = "POST /lendboard/borrow"
	Repay       = "POST /lendboard/repay"
	Withdraw    = "POST /lendboard/withdraw"
	QuickSupply = "POST /lendboard/markets/{market}/quick-supply"
	QuickBorrow = "POST /lendboard/markets/{market}/quick-borrow"
)

func (h *LendHandler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.respond(w, Response{
		Message: "Dashboard",
		Data:    h.board.Overview(r.Context()),
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	h.respond(w, Response{
		Message: "Status",
		Data:    h.board.Status(),
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleGetAccounts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	accounts := h.wallets.Accounts()
	addresses := make([]string, 0, len(accounts))
	for _, account := range accounts {
		addresses = append(addresses, account.Hex())
	}

	h.respond(w, Response{
		Message: "Wallet accounts",
		Data: map[string][]string{
			"accounts": addresses,
		},
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleConnectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if _, ok := h.userID(w, r, ConnectWallet); !ok {
		return
	}

	var payload payload.ConnectRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	address, err := h.wallets.Connect(payload.Account, payload.Passphrase)
	if err != nil {
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, wallet.ErrAccountNotFound):
			httpCode = http.StatusNotFound
		case errors.Is(err, keystore.ErrDecrypt), errors.Is(err, wallet.ErrInvalidKey):
			httpCode = http.StatusUnauthorized
		case errors.Is(err, wallet.ErrNoWalletSource):
			httpCode = http.StatusPreconditionFailed
		}

		h.respond(w, Response{
			Message: "Could not connect wallet",
			Error:   err.Error(),
		}, httpCode, requestId)
		h.logs.Errorw("failed to connect wallet",
			"error", err,
			"handler", ConnectWallet,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Wallet connected",
		Data: map[string]string{
			"address": address.Hex(),
		},
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleDisconnectWallet(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if _, ok := h.userID(w, r, DisconnectWallet); !ok {
		return
	}

	h.wallets.Disconnect()
	h.respond(w, Response{
		Message: "Wallet disconnected",
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleSupply(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, core.OperationSupply, Supply)
}

func (h *LendHandler) HandleBorrow(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, core.OperationBorrow, Borrow)
}

// HandleRepay accepts "max" as amount.
func (h *LendHandler) HandleRepay(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, core.OperationRepay, Repay)
}

func (h *LendHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	h.handleOperation(w, r, core.OperationWithdraw, Withdraw)
}

func (h *LendHandler) HandleQuickSupply(w http.ResponseWriter, r *http.Request) {
	h.handleQuickAction(w, r, core.OperationSupply, QuickSupply)
}

func (h *LendHandler) HandleQuickBorrow(w http.ResponseWriter, r *http.Request) {
	h.handleQuickAction(w, r, core.OperationBorrow, QuickBorrow)
}

func (h *LendHandler) handleOperation(w http.ResponseWriter, r *http.Request, kind core.OperationKind, route string) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var payload payload.OperationRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: fmt.Sprintf("%s failed", kind.Label()),
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("operation requested",
		"operation", kind,
		"market", payload.Market,
		"currency", payload.Currency,
		"amount", payload.Amount,
		"handler", route,
		"request_id", requestId)

	tx, err := h.board.Execute(r.Context(), userID, kind, payload.Market, payload.Currency, payload.Amount)
	h.respondOperation(w, kind, tx, err, route, requestId)
}

func (h *LendHandler) handleQuickAction(w http.ResponseWriter, r *http.Request, kind core.OperationKind, route string) {
	requestId := middleware.RequestIDFrom(r.Context())

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var payload payload.QuickRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &payload); err != nil {
		h.respond(w, Response{
			Message: fmt.Sprintf("%s failed", kind.Label()),
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	tx, err := h.board.QuickAction(r.Context(), userID, kind, r.PathValue("market"), payload.Amount)
	h.respondOperation(w, kind, tx, err, route, requestId)
}

func (h *LendHandler) respondOperation(w http.ResponseWriter, kind core.OperationKind, tx *dashboard.LastTransaction, err error, route, requestId string) {
	if err != nil {
		h.respond(w, Response{
			Message: fmt.Sprintf("%s failed", kind.Label()),
			Error:   err.Error(),
		}, operationStatus(err), requestId)
		h.logs.Errorw("operation failed",
			"operation", kind,
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("operation submitted",
		"operation", kind,
		"hash", tx.Hash,
		"handler", route,
		"request_id", requestId)

	h.respond(w, Response{
		Message: fmt.Sprintf("%s submitted", kind.Label()),
		Data:    tx,
	}, http.StatusOK, requestId)
}

func operationStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrMarketNotFound):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrOperationInProgress):
		return http.StatusConflict
	case errors.Is(err, dashboard.ErrWalletNotConnected):
		return http.StatusPreconditionFailed
	case errors.Is(err, core.ErrInsufficientBalance), errors.Is(err, dashboard.ErrNoReserve):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrSubmission), errors.Is(err, aave.ErrUnknownPlan),
		errors.Is(err, aave.ErrGraphQL), errors.Is(err, aave.ErrUnexpectedStatus):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
