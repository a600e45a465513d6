package handler

import (
	"errors"
	"fmt"
	"lendboard/internal/core"
	"lendboard/internal/http/handler/middleware"
	"lendboard/internal/http/payload"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const authTokenHeader = "AUTH_TOKEN"

var (
	Authenticate       = "POST /lendboard/authenticate"
	GetHistory         = "GET /lendboard/history"
	GetTransactions    = "GET /lendboard/transactions"
	GetTransaction     = "GET /lendboard/transactions/{hash}"
	GetTransactionsRLP = "GET /lendboard/transactions/rlp/{rlpHash}"
)

type LendHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	lendboard        LendService
	board            Board
	wallets          WalletConnector
}

func NewLendHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, lendService LendService, board Board, wallets WalletConnector) *LendHandler {
	return &LendHandler{
		logs:             logger,
		requestValidator: requestValidator,
		lendboard:        lendService,
		board:            board,
		wallets:          wallets,
	}
}

// Register adds every route of the handler to mux.
func (h *LendHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetHistory, h.HandleGetHistory)
	mux.HandleFunc(GetTransactions, h.HandleGetTransactions)
	mux.HandleFunc(GetTransaction, h.HandleGetTransaction)
	mux.HandleFunc(GetTransactionsRLP, h.HandleGetTransactionsRLP)

	mux.HandleFunc(GetDashboard, h.HandleGetDashboard)
	mux.HandleFunc(GetStatus, h.HandleGetStatus)
	mux.HandleFunc(GetAccounts, h.HandleGetAccounts)
	mux.HandleFunc(ConnectWallet, h.HandleConnectWallet)
	mux.HandleFunc(DisconnectWallet, h.HandleDisconnectWallet)

	mux.HandleFunc(Supply, h.HandleSupply)
	mux.HandleFunc(Borrow, h.HandleBorrow)
	mux.HandleFunc(Repay, h.HandleRepay)
	mux.HandleFunc(Withdraw, h.HandleWithdraw)
	mux.HandleFunc(QuickSupply, h.HandleQuickSupply)
	mux.HandleFunc(QuickBorrow, h.HandleQuickBorrow)
}

func (h *LendHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.lendboard.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *LendHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetHistory, "request_id", requestId)
		return
	}

	records, err := h.lendboard.GetUserTransactionsHistory(r.Context(), authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to get user history",
			Error:   fmt.Errorf("get user history: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get user history", "error", err, "handler", GetHistory, "request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "User history",
		Data: map[string][]core.JournalRecord{
			"transactions": records,
		},
	}, http.StatusOK, requestId)
}

func (h *LendHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestId)
		return
	}

	h.lookupTransactions(w, r, values["transactionHashes"], GetTransactions)
}

func (h *LendHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	h.lookupTransactions(w, r, []string{r.PathValue("hash")}, GetTransaction)
}

func (h *LendHandler) HandleGetTransactionsRLP(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	rlphex := r.PathValue("rlpHash")
	if rlphex == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "rlp hash parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing rlpHash parameter",
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	transactionHashes, err := h.lendboard.ParseRLP(rlphex)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse RLP parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse RLP parameter",
			"error", err,
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	h.logs.Infow("rlp request parsed successfully",
		"transactions", transactionHashes,
		"handler", GetTransactionsRLP,
		"request_id", requestId)

	h.lookupTransactions(w, r, transactionHashes, GetTransactionsRLP)
}

func (h *LendHandler) lookupTransactions(w http.ResponseWriter, r *http.Request, hashes []string, route string) {
	requestId := middleware.RequestIDFrom(r.Context())

	txRequest := payload.TransactionsRequest{
		Transactions: hashes,
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate transaction hashes: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate transaction hashes",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	transactions, err := h.lendboard.GetTransactions(r.Context(), txRequest.Hashes())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("get transactions: %w", err).Error(),
		}, http.StatusBadGateway,
			requestId)
		h.logs.Errorw("failed to get transactions",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("transactions retrieved",
		"requested", len(txRequest.Transactions),
		"found", len(transactions),
		"handler", route,
		"request_id", requestId)

	h.respond(w, Response{
		Message: "Transactions",
		Data: map[string][]core.TransactionRecord{
			"transactions": transactions,
		},
	}, http.StatusOK, requestId)
}

// userID resolves the caller from the AUTH_TOKEN header and responds with
// 401 when it cannot.
func (h *LendHandler) userID(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	requestId := middleware.RequestIDFrom(r.Context())

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return "", false
	}

	userID, err := h.lendboard.UserID(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("invalid auth token", "error", err, "handler", route, "request_id", requestId)
		return "", false
	}

	return userID, true
}
