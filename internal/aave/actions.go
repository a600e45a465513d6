package aave

import (
	"context"
	"fmt"
)

// Supply asks the protocol for the plan that supplies req.Amount.
func (c *Client) Supply(ctx context.Context, req OperationRequest) (Plan, error) {
	return c.plan(ctx, "supply", supplyQuery, req.variables(amountPlain))
}

func (c *Client) Borrow(ctx context.Context, req OperationRequest) (Plan, error) {
	return c.plan(ctx, "borrow", borrowQuery, req.variables(amountPlain))
}

// Repay accepts the Max amount descriptor to repay the whole debt.
func (c *Client) Repay(ctx context.Context, req OperationRequest) (Plan, error) {
	return c.plan(ctx, "repay", repayQuery, req.variables(amountVariant))
}

func (c *Client) Withdraw(ctx context.Context, req OperationRequest) (Plan, error) {
	if req.Amount.IsMax() {
		return nil, fmt.Errorf("withdraw plan: max amount not supported")
	}
	return c.plan(ctx, "withdraw", withdrawQuery, req.variables(amountVariant))
}

func (c *Client) plan(ctx context.Context, operation, query string, variables map[string]any) (Plan, error) {
	raw, err := c.execute(ctx, query, variables)
	if err != nil {
		return nil, fmt.Errorf("%s plan: %w", operation, err)
	}

	plan, err := decodePlan(raw)
	if err != nil {
		return nil, fmt.Errorf("%s plan: %w", operation, err)
	}

	c.logs.Infow("transaction plan received",
		"operation", operation,
		"plan", fmt.Sprintf("%T", plan))

	return plan, nil
}
