package aave

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Markets lists the markets of a chain. When user is set the markets carry
// the user's aggregate state.
func (c *Client) Markets(ctx context.Context, chainID int64, user *common.Address) ([]Market, error) {
	request := map[string]any{
		"chainIds": []int64{chainID},
	}
	if user != nil {
		request["user"] = user.Hex()
	}

	var markets []Market
	if err := c.query(ctx, marketsQuery, map[string]any{"request": request}, &markets); err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}
	return markets, nil
}

func (c *Client) UserSupplies(ctx context.Context, markets []MarketInput, user common.Address) ([]UserSupplyPosition, error) {
	if len(markets) == 0 {
		return []UserSupplyPosition{}, nil
	}

	var supplies []UserSupplyPosition
	if err := c.query(ctx, userSuppliesQuery, userPositionsVariables(markets, user), &supplies); err != nil {
		return nil, fmt.Errorf("query user supplies: %w", err)
	}
	return supplies, nil
}

func (c *Client) UserBorrows(ctx context.Context, markets []MarketInput, user common.Address) ([]UserBorrowPosition, error) {
	if len(markets) == 0 {
		return []UserBorrowPosition{}, nil
	}

	var borrows []UserBorrowPosition
	if err := c.query(ctx, userBorrowsQuery, userPositionsVariables(markets, user), &borrows); err != nil {
		return nil, fmt.Errorf("query user borrows: %w", err)
	}
	return borrows, nil
}

// UserMarketState returns nil without error when the API has no state for
// the user in that market.
func (c *Client) UserMarketState(ctx context.Context, market, user common.Address, chainID int64) (*MarketUserState, error) {
	variables := map[string]any{
		"request": map[string]any{
			"market":  market.Hex(),
			"user":    user.Hex(),
			"chainId": chainID,
		},
	}

	var state *MarketUserState
	if err := c.query(ctx, userMarketStateQuery, variables, &state); err != nil {
		return nil, fmt.Errorf("query user market state: %w", err)
	}
	return state, nil
}

func userPositionsVariables(markets []MarketInput, user common.Address) map[string]any {
	inputs := make([]map[string]any, 0, len(markets))
	for _, m := range markets {
		inputs = append(inputs, map[string]any{
			"address": m.Address.Hex(),
			"chainId": m.ChainID,
		})
	}
	return map[string]any{
		"request": map[string]any{
			"markets": inputs,
			"user":    user.Hex(),
		},
	}
}
