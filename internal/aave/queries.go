package aave

const tokenFields = `address symbol name decimals`

const decimalFields = `raw decimals value`

const tokenAmountFields = `amount { ` + decimalFields + ` } usd`

const reserveFields = `
	underlyingToken { ` + tokenFields + ` }
	size { ` + tokenAmountFields + ` }
	supplyInfo { apy { value formatted } total { ` + decimalFields + ` } }
	borrowInfo {
		apy { value formatted }
		total { ` + tokenAmountFields + ` }
		availableLiquidity { ` + tokenAmountFields + ` }
	}`

const userStateFields = `
	netWorth
	healthFactor
	eModeEnabled
	isInIsolationMode
	totalCollateralBase
	totalDebtBase
	availableBorrowsBase`

const marketsQuery = `query Markets($request: MarketsRequest!) {
	value: markets(request: $request) {
		name
		address
		chain { chainId name }
		totalMarketSize
		totalAvailableLiquidity
		supplyReserves {` + reserveFields + ` }
		borrowReserves {` + reserveFields + ` }
		userState {` + userStateFields + ` }
	}
}`

const marketRefFields = `market { name address chain { chainId name } }`

const userSuppliesQuery = `query UserSupplies($request: UserSuppliesRequest!) {
	value: userSupplies(request: $request) {
		` + marketRefFields + `
		currency { ` + tokenFields + ` }
		balance { ` + tokenAmountFields + ` }
		apy { value formatted }
		isCollateral
	}
}`

const userBorrowsQuery = `query UserBorrows($request: UserBorrowsRequest!) {
	value: userBorrows(request: $request) {
		` + marketRefFields + `
		currency { ` + tokenFields + ` }
		debt { ` + tokenAmountFields + ` }
		apy { value formatted }
	}
}`

const userMarketStateQuery = `query UserMarketState($request: UserMarketStateRequest!) {
	value: userMarketState(request: $request) {` + userStateFields + `
	}
}`

const transactionRequestFragment = `fragment TransactionRequest on TransactionRequest {
	__typename
	to
	from
	data
	value
	chainId
	operation
}`

const executionPlanFragment = `fragment ExecutionPlan on ExecutionPlan {
	__typename
	... on TransactionRequest { ...TransactionRequest }
	... on ApprovalRequired {
		approval { ...TransactionRequest }
		reason
		requiredAmount { ` + decimalFields + ` }
		currentAllowance { ` + decimalFields + ` }
		originalTransaction { ...TransactionRequest }
	}
	... on InsufficientBalanceError {
		required { ` + decimalFields + ` }
		available { ` + decimalFields + ` }
	}
}`

func planQuery(name, field, requestType string) string {
	return `query ` + name + `($request: ` + requestType + `!) {
	value: ` + field + `(request: $request) { ...ExecutionPlan }
}
` + executionPlanFragment + `
` + transactionRequestFragment
}

var (
	supplyQuery   = planQuery("Supply", "supply", "SupplyRequest")
	borrowQuery   = planQuery("Borrow", "borrow", "BorrowRequest")
	repayQuery    = planQuery("Repay", "repay", "RepayRequest")
	withdrawQuery = planQuery("Withdraw", "withdraw", "WithdrawRequest")
)
