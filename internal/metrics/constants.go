package metrics

// Metric names
const (
	MetricNameBetsTotal         = "bets_total"
	MetricNameBetAmountTotal    = "bet_amount_total"
	MetricNamePayoutAmountTotal = "bet_payout_amount_total"

	MetricNameSettlementRetries = "settlement_retries_total"
	MetricNameSettlementReplays = "settlement_replays_total"

	MetricNameScorerFallbacks  = "scorer_fallbacks_total"
	MetricNameReserveFallbacks = "reserve_fallbacks_total"

	MetricNameTransfersTotal = "transfers_total"
	MetricNamePayoutsTotal   = "payouts_total"
)

// Metric help text
const (
	HelpTextBetsTotal         = "Total number of bets resolved"
	HelpTextBetAmountTotal    = "Total PNC wagered"
	HelpTextPayoutAmountTotal = "Total PNC paid out on winning bets"

	HelpTextSettlementRetries = "Total number of settlement retries after update conflicts"
	HelpTextSettlementReplays = "Total number of idempotent settlement replays"

	HelpTextScorerFallbacks  = "Total number of scorer calls that fell back to the arithmetic baseline"
	HelpTextReserveFallbacks = "Total number of reserve fetches that used the fallback value"

	HelpTextTransfersTotal = "Total number of completed transfers"
	HelpTextPayoutsTotal   = "Total number of payout links created"
)

// Label names
const (
	LabelGame   = "game"
	LabelResult = "result"
)

// Label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"
)

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected type"
)
