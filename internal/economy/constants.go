package economy

const (
	// JPYToPNC converts payout yen to ledger currency.
	JPYToPNC = 10

	// MinPayoutJPY is the smallest cash-out the provider will carry.
	MinPayoutJPY = 100

	// Payout fee: a percentage of the cashed-out amount with a floor.
	PayoutFeePercent = 18
	MinPayoutFee     = 10

	// StartingBalance for newly registered accounts. Funds arrive via
	// transfers or grants, never at registration.
	StartingBalance = 0

	// RecentTransactionLimit bounds the history shown with a balance.
	RecentTransactionLimit = 5
)

// Log message constants
const (
	LogMsgAccountRegistered = "Account registered"
	LogMsgTransferComplete  = "Transfer complete"
	LogMsgPayoutCreated     = "Payout link created"
	LogMsgPublishFailed     = "Failed to publish economy event"
)
