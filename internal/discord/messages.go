package discord

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "⚠️ **Not Enough PNC!**\nYour balance doesn't cover this."
	MsgAccountNotFound   = "👤 **No Account**\nUse /register first."
	MsgAccountExists     = "👤 **Already Registered**\nYou're good to go."
	MsgInvalidBetAmount  = "🎲 **Bad Bet Amount**\nPick one of the listed amounts."
	MsgSelfTransfer      = "🔁 **Nice Try**\nYou can't send PNC to yourself."
	MsgPayoutsDisabled   = "🛑 **Payouts Paused**\nCash-outs are temporarily disabled."
	MsgBelowMinPayout    = "💴 **Too Small**\nPayouts start at 100 JPY."
	MsgPaylinkFailed     = "💳 **Payment Provider Error**\nYour balance was not touched. Try again later."
	MsgTryAgain          = "⏳ **Busy**\nPlease try that again."
)

// Embed colors
const (
	ColorWin      = 0x2ecc71
	ColorLoss     = 0xe74c3c
	ColorGreenWin = 0xf1c40f
	ColorNeutral  = 0x3498db
)

// FooterText is the standard embed footer.
const FooterText = "PNC Casino"
