package contract

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kSaleConfig stores the singleton encoded Sale record.
	kSaleConfig byte = 0x01
	// kRegistrationRound stores the registration window plus its generation.
	kRegistrationRound byte = 0x02
	// kSaleRound stores the sale window plus its generation.
	kSaleRound byte = 0x03
	// kRegistrant houses per-user allocation caps, scoped by round generation.
	kRegistrant byte = 0x10
	// kParticipant houses encoded Participation records, scoped by generation.
	kParticipant byte = 0x20
)

// -----------------------------------------------------------------------------
// Collaborator Ledger Methods
// -----------------------------------------------------------------------------

const (
	methodDecimals     = "decimals"
	methodTransfer     = "transfer"
	methodTransferFrom = "transfer_from"
	methodStakeOf      = "stake_of"
)

// -----------------------------------------------------------------------------
// Limits
// -----------------------------------------------------------------------------

const (
	// maxAmountBits bounds every amount to the ledger's u128 domain.
	maxAmountBits = 128
	// codecVersion tags encoded records for forward-compatible decoding.
	codecVersion byte = 1
)
