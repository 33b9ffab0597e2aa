package errs

type Category string

const (
	CategorySetup    Category = "setup"
	CategoryProtocol Category = "protocol"
	CategoryBuying   Category = "buying"
	CategoryLedger   Category = "ledger"
)

// ProgramError is a stable rejection code returned by an execution unit.
type ProgramError struct {
	Category Category
	Code     string
	Message  string
}

func (e *ProgramError) Error() string {
	return e.Message
}

var registry []*ProgramError

func define(category Category, code, msg string) *ProgramError {
	e := &ProgramError{Category: category, Code: code, Message: msg}
	registry = append(registry, e)
	return e
}

// Setup errors
var (
	ErrUnauthorized = define(CategorySetup, "Unauthorized", "you are not authorized to perform this action")
)

// Protocol errors
var (
	ErrProtocolLocked         = define(CategoryProtocol, "ProtocolLocked", "protocol is locked")
	ErrUnauthorizedAdmin      = define(CategoryProtocol, "UnauthorizedAdmin", "caller is not an authorized admin")
	ErrInstructionsNotCorrect = define(CategoryProtocol, "InstructionsNotCorrect", "delegated authorization is missing or malformed")
	ErrRecipientMismatch      = define(CategoryProtocol, "RecipientMismatch", "signed recipient does not match buyer")
	ErrBalanceMismatch        = define(CategoryProtocol, "BalanceMismatch", "post-mint balance is not exactly one")
	ErrAlreadyInitialized     = define(CategoryProtocol, "AlreadyInitialized", "protocol is already initialized")
	ErrAlreadyExists          = define(CategoryProtocol, "AlreadyExists", "record already exists")
	ErrNotFound               = define(CategoryProtocol, "NotFound", "record not found")
	ErrInvalidArgument        = define(CategoryProtocol, "InvalidArgument", "invalid argument")
	ErrGrantExpired           = define(CategoryProtocol, "GrantExpired", "signed grant has expired")
	ErrGrantReplayed          = define(CategoryProtocol, "GrantReplayed", "signed grant nonce was already used")
	ErrAlreadySettled         = define(CategoryProtocol, "AlreadySettled", "reservation is already settled")
	ErrNotSettled             = define(CategoryProtocol, "NotSettled", "reservation is not settled to this buyer")
	ErrReservationCompleted   = define(CategoryProtocol, "ReservationCompleted", "reservation is already completed")
	ErrAssetCompleted         = define(CategoryProtocol, "AssetCompleted", "asset is already completed")
)

// Buying errors
var (
	ErrNotTimeYet     = define(CategoryBuying, "NotTimeYet", "collection is not live yet")
	ErrExpired        = define(CategoryBuying, "Expired", "collection sale has ended")
	ErrSoldOut        = define(CategoryBuying, "SoldOut", "total supply is already at max")
	ErrNotOnAllowList = define(CategoryBuying, "NotOnAllowList", "buyer is not on the allow-list")
)

// Ledger errors
var (
	ErrInsufficientFunds  = define(CategoryLedger, "InsufficientFunds", "insufficient lamports")
	ErrInsufficientTokens = define(CategoryLedger, "InsufficientTokens", "insufficient token balance")
	ErrAuthorityRevoked   = define(CategoryLedger, "AuthorityRevoked", "authority has been revoked")
	ErrAuthorityMismatch  = define(CategoryLedger, "AuthorityMismatch", "signer does not hold the required authority")
	ErrAccountExists      = define(CategoryLedger, "AccountExists", "ledger account already exists")
	ErrAccountMissing     = define(CategoryLedger, "AccountMissing", "ledger account does not exist")
)

// Codes lists every defined program error.
func Codes() []*ProgramError {
	out := make([]*ProgramError, len(registry))
	copy(out, registry)
	return out
}
