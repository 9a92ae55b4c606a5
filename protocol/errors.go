package protocol

import "fmt"

// ErrorCode classifies every failure a ledger operation can produce. Codes
// are stable; the host environment decides user-visible presentation.
type ErrorCode int

const (
	//CodeCoinNotFound is returned when the coin does not exist
	CodeCoinNotFound ErrorCode = iota + 1
	//CodeInsufficientBalance is returned when an account's balance is too low
	CodeInsufficientBalance
	//CodeOverflow is returned when arithmetic would exceed 128 bits
	CodeOverflow
	//CodeSymbolAlreadyExists is returned when the symbol is already in use
	CodeSymbolAlreadyExists
	//CodeSymbolTooLong is returned when the symbol exceeds the configured length
	CodeSymbolTooLong
	//CodeNameTooLong is returned when the name exceeds the configured length
	CodeNameTooLong
	//CodeTooManyCoins is returned when the maximum number of coins is reached
	CodeTooManyCoins
	//CodeNotAuthorized is returned when the caller is not the coin's owner
	CodeNotAuthorized
	//CodeTransferToSelf is returned when sender and recipient are the same
	CodeTransferToSelf
	//CodeExceedsMaxSupply is returned when a supply would exceed the configured ceiling
	CodeExceedsMaxSupply
	//CodeZeroAmount is returned when the amount is zero
	CodeZeroAmount
	//CodeNoMintPermission is returned when the caller may not mint
	CodeNoMintPermission
	//CodeBelowMinimumBalance is returned when a balance would fall below the coin's minimum
	CodeBelowMinimumBalance
	//CodeCannotPayFees is returned when a coin is not eligible to pay transaction fees
	CodeCannotPayFees
)

func (c ErrorCode) String() string {
	switch c {
	case CodeCoinNotFound:
		return "coin not found"
	case CodeInsufficientBalance:
		return "insufficient balance"
	case CodeOverflow:
		return "overflow"
	case CodeSymbolAlreadyExists:
		return "symbol already exists"
	case CodeSymbolTooLong:
		return "symbol too long"
	case CodeNameTooLong:
		return "name too long"
	case CodeTooManyCoins:
		return "too many coins"
	case CodeNotAuthorized:
		return "not authorized"
	case CodeTransferToSelf:
		return "transfer to self"
	case CodeExceedsMaxSupply:
		return "exceeds max supply"
	case CodeZeroAmount:
		return "zero amount"
	case CodeNoMintPermission:
		return "no mint permission"
	case CodeBelowMinimumBalance:
		return "below minimum balance"
	case CodeCannotPayFees:
		return "cannot pay fees"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

// Error implements error so codes can be matched with errors.Is.
func (c ErrorCode) Error() string { return c.String() }

// Error is a ledger error with a code and a formatted message.
type Error struct {
	Code    ErrorCode
	Message string
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Code }

// With constructs an error with a message built from v.
func (c ErrorCode) With(v ...interface{}) *Error {
	return &Error{Code: c, Message: fmt.Sprint(v...)}
}

// WithFormat constructs an error with a formatted message.
func (c ErrorCode) WithFormat(format string, args ...interface{}) *Error {
	return &Error{Code: c, Message: fmt.Sprintf(format, args...)}
}
