package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidType   ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_003"
	TransactionInvalidID     ErrorCode = "TRANSACTION_004"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryNameMissing ErrorCode = "CATEGORY_002"
)

// Share error codes (SHARE_*)
const (
	ShareTokenMissing  ErrorCode = "SHARE_001"
	ShareTokenInvalid  ErrorCode = "SHARE_002"
	ShareReadOnlyView  ErrorCode = "SHARE_003"
	ShareNotInShared   ErrorCode = "SHARE_004"
)

// Import/export error codes (IMPORT_*)
const (
	ImportMalformed ErrorCode = "IMPORT_001"
	ImportBadRecord ErrorCode = "IMPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotPermitted       ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Amount must be greater than zero",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidType:   "Transaction type must be Deposit or Withdrawal",
	TransactionInvalidAmount: "Transaction amount must be greater than zero",
	TransactionInvalidID:     "Invalid transaction ID format",

	// Category errors
	CategoryNotFound:    "Category not found",
	CategoryNameMissing: "Category name is required",

	// Share errors
	ShareTokenMissing: "Share token is required",
	ShareTokenInvalid: "Share token could not be decoded",
	ShareReadOnlyView: "The shared view is read-only",
	ShareNotInShared:  "Not currently viewing shared data",

	// Import errors
	ImportMalformed: "Backup file is malformed",
	ImportBadRecord: "Backup file contains an invalid transaction record",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotPermitted:       "Operation not permitted in this environment",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
