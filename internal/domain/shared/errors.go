package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrForbidden         = NewDomainError("FORBIDDEN", "Not authorized to perform this action")
	ErrValidation        = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrDuplicateEmail    = NewDomainError("DUPLICATE_EMAIL", "Email already registered")
	ErrDuplicateInvite   = NewDomainError("DUPLICATE_INVITE", "Email already invited or registered")
	ErrInvalidCredential = NewDomainError("INVALID_CREDENTIAL", "Invalid email or password")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code == code
	}
	return false
}
