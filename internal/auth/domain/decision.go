package domain

// Decision is the outcome of an authorization check. Deny is a normal,
// expected outcome and is never modeled as an error.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns an allowing decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with a short machine-friendly reason.
// Reasons are for logs and metrics labels, not for end users.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Operation selects the resource authorization behavior for a document.
type Operation string

// Document operations.
const (
	OperationCreate Operation = "create"
	OperationRead   Operation = "read"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Valid reports whether the operation is one of the known document operations.
func (o Operation) Valid() bool {
	switch o {
	case OperationCreate, OperationRead, OperationUpdate, OperationDelete:
		return true
	}
	return false
}
