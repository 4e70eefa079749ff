package jsonerrors

// Kind is a stable, machine-readable failure classification.
// It is never part of the wire format.
type Kind string

const (
	// Storage
	KindNotFound            Kind = "NOT_FOUND"
	KindUniqueViolation     Kind = "UNIQUE_VIOLATION"
	KindForeignKeyViolation Kind = "FOREIGN_KEY_VIOLATION"
	KindStorage             Kind = "STORAGE_ERROR"

	// Outbound HTTP
	KindRemoteTransport Kind = "REMOTE_TRANSPORT"
	KindRemoteResponse  Kind = "REMOTE_RESPONSE"
	KindSerialization   Kind = "SERIALIZATION"

	// Payment provider
	KindProviderRejected Kind = "PROVIDER_REJECTED"
	KindProvider         Kind = "PROVIDER_ERROR"

	// Generic
	KindInternal            Kind = "INTERNAL"
	KindUnprocessableEntity Kind = "UNPROCESSABLE_ENTITY"
	KindTimeout             Kind = "TIMEOUT"
	KindCanceled            Kind = "CANCELED"
)

func defaultDescription(kind Kind) string {
	switch kind {
	case KindNotFound:
		return "Not found"
	case KindUniqueViolation:
		return "already exists"
	case KindForeignKeyViolation:
		return "violates foreign key"
	case KindSerialization:
		return "Serialization error"
	case KindUnprocessableEntity:
		return "Unprocessable entity"
	case KindTimeout:
		return "Request timed out"
	case KindCanceled:
		return "Request canceled"
	default:
		return "Internal error"
	}
}

// kindForStatus picks a kind for values built from a bare status code.
func kindForStatus(status int) Kind {
	switch {
	case status == 404:
		return KindNotFound
	case status == 422:
		return KindUnprocessableEntity
	case status == 499:
		return KindCanceled
	case status == 504:
		return KindTimeout
	default:
		return KindInternal
	}
}
