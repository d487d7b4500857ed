package status

type (
	Code   uint16
	Status string
)

// The closed set of status codes a handler can produce. Anything outside
// of it is never written to the wire.
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	Created             Code = 201 // RFC 9110, 15.3.2
	BadRequest          Code = 400 // RFC 9110, 15.5.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// Text returns the reason phrase for the status code.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}
