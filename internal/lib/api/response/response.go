package response

type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// FieldErrors wraps a field-to-message validation map so it renders next to the
// offending inputs.
func FieldErrors(fields map[string]string) Response {
	return Response{
		Status: StatusError,
		Error:  "invalid form data",
		Fields: fields,
	}
}
