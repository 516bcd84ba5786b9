package httperr

// Response is the error body every endpoint returns: a flat message plus an
// optional detail payload. Status never serializes; it rides along so
// middleware can emit the body it was built with.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

func New(status int, message string) Response {
	return Response{Status: status, Error: message}
}
