package transport

import "net/http"

// Response is one completed HTTP exchange with a gateway host. The body is
// fully drained before the next request reuses the connection, so Body is an
// owned byte slice rather than a live stream.
type Response struct {
	Code   int
	Header http.Header
	Body   []byte
}

// Location returns the Location header, used by scanner creation.
func (r *Response) Location() string {
	return r.Header.Get("Location")
}
