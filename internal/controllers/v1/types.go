package v1

// httpError is the response body for plain error responses.
type httpError struct {
	Error string `json:"error"`
}

// URIID is the URI binding for routes with a resource ID.
type URIID struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// URIUserID is the URI binding for routes keyed by user.
type URIUserID struct {
	UserID string `uri:"userId" binding:"required,uuid"`
}
