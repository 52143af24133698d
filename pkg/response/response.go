package response

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UUIDResponse struct {
	UUID string `json:"uuid"`
}
