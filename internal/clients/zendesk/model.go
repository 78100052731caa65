package zendesk

type TicketOpts struct {
	Email          string
	Name           string
	Type           string
	Subject        string
	Tags           []string
	Message        string
	IdempotencyKey string
}

type ticketRequest struct {
	Ticket struct {
		Subject string `json:"subject"`
		Comment struct {
			Body string `json:"body"`
		} `json:"comment"`
		GroupID   int64    `json:"group_id,omitempty"`
		Type      string   `json:"type,omitempty"`
		Tags      []string `json:"tags,omitempty"`
		Requester struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"requester"`
	} `json:"ticket"`
}
