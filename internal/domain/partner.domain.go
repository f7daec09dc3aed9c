package domain

import "time"

type Partner struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Image           *string   `json:"image,omitempty"`
	StripeConnectID *string   `json:"stripe_connect_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Link is a trackable referral URL belonging to a partner's enrollment in a
// program.
type Link struct {
	ID        string    `json:"id"`
	ProgramID string    `json:"program_id"`
	PartnerID string    `json:"partner_id"`
	Domain    string    `json:"domain"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ShortLink returns the routable short form, e.g. "refer.acme.com/alice".
func (l *Link) ShortLink() string {
	return l.Domain + "/" + l.Key
}

type Customer struct {
	ID        string    `json:"id"`
	LinkID    string    `json:"link_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Payout struct {
	ID        string    `json:"id"`
	PartnerID string    `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Commission struct {
	ID        string    `json:"id"`
	PartnerID string    `json:"partner_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
