package entity

import "strings"

// Client is an existing client record fetched from the backend directory.
type Client struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Client) Initials() string {
	return AvatarInitials(c.FirstName, c.LastName)
}

// Matches reports a case-insensitive substring match across full name, email
// and phone.
func (c *Client) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.FullName()), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Phone), q)
}

// ClientRecord is the client identity a booking is submitted with, either
// copied from an existing record or entered fresh in the wizard.
type ClientRecord struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// RecordFromClient copies an existing client into a submission record.
func RecordFromClient(c *Client) ClientRecord {
	return ClientRecord{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// SplitClientName splits a free-form name on the first whitespace run.
// A name with no whitespace yields an empty last name; that is accepted.
func SplitClientName(name string) (firstName, lastName string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
