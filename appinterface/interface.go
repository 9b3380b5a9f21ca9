package appinterface

import "fmt"

type Contact struct {
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
	Email string `toml:"email"`
}

func NewContact(name string, phone string, email string) Contact {
	return Contact{
		Name:  name,
		Phone: phone,
		Email: email,
	}
}

func (c Contact) String() string {
	return fmt.Sprintf("Nome: %s, Telefone: %s, Email: %s", c.Name, c.Phone, c.Email)
}

// SearchStrategy returns every contact matching query, in input order.
// No match yields an empty result, never an error.
type SearchStrategy interface {
	Search(contacts []Contact, query string) []Contact
}

type Manager interface {
	AddContact(contact Contact)
	RemoveContact(name string)
	ListContacts() []string
	SearchContacts(name string) ([]Contact, error)
	SetSearchStrategy(strategy SearchStrategy)
}
