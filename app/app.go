package app

import (
	"errors"
	"slices"

	"contact-manager/appinterface"
)

var ErrNoSearchStrategy = errors.New("app: no search strategy configured")

type app struct {
	contacts []appinterface.Contact
	strategy appinterface.SearchStrategy
}

func (a *app) AddContact(contact appinterface.Contact) {
	a.contacts = append(a.contacts, contact)
}

// RemoveContact deletes every contact whose name is exactly name.
func (a *app) RemoveContact(name string) {
	a.contacts = slices.DeleteFunc(a.contacts, func(c appinterface.Contact) bool {
		return c.Name == name
	})
}

func (a *app) ListContacts() []string {
	result := make([]string, 0, len(a.contacts))
	for _, c := range a.contacts {
		result = append(result, c.String())
	}
	return result
}

func (a *app) SetSearchStrategy(strategy appinterface.SearchStrategy) {
	a.strategy = strategy
}

func (a *app) SearchContacts(name string) ([]appinterface.Contact, error) {
	if a.strategy == nil {
		return nil, ErrNoSearchStrategy
	}
	// strategies only see a copy
	cpy := make([]appinterface.Contact, len(a.contacts))
	copy(cpy, a.contacts)
	return a.strategy.Search(cpy, name), nil
}

// NewApp returns an empty manager. A nil strategy is allowed; searching
// fails with ErrNoSearchStrategy until one is set.
func NewApp(strategy appinterface.SearchStrategy) appinterface.Manager {
	return &app{strategy: strategy}
}
