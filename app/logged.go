package app

import (
	"fmt"
	"log/slog"

	"contact-manager/appinterface"
)

// LoggedManager forwards every call to an inner manager unchanged and
// logs the mutations on the way through.
type LoggedManager struct {
	inner  appinterface.Manager
	logger *slog.Logger
}

var _ appinterface.Manager = (*LoggedManager)(nil)

func NewLoggedManager(inner appinterface.Manager, logger *slog.Logger) *LoggedManager {
	return &LoggedManager{inner: inner, logger: logger.With("component", "manager")}
}

func (m *LoggedManager) AddContact(contact appinterface.Contact) {
	m.logger.Info("adding contact", "name", contact.Name)
	m.inner.AddContact(contact)
}

func (m *LoggedManager) RemoveContact(name string) {
	m.logger.Info("removing contact", "name", name)
	m.inner.RemoveContact(name)
}

func (m *LoggedManager) ListContacts() []string {
	result := m.inner.ListContacts()
	m.logger.Debug("listing contacts", "count", len(result))
	return result
}

func (m *LoggedManager) SearchContacts(name string) ([]appinterface.Contact, error) {
	result, err := m.inner.SearchContacts(name)
	if err != nil {
		m.logger.Error("search failed", "query", name, "err", err)
		return nil, err
	}
	m.logger.Debug("searched contacts", "query", name, "matches", len(result))
	return result, nil
}

func (m *LoggedManager) SetSearchStrategy(strategy appinterface.SearchStrategy) {
	m.logger.Debug("setting search strategy", "strategy", fmt.Sprintf("%T", strategy))
	m.inner.SetSearchStrategy(strategy)
}
