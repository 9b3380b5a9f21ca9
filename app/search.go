package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"contact-manager/appinterface"
)

var ErrUnknownStrategy = errors.New("app: unknown search strategy")

const (
	ExactNameStrategy    = "exact"
	NameContainsStrategy = "contains"
)

// ExactName matches contacts whose lower-cased name equals the lower-cased query.
type ExactName struct{}

func (ExactName) Search(contacts []appinterface.Contact, query string) []appinterface.Contact {
	q := strings.ToLower(query)
	return filter(contacts, func(c appinterface.Contact) bool {
		return strings.ToLower(c.Name) == q
	})
}

// NameContains matches contacts whose name contains the query, ignoring case.
type NameContains struct{}

func (NameContains) Search(contacts []appinterface.Contact, query string) []appinterface.Contact {
	q := strings.ToLower(query)
	return filter(contacts, func(c appinterface.Contact) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	})
}

func filter(contacts []appinterface.Contact, keep func(appinterface.Contact) bool) []appinterface.Contact {
	result := []appinterface.Contact{}
	for _, c := range contacts {
		if keep(c) {
			result = append(result, c)
		}
	}
	return result
}

var strategies = map[string]appinterface.SearchStrategy{
	ExactNameStrategy:    ExactName{},
	NameContainsStrategy: NameContains{},
}

func StrategyByName(name string) (appinterface.SearchStrategy, error) {
	s, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
	}
	return s, nil
}

func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
