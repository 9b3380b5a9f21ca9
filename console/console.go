package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"contact-manager/appinterface"
)

type menuOption int

const (
	invalidOption menuOption = iota
	addContact
	removeContact
	listContacts
	searchContact
	exit
)

const menu = `
Escolha uma opção:
1. Adicionar contato
2. Remover contato
3. Listar contatos
4. Buscar contato por nome
5. Sair
`

func parseOption(line string) menuOption {
	switch strings.TrimSpace(line) {
	case "1":
		return addContact
	case "2":
		return removeContact
	case "3":
		return listContacts
	case "4":
		return searchContact
	case "5":
		return exit
	}
	return invalidOption
}

// Console is the menu-driven prompt loop in front of a Manager.
type Console struct {
	in      *bufio.Reader
	err     error
	out     io.Writer
	manager appinterface.Manager
	logger  *slog.Logger
}

func New(in io.Reader, out io.Writer, manager appinterface.Manager, logger *slog.Logger) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		manager: manager,
		logger:  logger.With("component", "console"),
	}
}

// Run serves menu selections until the user exits or the input ends.
func (c *Console) Run() error {
	for {
		c.print(menu)
		line, ok := c.prompt("Opção: ")
		if !ok {
			return c.err
		}
		option := parseOption(line)
		c.logger.Debug("menu option selected", "input", line, "option", int(option))

		switch option {
		case addContact:
			ok = c.addContact()
		case removeContact:
			ok = c.removeContact()
		case listContacts:
			c.listContacts()
		case searchContact:
			ok = c.searchContact()
		case exit:
			c.println("Saindo do sistema.")
			return nil
		default:
			c.println("Opção inválida. Por favor, tente novamente.")
		}
		if !ok {
			return c.err
		}
	}
}

func (c *Console) addContact() bool {
	name, ok := c.prompt("Nome: ")
	if !ok {
		return false
	}
	phone, ok := c.prompt("Telefone: ")
	if !ok {
		return false
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return false
	}
	c.manager.AddContact(appinterface.NewContact(name, phone, email))
	c.println("Contato adicionado com sucesso!")
	return true
}

func (c *Console) removeContact() bool {
	name, ok := c.prompt("Nome do contato a ser removido: ")
	if !ok {
		return false
	}
	c.manager.RemoveContact(name)
	c.println("Contato removido com sucesso!")
	return true
}

func (c *Console) listContacts() {
	c.println("Lista de Contatos:")
	for _, line := range c.manager.ListContacts() {
		c.println(line)
	}
}

func (c *Console) searchContact() bool {
	name, ok := c.prompt("Nome do contato a buscar: ")
	if !ok {
		return false
	}
	found, err := c.manager.SearchContacts(name)
	switch {
	case err != nil:
		c.println("Estratégia de busca não definida.")
	case len(found) == 0:
		c.println("Contato não encontrado.")
	default:
		c.println("Contatos encontrados:")
		for _, contact := range found {
			c.println(contact.String())
		}
	}
	return true
}

// prompt writes label and reads the next line, of any length. An unterminated
// final line still counts. It reports false once the input is exhausted or
// fails; a failure other than io.EOF is kept in c.err.
func (c *Console) prompt(label string) (string, bool) {
	c.print(label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			c.err = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (c *Console) print(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		c.logger.Error("could not write output", "err", err)
	}
}

func (c *Console) println(s string) {
	c.print(fmt.Sprintln(s))
}
