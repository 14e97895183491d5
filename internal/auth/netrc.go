package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NetrcStore persists credentials as machine entries in a netrc file.
// The file is shared with other tools, so entries for unrelated hosts
// are preserved on every write.
type NetrcStore struct {
	Path string
}

// NewNetrcStore resolves the netrc path: $NETRC if set, else ~/.netrc.
func NewNetrcStore() *NetrcStore {
	if path := os.Getenv("NETRC"); path != "" {
		return &NetrcStore{Path: path}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return &NetrcStore{Path: ".netrc"}
	}
	return &NetrcStore{Path: filepath.Join(home, ".netrc")}
}

// machine is one parsed netrc entry.
type machine struct {
	name     string
	login    string
	password string
	account  string
}

// parse tokenizes the netrc grammar: bare "machine <name>" headers
// followed by token pairs. Unreadable or malformed files yield nil.
func (s *NetrcStore) parse() []machine {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil
	}

	var machines []machine
	var cur *machine
	tokens := strings.Fields(string(data))
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "machine":
			if i+1 >= len(tokens) {
				break
			}
			i++
			machines = append(machines, machine{name: tokens[i]})
			cur = &machines[len(machines)-1]
		case "default":
			machines = append(machines, machine{name: "default"})
			cur = &machines[len(machines)-1]
		case "login":
			if cur == nil || i+1 >= len(tokens) {
				break
			}
			i++
			cur.login = tokens[i]
		case "password":
			if cur == nil || i+1 >= len(tokens) {
				break
			}
			i++
			cur.password = tokens[i]
		case "account":
			if cur == nil || i+1 >= len(tokens) {
				break
			}
			i++
			cur.account = tokens[i]
		}
	}
	return machines
}

func (s *NetrcStore) write(machines []machine) error {
	var b strings.Builder
	for _, m := range machines {
		if m.name == "default" {
			b.WriteString("default\n")
		} else {
			fmt.Fprintf(&b, "machine %s\n", m.name)
		}
		if m.login != "" {
			fmt.Fprintf(&b, "  login %s\n", m.login)
		}
		if m.account != "" {
			fmt.Fprintf(&b, "  account %s\n", m.account)
		}
		if m.password != "" {
			fmt.Fprintf(&b, "  password %s\n", m.password)
		}
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating netrc dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("writing netrc: %w", err)
	}
	return nil
}

// Get implements Store.
func (s *NetrcStore) Get(host string) (*Credential, bool) {
	for _, m := range s.parse() {
		if m.name == host && m.password != "" {
			return &Credential{Host: host, Login: m.login, Key: m.password}, true
		}
	}
	return nil, false
}

// Put implements Store. The entry for cred.Host is overwritten in
// place; entries for other hosts keep their position.
func (s *NetrcStore) Put(cred Credential) error {
	login := cred.Login
	if login == "" {
		login = DefaultLogin
	}

	machines := s.parse()
	replaced := false
	for i := range machines {
		if machines[i].name == cred.Host {
			machines[i].login = login
			machines[i].password = cred.Key
			replaced = true
			break
		}
	}
	if !replaced {
		machines = append(machines, machine{name: cred.Host, login: login, password: cred.Key})
	}
	return s.write(machines)
}

// Delete implements Store. Deleting an absent entry is not an error.
func (s *NetrcStore) Delete(host string) error {
	machines := s.parse()
	kept := machines[:0]
	for _, m := range machines {
		if m.name != host {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(machines) {
		return nil
	}
	return s.write(kept)
}
