package style

import (
	"sync"
)

// Client is notified when an alias switches styles.
type Client interface {
	StyleChanged(a *Alias)
}

// Alias is a shared, switchable reference to a style.
type Alias struct {
	Name    string
	mu      sync.Mutex
	current *VisualStyle
	clients []Client
}

// NewAlias creates an alias for an initial style.
func NewAlias(name string, initial *VisualStyle) *Alias {
	return &Alias{Name: name, current: initial}
}

func (a *Alias) String() string {
	return a.Name
}

// Style returns the current style.
func (a *Alias) Style() *VisualStyle {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// SetStyle switches the alias. All clients are notified synchronously in
// order of registration, if the style actually changed.
func (a *Alias) SetStyle(s *VisualStyle) {
	a.mu.Lock()
	if a.current == s {
		a.mu.Unlock()
		return
	}
	a.current = s
	clients := append([]Client(nil), a.clients...)
	a.mu.Unlock()
	tracer().Debugf("alias %s switched to %s, %d clients", a.Name, s, len(clients))
	for _, c := range clients {
		c.StyleChanged(a)
	}
}

// AddClient registers c. Registering twice has no effect.
func (a *Alias) AddClient(c Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, x := range a.clients {
		if x == c {
			return
		}
	}
	a.clients = append(a.clients, c)
}

// RemoveClient unregisters c.
func (a *Alias) RemoveClient(c Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, x := range a.clients {
		if x == c {
			a.clients = append(a.clients[:i], a.clients[i+1:]...)
			return
		}
	}
}

// ClientCount returns the number of registered clients.
func (a *Alias) ClientCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.clients)
}
