package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Navigator records where a wizard asked to go and tells the user.
type Navigator struct {
	mu       sync.Mutex
	out      io.Writer
	trip     uuid.UUID
	wentBack bool
}

// NewNavigator writes navigation messages to out.
func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

// ToTrip opens the screen of trip id.
func (n *Navigator) ToTrip(id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.trip = id
	fmt.Fprintf(n.out, "Opening trip %s\n", id)
}

// Back leaves the current screen.
func (n *Navigator) Back() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.wentBack = true
	fmt.Fprintln(n.out, "Trip not found, going back")
}

// Trip returns the last trip navigated to.
func (n *Navigator) Trip() (uuid.UUID, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.trip, n.trip != uuid.Nil
}

// WentBack reports whether Back was called.
func (n *Navigator) WentBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.wentBack
}
