package glow

// ChangeListener is notified when a Changeable it is registered with changes.
type ChangeListener interface {
	// Notify is called after sender changed.
	//
	// Parameters:
	//   - sender: the changed value
	Notify(sender Changeable)
}

// Changeable is a value that notifies registered listeners about changes.
type Changeable interface {
	// RegisterListener adds a listener. Registering the same listener twice has no effect.
	//
	// Parameters:
	//   - l: the listener
	RegisterListener(l ChangeListener)

	// DeregisterListener removes a listener.
	//
	// Parameters:
	//   - l: the listener
	DeregisterListener(l ChangeListener)

	// Changed notifies every registered listener.
	Changed()
}

// changeNotifier implements Changeable for the value stored in owner.
type changeNotifier struct {
	owner     Changeable
	listeners []ChangeListener
}

func (n *changeNotifier) RegisterListener(l ChangeListener) {
	for _, v := range n.listeners {
		if v == l {
			return
		}
	}
	n.listeners = append(n.listeners, l)
}

func (n *changeNotifier) DeregisterListener(l ChangeListener) {
	for i, v := range n.listeners {
		if v == l {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

func (n *changeNotifier) Changed() {
	// Listeners may deregister themselves while being notified.
	listeners := append([]ChangeListener(nil), n.listeners...)
	for _, l := range listeners {
		l.Notify(n.owner)
	}
}
