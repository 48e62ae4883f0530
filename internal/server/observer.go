package server

import "github.com/rbright/windowcaster/internal/fsm"

// Observer receives listener lifecycle events. Calls are made from listener
// goroutines and must not block.
type Observer interface {
	ClientConnected(remote string)
	ClientEvicted(remote string)
	ClientDisconnected(remote string)
	StateChanged(state fsm.State)
}

// Observers fans each event out to every member.
type Observers []Observer

func (o Observers) ClientConnected(remote string) {
	for _, obs := range o {
		obs.ClientConnected(remote)
	}
}

func (o Observers) ClientEvicted(remote string) {
	for _, obs := range o {
		obs.ClientEvicted(remote)
	}
}

func (o Observers) ClientDisconnected(remote string) {
	for _, obs := range o {
		obs.ClientDisconnected(remote)
	}
}

func (o Observers) StateChanged(state fsm.State) {
	for _, obs := range o {
		obs.StateChanged(state)
	}
}
