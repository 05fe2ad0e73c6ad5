// Package router keeps the stack of open screens. The bottom screen is the
// shell's current view and is never popped; detail screens such as the
// history go on top of it.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/elan/internal/screen"
)

// Navigation messages. Screens return them as commands; Update applies them.
type (
	PushScreenMsg    struct{ Screen screen.Screen }
	ReplaceScreenMsg struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	HomeMsg          struct{}
)

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s above the active screen.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if n := len(r.stack); n > 1 {
		leave(r.stack[n-1])
		r.stack = r.stack[:n-1]
	}
	return nil
}

// Replace closes the active screen and puts s in its place, root included.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	n := len(r.stack)
	if n == 0 {
		return r.Push(s)
	}
	leave(r.stack[n-1])
	r.stack[n-1] = s
	return s.Init()
}

// Home closes everything above the root.
func (r *Router) Home() tea.Cmd {
	for i := len(r.stack) - 1; i > 0; i-- {
		leave(r.stack[i])
	}
	if len(r.stack) > 1 {
		r.stack = r.stack[:1]
	}
	return nil
}

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands anything else to the active
// screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case HomeMsg:
		return r.Home()
	}

	n := len(r.stack)
	if n == 0 {
		return nil
	}
	next, cmd := r.stack[n-1].Update(msg)
	r.stack[n-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if s := r.Active(); s != nil {
		return s.View(width, height)
	}
	return ""
}

func leave(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}
