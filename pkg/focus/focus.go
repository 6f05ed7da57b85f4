// Package focus provides keyboard focus management for widgets.
//
// A Manager holds an ordered list of nodes (tab order) and at most one
// primary focus. Nodes are told about focus changes through OnFocusChange.
package focus

import "slices"

// Node represents a focusable widget.
type Node struct {
	CanRequestFocus bool
	SkipTraversal   bool
	DebugLabel      string

	OnFocusChange func(hasFocus bool)

	hasFocus bool
	manager  *Manager
}

// canReceiveFocus reports whether the node can receive focus.
func (n *Node) canReceiveFocus() bool {
	return n != nil && n.CanRequestFocus
}

// canTraverse reports whether tab traversal may land on the node.
func (n *Node) canTraverse() bool {
	return n.canReceiveFocus() && !n.SkipTraversal
}

// HasFocus reports whether this node has primary focus.
func (n *Node) HasFocus() bool {
	return n.hasFocus
}

// RequestFocus requests that this node receive primary focus.
func (n *Node) RequestFocus() {
	if !n.canReceiveFocus() || n.manager == nil {
		return
	}
	n.manager.setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *Node) Unfocus() {
	if n.manager != nil && n.manager.primary == n {
		n.manager.setPrimaryFocus(nil)
	}
}

// Manager tracks the primary focus among its nodes. It is not safe for
// concurrent use.
type Manager struct {
	nodes   []*Node
	primary *Node
}

// NewManager creates an empty focus manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add appends a node to the tab order.
func (m *Manager) Add(n *Node) {
	if n == nil || n.manager == m {
		return
	}
	n.manager = m
	m.nodes = append(m.nodes, n)
}

// Remove drops a node from the tab order. If it had focus, focus is cleared
// without notifying the node.
func (m *Manager) Remove(n *Node) {
	i := slices.Index(m.nodes, n)
	if i < 0 {
		return
	}
	m.nodes = slices.Delete(m.nodes, i, i+1)
	if m.primary == n {
		m.primary = nil
		n.hasFocus = false
	}
	n.manager = nil
}

// Primary returns the node with primary focus, or nil.
func (m *Manager) Primary() *Node {
	return m.primary
}

// Len returns the number of nodes.
func (m *Manager) Len() int {
	return len(m.nodes)
}

// Clear removes primary focus.
func (m *Manager) Clear() {
	m.setPrimaryFocus(nil)
}

// MoveFocus moves focus by delta positions in tab order, wrapping around
// and skipping nodes that cannot take focus. With no current focus, +1
// lands on the first node and -1 on the last.
func (m *Manager) MoveFocus(delta int) bool {
	count := len(m.nodes)
	if count == 0 || delta == 0 {
		return false
	}

	current := slices.Index(m.nodes, m.primary)
	if current < 0 && delta < 0 {
		current = 0
	}
	for step := 1; step <= count; step++ {
		candidate := m.nodes[wrapIndex(current+delta*step, count)]
		if candidate.canTraverse() {
			m.setPrimaryFocus(candidate)
			return true
		}
	}
	return false
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *Manager) setPrimaryFocus(node *Node) {
	if m.primary == node {
		return
	}
	if m.primary != nil {
		m.primary.setFocusState(false)
	}
	m.primary = node
	if node != nil {
		node.setFocusState(true)
	}
}

// setFocusState updates the focus flag and notifies the callback.
func (n *Node) setFocusState(hasFocus bool) {
	n.hasFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}
