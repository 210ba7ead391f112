// Package announce delivers transient accessibility announcements. An
// announcement is a node inserted into the host's live region and removed
// again after a fixed timeout, regardless of what happens in between.
package announce

import (
	"time"

	"github.com/germanamz/cinifilme/pkg/sched"
)

// DefaultTimeout is how long an announcement node stays in the live region.
const DefaultTimeout = time.Second

// LiveRegion is the host's polite live region.
type LiveRegion interface {
	// Insert adds a node carrying text and returns it. A nil Node means the
	// host could not insert one.
	Insert(text string) Node
}

// Node is an inserted announcement.
type Node interface {
	// Remove detaches the node. Removing twice is a no-op.
	Remove()
}

// Announcer inserts announcements and schedules their removal.
type Announcer struct {
	region  LiveRegion
	s       sched.Scheduler
	timeout time.Duration
}

// New creates an Announcer. A non-positive timeout falls back to
// DefaultTimeout.
func New(region LiveRegion, s sched.Scheduler, timeout time.Duration) *Announcer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Announcer{region: region, s: s, timeout: timeout}
}

// Say announces text. It is a no-op without a live region.
func (a *Announcer) Say(text string) {
	if a == nil || a.region == nil || a.s == nil {
		return
	}
	node := a.region.Insert(text)
	if node == nil {
		return
	}
	a.s.AfterFunc(a.timeout, node.Remove)
}

// Region is an in-memory LiveRegion. Hosts render Messages while nodes are
// attached. It is not safe for concurrent use.
type Region struct {
	nodes    []*regionNode
	inserted int
}

type regionNode struct {
	r    *Region
	text string
}

// Insert implements LiveRegion.
func (r *Region) Insert(text string) Node {
	n := &regionNode{r: r, text: text}
	r.nodes = append(r.nodes, n)
	r.inserted++
	return n
}

// Messages returns the texts of attached nodes in insertion order.
func (r *Region) Messages() []string {
	out := make([]string, 0, len(r.nodes))
	for _, n := range r.nodes {
		out = append(out, n.text)
	}
	return out
}

// Latest returns the most recently inserted attached text.
func (r *Region) Latest() (string, bool) {
	if len(r.nodes) == 0 {
		return "", false
	}
	return r.nodes[len(r.nodes)-1].text, true
}

// Inserted returns the total number of nodes ever inserted.
func (r *Region) Inserted() int { return r.inserted }

func (n *regionNode) Remove() {
	for i, cur := range n.r.nodes {
		if cur == n {
			n.r.nodes = append(n.r.nodes[:i], n.r.nodes[i+1:]...)
			return
		}
	}
}
