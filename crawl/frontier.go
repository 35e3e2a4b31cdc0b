package crawl

// Frontier is a FIFO queue of nodes awaiting visitation.
// It does not deduplicate: a node may be queued any number of times.
// Frontier is not safe for concurrent use.
type Frontier[N comparable] struct {
	queue []N
	head  int
}

// NewFrontier creates an empty Frontier.
func NewFrontier[N comparable]() *Frontier[N] {
	return &Frontier[N]{}
}

// Push appends a node to the back of the queue.
func (f *Frontier[N]) Push(v N) {
	f.queue = append(f.queue, v)
}

// Pop removes and returns the node at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier[N]) Pop() (N, bool) {
	var zero N
	if f.head == len(f.queue) {
		return zero, false
	}
	v := f.queue[f.head]
	f.queue[f.head] = zero
	f.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if f.head > 64 && f.head*2 >= len(f.queue) {
		n := copy(f.queue, f.queue[f.head:])
		clear(f.queue[n:])
		f.queue = f.queue[:n]
		f.head = 0
	}
	return v, true
}

// Len returns the number of nodes in the queue.
func (f *Frontier[N]) Len() int {
	return len(f.queue) - f.head
}
