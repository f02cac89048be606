package walk

// Hide splices p out of the placement list by repointing its neighbors
// around it. Hide deliberately leaves p.Prev and p.Next untouched, so a
// later Show can restore the list exactly, and so that any traversal that
// already holds a reference to p (rather than discovering it fresh via
// Next from a live neighbor) keeps walking through p and beyond exactly as
// if it had not been hidden. A traversal that reaches p's position from a
// still-linked neighbor skips p. Package solve's prefix-max-sum heuristic
// scans the list this way — see DESIGN.md.
func (p *Placement) Hide() {
	if p.Prev != nil {
		p.Prev.Next = p.Next
	}
	if p.Next != nil {
		p.Next.Prev = p.Prev
	}
}

// Show reverses a single Hide, using p's own (untouched) Prev/Next to
// relink its former neighbors back to p. Hide/Show pairs must nest in
// strict LIFO order, matching the dlx before/after contract that drives
// them.
func (p *Placement) Show() {
	if p.Prev != nil {
		p.Prev.Next = p
	}
	if p.Next != nil {
		p.Next.Prev = p
	}
}
