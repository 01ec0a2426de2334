package pdf

// objState tracks an indirect object's position in its open -> written
// lifecycle.
type objState int

const (
	objOpen objState = iota
	objWritten
)

// objEntry is the registry's bookkeeping record for one indirect object.
// Producers never see this type directly; they interact with it through a
// Ref or StreamWriter handle.
type objEntry struct {
	dict     Dict
	isStream bool

	state  objState
	offset int64
}

// registry is the document's table of indirect objects: it hands out object
// numbers, densely and starting at 1, and tracks each object's lifecycle.
type registry struct {
	entries []*objEntry // index i holds object number i+1
}

func newRegistry() *registry {
	return &registry{}
}

// alloc reserves the next object number and returns a reference to it. The
// caller is not required to populate or End the object immediately: handles
// may be stashed in other dictionaries first (this is how the pages tree's
// cyclic Parent/Kids structure gets built).
func (r *registry) alloc() Reference {
	num := uint32(len(r.entries)) + 1
	r.entries = append(r.entries, &objEntry{dict: NewDict()})
	return NewReference(num, 0)
}

func (r *registry) entry(ref Reference) *objEntry {
	idx := int(ref.Number()) - 1
	if idx < 0 || idx >= len(r.entries) {
		return nil
	}
	return r.entries[idx]
}

// count reports the highest allocated object number, i.e. the number of
// entries the xref table must list beyond object 0.
func (r *registry) count() int {
	return len(r.entries)
}

// openEntries returns the object numbers of every entry still in state
// objOpen, in ascending order.
func (r *registry) openEntries() []uint32 {
	var open []uint32
	for i, e := range r.entries {
		if e.state == objOpen {
			open = append(open, uint32(i+1))
		}
	}
	return open
}
