package pdf

// Dict is a PDF dictionary. Unlike a plain Go map, Dict preserves insertion
// order, because the document assembler must reproduce the exact byte
// sequence a producer built up, one Set call at a time.
//
// The zero Dict is ready to use.
type Dict struct {
	keys   []Name
	values map[Name]Object
}

// NewDict returns an empty Dict.
func NewDict() Dict {
	return Dict{values: make(map[Name]Object)}
}

// Set stores value under key, preserving the position of key if it was
// already present, or appending it at the end if it is new.
func (d *Dict) Set(key Name, value Object) {
	if d.values == nil {
		d.values = make(map[Name]Object)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key, and whether it was present.
func (d Dict) Get(key Name) (Object, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key from the dictionary, if present.
func (d *Dict) Delete(key Name) {
	if _, ok := d.values[key]; !ok {
		return
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the dictionary's keys in insertion order.
func (d Dict) Keys() []Name {
	out := make([]Name, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len reports the number of entries in the dictionary.
func (d Dict) Len() int {
	return len(d.keys)
}

func (d Dict) writeTo(w *tokenWriter, ref Reference) error {
	if err := w.writeRaw("<<"); err != nil {
		return err
	}
	for _, key := range d.keys {
		if err := w.writeRaw(" "); err != nil {
			return err
		}
		if err := Name(key).writeTo(w, ref); err != nil {
			return err
		}
		if err := w.writeRaw(" "); err != nil {
			return err
		}
		val := d.values[key]
		if val == nil {
			val = Null{}
		}
		if err := val.writeTo(w, ref); err != nil {
			return err
		}
	}
	return w.writeRaw(" >>")
}
