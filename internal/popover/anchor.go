// Package popover floats a calendar over a host view, below an anchor such
// as the text field it edits.
package popover

import "reflect"

// Rect is a cell rectangle in the host view.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bounds lets a bare Rect act as an anchor.
func (r Rect) Bounds() Rect { return r }

// Element is anything the host can report screen bounds for.
type Element interface {
	Bounds() Rect
}

// Ref is an indirect anchor whose Current element may be set after the
// picker is built. It is dereferenced on every render.
type Ref struct {
	Current Element
}

// ResolveAnchor accepts nil, an Element, a Ref or a *Ref and returns the
// element to position against, or nil. A nil pointer held in an Element
// resolves to nil.
func ResolveAnchor(anchor any) Element {
	switch a := anchor.(type) {
	case nil:
		return nil
	case *Ref:
		if a == nil {
			return nil
		}
		return present(a.Current)
	case Ref:
		return present(a.Current)
	case Element:
		return present(a)
	}
	return nil
}

func present(e Element) Element {
	if e == nil {
		return nil
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return e
}
