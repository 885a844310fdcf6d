// ABOUTME: Core object model for the heap
// ABOUTME: Defines ObjKind and the tagged Object representation

package heap

// ObjKind discriminates the two object shapes
type ObjKind int

const (
	// KindInt is a leaf object holding a single integer
	KindInt ObjKind = iota
	// KindPair is a composite object holding two references
	KindPair
)

// String returns a short name for the kind
func (k ObjKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPair:
		return "pair"
	}
	return "unknown"
}

// Object is a single heap-allocated value. An int object carries Value; a
// pair object carries First and Second, either of which may be nil or point
// at any object, including the pair itself. First and Second are plain
// fields so a host can rewire pairs into cyclic structures.
//
// marked is transient, meaningful only while a collection cycle runs and
// cleared on survivors by the end of sweep. next threads the registry chain
// of all allocations and belongs to the Heap alone.
type Object struct {
	Value  int
	First  *Object
	Second *Object

	kind   ObjKind
	marked bool
	next   *Object
}

// Kind reports whether the object is an int or a pair
func (o *Object) Kind() ObjKind { return o.kind }
