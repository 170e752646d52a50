package mvc

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

// DefaultRegistry stores the declarations of Header, UseAfter and the
// parameter decorators that do not name a registry.
var DefaultRegistry = NewRegistry()

// EndpointMeta is everything declared on one controller method.
type EndpointMeta struct {
	Params map[int]Param
	After  []AfterFunc
}

type endpointKey struct {
	typ    reflect.Type
	method string
}

// Registry stores decoration metadata per controller type and method name.
// Every instance of a controller type shares its declarations.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[endpointKey]*EndpointMeta

	decorateMu sync.Mutex
	decorated  map[endpointKey]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		endpoints: make(map[endpointKey]*EndpointMeta),
		decorated: make(map[endpointKey]struct{}),
	}
}

// RegisterParam records the binding of the parameter at index.
func (r *Registry) RegisterParam(target any, method string, index int, p Param) error {
	if target == nil {
		return ErrNilTarget
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParamIndex, index)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meta := r.entry(target, method)
	if _, ok := meta.Params[index]; ok {
		return fmt.Errorf("%w: %T.%s parameter %d", ErrParamAlreadyBound, target, method, index)
	}
	p.Index = index
	meta.Params[index] = p
	return nil
}

// RegisterAfter appends fn to the method's after functions.
func (r *Registry) RegisterAfter(target any, method string, _ *Descriptor, fn AfterFunc) error {
	if target == nil {
		return ErrNilTarget
	}
	if fn == nil {
		return fmt.Errorf("%w: %T.%s", ErrNilAfterFunc, target, method)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meta := r.entry(target, method)
	meta.After = append(meta.After, fn)
	return nil
}

// Endpoint returns a copy of the metadata declared on target's method.
func (r *Registry) Endpoint(target any, method string) EndpointMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.endpoints[endpointKey{typ: reflect.TypeOf(target), method: method}]
	if !ok {
		return EndpointMeta{Params: map[int]Param{}}
	}
	return EndpointMeta{
		Params: maps.Clone(meta.Params),
		After:  slices.Clone(meta.After),
	}
}

// decorateOnce runs apply the first time target's method is decorated.
// Later calls for the same controller type and method return nil without
// running apply. A failed apply is not recorded.
func (r *Registry) decorateOnce(target any, method string, apply func() error) error {
	r.decorateMu.Lock()
	defer r.decorateMu.Unlock()

	key := endpointKey{typ: reflect.TypeOf(target), method: method}
	if _, ok := r.decorated[key]; ok {
		return nil
	}
	if err := apply(); err != nil {
		return err
	}
	r.decorated[key] = struct{}{}
	return nil
}

// entry returns the metadata for target's method, creating it. Callers hold mu.
func (r *Registry) entry(target any, method string) *EndpointMeta {
	key := endpointKey{typ: reflect.TypeOf(target), method: method}
	meta, ok := r.endpoints[key]
	if !ok {
		meta = &EndpointMeta{Params: make(map[int]Param)}
		r.endpoints[key] = meta
	}
	return meta
}
