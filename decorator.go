package mvc

import (
	"fmt"
	"reflect"
)

// Decorator declares behavior at a decoration site. The host calls it once per
// site with the controller, the method name and a descriptor: a *Descriptor for
// the method itself, or the int index of one of its parameters.
type Decorator func(target any, propertyKey string, descriptor any) error

// Descriptor describes a controller method being decorated.
type Descriptor struct {
	Target any
	Method string
	Func   reflect.Value // method value bound to Target
	Type   reflect.Type  // signature without the receiver
}

// NewDescriptor resolves the exported method named method on target.
func NewDescriptor(target any, method string) (*Descriptor, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	fn := reflect.ValueOf(target).MethodByName(method)
	if !fn.IsValid() {
		return nil, fmt.Errorf("%w: %T.%s", ErrMethodNotFound, target, method)
	}
	return &Descriptor{
		Target: target,
		Method: method,
		Func:   fn,
		Type:   fn.Type(),
	}, nil
}

// TargetKind tells whether a decorator was applied to a method or to a parameter.
type TargetKind uint8

const (
	MethodTarget TargetKind = iota
	ParameterTarget
)

func (k TargetKind) String() string {
	switch k {
	case MethodTarget:
		return "method"
	case ParameterTarget:
		return "parameter"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// DecorationTarget is the decoration site resolved from a descriptor.
// ParameterIndex is set for ParameterTarget, Descriptor for MethodTarget.
type DecorationTarget struct {
	Kind           TargetKind
	ParameterIndex int
	Descriptor     *Descriptor
}

// resolveTarget derives the site from the descriptor's shape:
// an int is a parameter index, a *Descriptor is a method.
func resolveTarget(descriptor any) (DecorationTarget, error) {
	switch d := descriptor.(type) {
	case int:
		return DecorationTarget{Kind: ParameterTarget, ParameterIndex: d}, nil
	case *Descriptor:
		if d == nil {
			return DecorationTarget{}, fmt.Errorf("%w: nil *Descriptor", ErrUnsupportedDescriptor)
		}
		return DecorationTarget{Kind: MethodTarget, Descriptor: d}, nil
	default:
		return DecorationTarget{}, fmt.Errorf("%w: %T", ErrUnsupportedDescriptor, descriptor)
	}
}

// Site groups the decorators applied to a method or to one of its parameters.
type Site struct {
	param      bool
	index      int
	decorators []Decorator
}

// OnMethod applies decorators to the endpoint method itself.
func OnMethod(decorators ...Decorator) Site {
	return Site{decorators: decorators}
}

// OnParam applies decorators to the method parameter at index (0-based,
// receiver excluded).
func OnParam(index int, decorators ...Decorator) Site {
	return Site{param: true, index: index, decorators: decorators}
}

// apply invokes every decorator of the site in declaration order.
func (s Site) apply(desc *Descriptor) error {
	var descriptor any = desc
	if s.param {
		descriptor = s.index
	}

	for i, d := range s.decorators {
		if d == nil {
			return fmt.Errorf("%w at position %d", ErrNilDecorator, i)
		}
		if err := d(desc.Target, desc.Method, descriptor); err != nil {
			return err
		}
	}
	return nil
}
