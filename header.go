package mvc

import (
	"cmp"
	"fmt"
	"net/http"
	"slices"
)

// Field is one response header assignment.
type Field struct {
	Name  string
	Value string
}

// Fields is an ordered set of header assignments, applied in declaration order.
type Fields []Field

// FieldsFromMap converts m into Fields sorted by header name, since map
// iteration order is random.
func FieldsFromMap(m map[string]string) Fields {
	fields := make(Fields, 0, len(m))
	for name, value := range m {
		fields = append(fields, Field{Name: name, Value: value})
	}
	slices.SortFunc(fields, func(a, b Field) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return fields
}

// Expression is what Header accepts: a header name or a set of fields.
type Expression interface {
	string | Fields
}

// HeaderMode selects how a HeaderSpec mutates the response.
type HeaderMode uint8

const (
	SingleValue HeaderMode = iota
	Multi
)

// HeaderSpec is the immutable intent of a method-level header decoration.
type HeaderSpec struct {
	mode   HeaderMode
	name   string
	value  string
	fields Fields
}

// HeaderSetter is the part of a response a HeaderSpec mutates.
type HeaderSetter interface {
	Set(name, value string)
}

// Mode reports whether s sets one header or several.
func (s HeaderSpec) Mode() HeaderMode {
	return s.mode
}

// Fields returns the assignments s applies, in order.
func (s HeaderSpec) Fields() Fields {
	if s.mode == SingleValue {
		return Fields{{Name: s.name, Value: s.value}}
	}
	return slices.Clone(s.fields)
}

// Apply sets the headers of s on w.
func (s HeaderSpec) Apply(w HeaderSetter) {
	switch s.mode {
	case SingleValue:
		w.Set(s.name, s.value)
	case Multi:
		for _, f := range s.fields {
			w.Set(f.Name, f.Value)
		}
	}
}

// after returns the post-handler middleware applying s per request.
func (s HeaderSpec) after() AfterFunc {
	return func(_ *http.Request, w ResponseWriter, next func()) {
		s.Apply(w)
		next()
	}
}

// NewHeaderSpec builds the spec from Header's arguments: a value makes it a
// single header named by expression, no value requires expression to be Fields.
func NewHeaderSpec[E Expression](expression E, value ...string) (HeaderSpec, error) {
	if len(value) > 1 {
		return HeaderSpec{}, fmt.Errorf("%w: at most one header value, got %d", ErrInvalidExpression, len(value))
	}

	switch e := any(expression).(type) {
	case string:
		if len(value) == 0 {
			return HeaderSpec{}, fmt.Errorf("%w: header %q needs a value on a method", ErrInvalidExpression, e)
		}
		return HeaderSpec{mode: SingleValue, name: e, value: value[0]}, nil
	case Fields:
		if len(value) > 0 {
			return HeaderSpec{}, fmt.Errorf("%w: a value cannot accompany header fields", ErrInvalidExpression)
		}
		return HeaderSpec{mode: Multi, fields: slices.Clone(e)}, nil
	default:
		return HeaderSpec{}, fmt.Errorf("%w: %T", ErrInvalidExpression, expression)
	}
}

// Header sets response headers when applied to a method, or binds a request
// header to an argument when applied to a parameter.
//
//	app.Endpoint(ctrl, "Export",
//		mvc.OnMethod(
//			mvc.Header("Content-Type", "text/csv"),
//			mvc.Header(mvc.Fields{
//				{Name: "Cache-Control", Value: "no-store"},
//				{Name: "ETag", Value: "12345"},
//			}),
//		),
//		mvc.OnParam(1, mvc.Header("X-Trace")),
//	)
//
// Method-level headers are set after the method returns and before the
// response renders. Header records its declarations in DefaultRegistry.
func Header[E Expression](expression E, expressionValue ...string) Decorator {
	return HeaderWith(DefaultRegistry, DefaultRegistry, expression, expressionValue...)
}

// HeaderWith is Header with explicit collaborators: params receives parameter
// bindings, after receives the response middleware.
func HeaderWith[E Expression](params ParamRegistrar, after AfterRegistrar, expression E, expressionValue ...string) Decorator {
	return func(target any, propertyKey string, descriptor any) error {
		site, err := resolveTarget(descriptor)
		if err != nil {
			return err
		}

		switch site.Kind {
		case ParameterTarget:
			name, ok := any(expression).(string)
			if !ok {
				return fmt.Errorf("%w: parameter headers are bound by name, got %T", ErrInvalidExpression, expression)
			}
			return headerParamsWith(params, name)(target, propertyKey, site.ParameterIndex)

		case MethodTarget:
			spec, err := NewHeaderSpec(expression, expressionValue...)
			if err != nil {
				return err
			}
			return UseAfterWith(after, spec.after())(target, propertyKey, site.Descriptor)

		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedDescriptor, site.Kind)
		}
	}
}
