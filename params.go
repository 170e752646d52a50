package mvc

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"

	"github.com/dmitrymomot/mvc/core/binder"
)

// Param binds one controller method argument to a request source.
// An empty Field binds the whole source.
type Param struct {
	Index    int
	Filter   Filter
	Field    string
	Required bool
	Pattern  *regexp.Regexp
}

// ParamOption customizes a Param.
type ParamOption func(*Param)

// Required rejects requests where the field is absent.
func Required() ParamOption {
	return func(p *Param) { p.Required = true }
}

// Match rejects requests where any value of the field does not match re.
func Match(re *regexp.Regexp) ParamOption {
	return func(p *Param) { p.Pattern = re }
}

// ParamRegistrar records parameter bindings for a controller method.
type ParamRegistrar interface {
	RegisterParam(target any, method string, index int, p Param) error
}

// HeaderParams binds the parameter to the request header field, in DefaultRegistry.
func HeaderParams(field string, opts ...ParamOption) Decorator {
	return ParamsWith(DefaultRegistry, HeaderParamsFilter, field, opts...)
}

// QueryParams binds the parameter to the query string field, in DefaultRegistry.
func QueryParams(field string, opts ...ParamOption) Decorator {
	return ParamsWith(DefaultRegistry, QueryParamsFilter, field, opts...)
}

// PathParams binds the parameter to the path wildcard field, in DefaultRegistry.
func PathParams(field string, opts ...ParamOption) Decorator {
	return ParamsWith(DefaultRegistry, PathParamsFilter, field, opts...)
}

// ParamsWith binds the parameter to field of filter's source and records it in reg.
// It only applies to parameters.
func ParamsWith(reg ParamRegistrar, filter Filter, field string, opts ...ParamOption) Decorator {
	return func(target any, propertyKey string, descriptor any) error {
		site, err := resolveTarget(descriptor)
		if err != nil {
			return err
		}
		if site.Kind != ParameterTarget {
			return fmt.Errorf("%w: %s on %s", ErrParamSiteRequired, filter.Name(), propertyKey)
		}

		p := Param{Index: site.ParameterIndex, Filter: filter, Field: field}
		for _, opt := range opts {
			opt(&p)
		}
		return reg.RegisterParam(target, propertyKey, site.ParameterIndex, p)
	}
}

func headerParamsWith(reg ParamRegistrar, field string) Decorator {
	return ParamsWith(reg, HeaderParamsFilter, field)
}

var rawValuesType = reflect.TypeFor[map[string][]string]()

// resolve produces the argument value of type typ for the request.
func (p Param) resolve(r *http.Request, typ reflect.Type) (reflect.Value, error) {
	if p.Field == "" {
		return p.resolveAll(r, typ)
	}

	name := p.Filter.Name()
	values := p.Filter.Values(r, p.Field)
	if len(values) == 0 {
		if p.Required {
			return reflect.Value{}, NewExpressionError(name, p.Field, "is required")
		}
		return reflect.Zero(typ), nil
	}

	if p.Pattern != nil {
		for _, v := range values {
			if !p.Pattern.MatchString(v) {
				return reflect.Value{}, NewExpressionError(name, p.Field, "must match "+renderExpression(p.Pattern))
			}
		}
	}

	v := reflect.New(typ).Elem()
	if err := binder.SetValue(v, values); err != nil {
		return reflect.Value{}, NewExpressionError(name, p.Field, err.Error())
	}
	return v, nil
}

// resolveAll binds the whole source into a raw values map or a struct.
func (p Param) resolveAll(r *http.Request, typ reflect.Type) (reflect.Value, error) {
	name := p.Filter.Name()

	switch {
	case typ.Kind() == reflect.Map && rawValuesType.ConvertibleTo(typ):
		all := p.Filter.All(r)
		if all == nil {
			return reflect.Zero(typ), nil
		}
		return reflect.ValueOf(all).Convert(typ), nil

	case typ.Kind() == reflect.Struct:
		v := reflect.New(typ)
		if err := p.Filter.Bind(r, v.Interface()); err != nil {
			return reflect.Value{}, NewExpressionError(name, typ.Name(), err.Error())
		}
		return v.Elem(), nil

	case typ.Kind() == reflect.Pointer && typ.Elem().Kind() == reflect.Struct:
		v := reflect.New(typ.Elem())
		if err := p.Filter.Bind(r, v.Interface()); err != nil {
			return reflect.Value{}, NewExpressionError(name, typ.Elem().Name(), err.Error())
		}
		return v, nil

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s cannot receive the whole %s source", ErrUnsupportedParam, typ, name)
	}
}

// supportsWhole reports whether resolveAll can produce typ.
func supportsWhole(typ reflect.Type) bool {
	switch {
	case typ.Kind() == reflect.Map:
		return rawValuesType.ConvertibleTo(typ)
	case typ.Kind() == reflect.Struct:
		return true
	case typ.Kind() == reflect.Pointer:
		return typ.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
