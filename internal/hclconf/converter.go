package hclconf

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/mk/hookline/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter is the HCL-specific implementation of config.Converter.
type Converter struct{}

// NewConverter creates a new HCL settings converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeSettings evaluates the raw settings expressions and populates the
// target struct using reflection. Fields are matched by their hkl tag;
// attributes without a matching field are ignored, and fields without a
// matching attribute keep their zero (or pre-set default) value.
func (c *Converter) DecodeSettings(ctx context.Context, target any, settings map[string]hcl.Expression) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding plugin settings.")

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("settings target must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldVal := structVal.Field(i)
		if !fieldVal.CanSet() {
			continue
		}

		lookupName := field.Name
		if tag := field.Tag.Get("hkl"); tag != "" {
			lookupName = strings.Split(tag, ",")[0]
		}

		expr, ok := settings[lookupName]
		if !ok {
			continue
		}

		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate setting %q: %w", lookupName, diags)
		}
		if err := c.decode(ctx, val, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("failed to decode setting %q: %w", lookupName, err)
		}
	}

	logger.Debug("Finished decoding plugin settings.")
	return nil
}

// decode converts a cty.Value into the Go pointer target, converting the
// value type when the setting was written as a compatible literal.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.",
			"go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w",
			val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
