package theme

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strings"

	"github.com/example/simplepaint/internal/colorspec"
)

// Parse reads a theme definition from an io.Reader.
// Each line holds one `Key: value` pair where value is a color name,
// #RRGGBB or #RRGGBBAA. Unknown keys are ignored.
func Parse(r io.Reader) (*Theme, error) {
	t := Default()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if err := SetField(t, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	return t, scanner.Err()
}

var rgbaType = reflect.TypeOf(color.RGBA{})

// SetField assigns value to the field named key, ignoring case.
func SetField(t *Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != rgbaType {
			continue
		}
		col, err := colorspec.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}

// Fields returns the color fields of t in declaration order, keyed by name.
func Fields(t *Theme) []Field {
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	var out []Field
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type != rgbaType {
			continue
		}
		out = append(out, Field{Name: typ.Field(i).Name, Color: val.Field(i).Interface().(color.RGBA)})
	}
	return out
}

// Field is one named theme color.
type Field struct {
	Name  string
	Color color.RGBA
}
