package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/imgbench/pkg/bench"
)

// Items is a draw list in config form. Each entry is either a point, written
// as a two-element sequence [x, y], or a polyline, written as a sequence of
// points [[x1, y1], [x2, y2], ...]. The same shape is accepted from YAML
// and TOML.
type Items bench.DrawList

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *Items) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: items must be a sequence", node.Line)
	}

	list := make(Items, 0, len(node.Content))
	for _, entry := range node.Content {
		item, err := decodeItem(entry)
		if err != nil {
			return err
		}
		list = append(list, item)
	}
	*it = list
	return nil
}

func decodeItem(node *yaml.Node) (bench.Item, error) {
	if node.Kind != yaml.SequenceNode || len(node.Content) == 0 {
		return nil, fmt.Errorf("line %d: item must be [x, y] or a list of [x, y]", node.Line)
	}

	if node.Content[0].Kind == yaml.ScalarNode {
		return decodePoint(node)
	}

	line := make(bench.Polyline, 0, len(node.Content))
	for _, child := range node.Content {
		p, err := decodePoint(child)
		if err != nil {
			return nil, err
		}
		line = append(line, p)
	}
	return line, nil
}

func decodePoint(node *yaml.Node) (bench.Point, error) {
	var xy []int
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return bench.Point{}, fmt.Errorf("line %d: point must be [x, y]", node.Line)
	}
	if err := node.Decode(&xy); err != nil {
		return bench.Point{}, fmt.Errorf("line %d: point: %w", node.Line, err)
	}
	return bench.Pt(xy[0], xy[1]), nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (it *Items) UnmarshalTOML(v any) error {
	entries, ok := v.([]any)
	if !ok {
		return errors.New("items must be an array")
	}

	list := make(Items, 0, len(entries))
	for i, entry := range entries {
		item, err := decodeTOMLItem(entry)
		if err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
		list = append(list, item)
	}
	*it = list
	return nil
}

func decodeTOMLItem(v any) (bench.Item, error) {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil, errors.New("item must be [x, y] or a list of [x, y]")
	}

	if _, nested := arr[0].([]any); !nested {
		return decodeTOMLPoint(arr)
	}

	line := make(bench.Polyline, 0, len(arr))
	for _, child := range arr {
		xy, ok := child.([]any)
		if !ok {
			return nil, errors.New("point must be [x, y]")
		}
		p, err := decodeTOMLPoint(xy)
		if err != nil {
			return nil, err
		}
		line = append(line, p)
	}
	return line, nil
}

func decodeTOMLPoint(xy []any) (bench.Point, error) {
	if len(xy) != 2 {
		return bench.Point{}, errors.New("point must be [x, y]")
	}
	x, okX := xy[0].(int64)
	y, okY := xy[1].(int64)
	if !okX || !okY {
		return bench.Point{}, errors.New("point coordinates must be integers")
	}
	return bench.Pt(int(x), int(y)), nil
}

// DrawList converts the items to a bench draw list. A nil Items gives a
// nil list, which leaves a bench's current list in place.
func (it Items) DrawList() bench.DrawList {
	return bench.DrawList(it)
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (bench.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return bench.Point{}, fmt.Errorf("%w: point %q", ErrInvalid, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return bench.Point{}, fmt.Errorf("%w: point %q", ErrInvalid, s)
	}
	return bench.Pt(x, y), nil
}

// ParsePolyline parses "x1,y1;x2,y2;..." with at least two points.
func ParsePolyline(s string) (bench.Polyline, error) {
	fields := strings.Split(s, ";")
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: polyline %q needs at least two points", ErrInvalid, s)
	}
	line := make(bench.Polyline, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePoint(f)
		if err != nil {
			return nil, err
		}
		line = append(line, p)
	}
	return line, nil
}
