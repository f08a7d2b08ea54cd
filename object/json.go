package object

import (
	"errors"

	"github.com/tidwall/gjson"
)

// FromJSON creates a controller tree from a JSON object. Nested objects
// become child controllers, other values become properties. Keys of an
// object named "parameters" become parameters of the enclosing controller.
func FromJSON(name string, data []byte) (*Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON controller data")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return nil, errors.New("JSON controller data must be an object")
	}
	return fromResult(name, r), nil
}

func fromResult(name string, r gjson.Result) *Node {
	n := NewNode(name)
	r.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		switch {
		case k == "parameters" && value.IsObject():
			value.ForEach(func(pk, pv gjson.Result) bool {
				n.AddParameter(pk.String(), jsonValue(pv))
				return true
			})
		case value.IsObject():
			n.AddChild(fromResult(k, value))
		default:
			n.props[k] = jsonValue(value)
		}
		return true
	})
	tracer().Debugf("controller %q created from JSON", name)
	return n
}

func jsonValue(r gjson.Result) interface{} {
	switch r.Type {
	case gjson.Number:
		if float64(int(r.Num)) == r.Num {
			return int(r.Num)
		}
		return r.Num
	case gjson.True, gjson.False:
		return r.Bool()
	case gjson.String:
		return r.String()
	case gjson.Null:
		return nil
	}
	return r.Value()
}
