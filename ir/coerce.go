package ir

import "strconv"

// Scalar coercion accessors. Each returns a zero-value fallback when
// the node's type does not match the request; none of them fail.
// Callers relying on these for validation are out of luck on purpose.

func (y *Node) AsInt() int64 {
	if y == nil {
		return 0
	}
	switch y.Type {
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return int64(*y.Float64)
		}
		i, err := strconv.ParseInt(y.Number, 10, 64)
		if err == nil {
			return i
		}
		f, err := strconv.ParseFloat(y.Number, 64)
		if err == nil {
			return int64(f)
		}
	case StringType:
		i, err := strconv.ParseInt(y.String, 10, 64)
		if err == nil {
			return i
		}
		f, err := strconv.ParseFloat(y.String, 64)
		if err == nil {
			return int64(f)
		}
	case BoolType:
		if y.Bool {
			return 1
		}
	}
	return 0
}

func (y *Node) AsFloat() float64 {
	if y == nil {
		return 0
	}
	switch y.Type {
	case NumberType:
		if y.Float64 != nil {
			return *y.Float64
		}
		if y.Int64 != nil {
			return float64(*y.Int64)
		}
		f, err := strconv.ParseFloat(y.Number, 64)
		if err == nil {
			return f
		}
	case StringType:
		f, err := strconv.ParseFloat(y.String, 64)
		if err == nil {
			return f
		}
	case BoolType:
		if y.Bool {
			return 1
		}
	}
	return 0
}

func (y *Node) AsBool() bool {
	if y == nil {
		return false
	}
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		return y.AsInt() != 0
	case StringType:
		b, err := strconv.ParseBool(y.String)
		if err == nil {
			return b
		}
	}
	return false
}

func (y *Node) AsString() string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return y.Number
	case BoolType:
		return strconv.FormatBool(y.Bool)
	}
	return ""
}
