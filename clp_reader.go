package clp

import "strconv"

// Reader converts a single textual token into a value of type T. Typed
// descriptors are constructed with one of the built-in readers below;
// types with no native textual form supply their own via NewValue,
// NewValueList, NewPositional or SetReader.
type Reader[T any] func(token string) (T, error)

func ReadString(token string) (string, error) {
	return token, nil
}

func ReadInt(token string) (int, error) {
	return strconv.Atoi(token)
}

func ReadInt64(token string) (int64, error) {
	return strconv.ParseInt(token, 10, 64)
}

func ReadFloat64(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// ReadBool accepts the strconv forms plus bare 0/1.
func ReadBool(token string) (bool, error) {
	v, err := strconv.ParseBool(token)
	if err != nil {
		switch token {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return false, err
	}
	return v, nil
}
