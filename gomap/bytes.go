package gomap

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ToBytes marshals a fixed-layout value (a fixed-size value or a
// struct of fixed-size fields) to its little-endian byte image. The
// result round-trips exactly through FromBytes on the same platform;
// it is not a portable wire format.
func ToBytes(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return nil, &MarshalError{
			Message: fmt.Sprintf("cannot marshal %T to bytes", v),
			Err:     err,
		}
	}
	return buf.Bytes(), nil
}

// FromBytes unmarshals a byte image produced by ToBytes. v must be a
// pointer to a fixed-layout value.
func FromBytes(data []byte, v any) error {
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, v); err != nil {
		return &UnmarshalError{
			Message: fmt.Sprintf("cannot unmarshal %d bytes into %T", len(data), v),
			Err:     err,
		}
	}
	return nil
}
