package maxxor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const smallEncoding int32 = 1

// AsBytes serializes the Computer so a stream can be resumed later with
// FromBytes.
func (c *Computer) AsBytes() ([]byte, error) {
	buffer := new(bytes.Buffer)

	err := binary.Write(buffer, binary.BigEndian, smallEncoding)
	if err != nil {
		return nil, err
	}

	err = binary.Write(buffer, binary.BigEndian, uint8(c.width))
	if err != nil {
		return nil, err
	}

	encodeUint(buffer, uint64(c.count))
	encodeInt(buffer, c.best.Value)
	encodeUint(buffer, uint64(c.best.Start))
	encodeUint(buffer, uint64(c.best.End))
	encodeUint(buffer, c.prefix)

	encodeUint(buffer, uint64(c.trie.Len()))
	c.trie.Walk(func(key uint64, tag int) bool {
		encodeUint(buffer, key)
		encodeUint(buffer, uint64(tag))
		return true
	})

	return buffer.Bytes(), nil
}

// FromBytes reads a byte buffer with a serialized Computer (as produced
// by AsBytes) and returns a Computer that continues the same stream.
func FromBytes(buf *bytes.Reader) (*Computer, error) {
	var encoding int32
	err := binary.Read(buf, binary.BigEndian, &encoding)
	if err != nil {
		return nil, err
	}

	if encoding != smallEncoding {
		return nil, fmt.Errorf("Unsupported encoding version: %d", encoding)
	}

	var width uint8
	err = binary.Read(buf, binary.BigEndian, &width)
	if err != nil {
		return nil, err
	}

	count, err := decodeUint(buf)
	if err != nil {
		return nil, err
	}

	value, err := decodeInt(buf)
	if err != nil {
		return nil, err
	}

	start, err := decodeUint(buf)
	if err != nil {
		return nil, err
	}

	end, err := decodeUint(buf)
	if err != nil {
		return nil, err
	}

	prefix, err := decodeUint(buf)
	if err != nil {
		return nil, err
	}

	numKeys, err := decodeUint(buf)
	if err != nil {
		return nil, err
	}

	if numKeys > count+1 {
		return nil, fmt.Errorf("Corrupted payload: %d prefixes for %d values", numKeys, count)
	}
	if count > 0 && (start > end || end >= count) {
		return nil, fmt.Errorf("Corrupted payload: witness [%d,%d] outside %d values", start, end, count)
	}

	c, err := New(Width(uint(width)), Capacity(uint(count)))
	if err != nil {
		return nil, err
	}

	var i uint64
	for i = 0; i < numKeys; i++ {
		key, err := decodeUint(buf)
		if err != nil {
			return nil, err
		}
		tag, err := decodeUint(buf)
		if err != nil {
			return nil, err
		}
		if tag > count {
			return nil, fmt.Errorf("Corrupted payload: prefix position %d past %d values", tag, count)
		}
		c.trie.Insert(key, int(tag))
	}

	c.count = int(count)
	c.prefix = prefix
	c.best = Result{Value: value, Start: int(start), End: int(end)}

	return c, nil
}

func encodeUint(buf *bytes.Buffer, n uint64) {
	for n > 0x7f {
		buf.WriteByte(byte(0x80 | (0x7f & n)))
		n >>= 7
	}
	buf.WriteByte(byte(n))
}

func encodeInt(buf *bytes.Buffer, n int64) {
	encodeUint(buf, uint64(n<<1)^uint64(n>>63))
}

func decodeUint(buf *bytes.Reader) (uint64, error) {
	v, err := buf.ReadByte()
	if err != nil {
		return 0, err
	}
	z := 0x7f & uint64(v)
	var shift uint = 7
	for v&0x80 != 0 {
		if shift > 63 {
			return 0, errors.New("Something wrong, this number looks too big")
		}
		v, err = buf.ReadByte()
		if err != nil {
			return 0, err
		}
		z += uint64(v&0x7f) << shift
		shift += 7
	}
	return z, nil
}

func decodeInt(buf *bytes.Reader) (int64, error) {
	u, err := decodeUint(buf)
	if err != nil {
		return 0, err
	}
	return int64(u>>1) ^ -int64(u&1), nil
}
