package forwardlist

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/dchest/siphash"
	"github.com/pkg/errors"

	"github.com/snwfog/forwardlist.go/pkg/util"
)

const (
	// generated by splitting the md5 sum of "hashmap"
	sipHashKey1 = 0xdda7806a4847ec61
	sipHashKey2 = 0xb5940c2623a5aabd
)

// Hasher lets element types that are not built in take part in Hash.
type Hasher interface {
	Hash64() uint64
}

// Hash returns a SipHash-2-4 digest of the element sequence. Lists that
// are Equal hash equal. Elements must be of string, byte slice, integer,
// float or bool kind (named types included), Hashers or nil; anything
// else panics.
func Hash[T any](l *List[T]) uint64 {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], sipHashKey1)
	binary.LittleEndian.PutUint64(key[8:], sipHashKey2)
	h := siphash.New(key[:])

	buf := make([]byte, 0, 64)
	buf = binary.AppendUvarint(buf, uint64(l.count))
	for n := l.head.next; n != nil; n = n.next {
		buf = appendElement(buf, n.value)
		_, _ = h.Write(buf)
		buf = buf[:0]
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

// appendElement writes an unambiguous encoding of v: variable length
// kinds carry their length so ["ab" "c"] and ["a" "bc"] differ.
func appendElement(buf []byte, v any) []byte {
	if util.IsNil(v) {
		return append(buf, 0)
	}

	switch x := v.(type) {
	case Hasher:
		return binary.LittleEndian.AppendUint64(buf, x.Hash64())
	case string:
		buf = binary.AppendUvarint(buf, uint64(len(x)))
		return append(buf, x...)
	case []byte:
		buf = binary.AppendUvarint(buf, uint64(len(x)))
		return append(buf, x...)
	case bool:
		if x {
			return append(buf, 1)
		}
		return append(buf, 0)
	case int:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case int8:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case int16:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case int32:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case uint:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case uint8:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case uint16:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case uint32:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case uint64:
		return binary.LittleEndian.AppendUint64(buf, x)
	case uintptr:
		return binary.LittleEndian.AppendUint64(buf, uint64(x))
	case float32:
		return binary.LittleEndian.AppendUint64(buf, floatBits(float64(x)))
	case float64:
		return binary.LittleEndian.AppendUint64(buf, floatBits(x))
	}

	// named types such as time.Duration encode like their underlying kind
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String:
		buf = binary.AppendUvarint(buf, uint64(rv.Len()))
		return append(buf, rv.String()...)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf = binary.AppendUvarint(buf, uint64(rv.Len()))
			return append(buf, rv.Bytes()...)
		}
	case reflect.Bool:
		if rv.Bool() {
			return append(buf, 1)
		}
		return append(buf, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(buf, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return binary.LittleEndian.AppendUint64(buf, floatBits(rv.Float()))
	}

	panic(errors.Errorf("forwardlist: cannot hash element of type %T", v))
}

// floatBits maps -0 and +0 to the same bits, they compare equal.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
