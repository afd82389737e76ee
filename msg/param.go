package msg

import (
	"encoding/binary"
	"math"
)

const (
	paramMaxNameLen  = 40
	paramMaxInts     = 8
	paramMaxFloats   = 8
	paramMaxStrings  = 8
	paramMaxStrLen   = 40
)

// RequestParamRequest asks the host for the value of a named parameter,
// mirroring rosserial_msgs/RequestParamRequest.
type RequestParamRequest struct {
	Name string
}

func (r *RequestParamRequest) Serialize(buf []byte) int {
	return putString(buf, r.Name)
}

func (r *RequestParamRequest) Deserialize(buf []byte) int {
	n, s := getString(buf)
	r.Name = s
	return n
}

func (r *RequestParamRequest) TypeName() string { return "rosserial_msgs/RequestParamRequest" }

func (r *RequestParamRequest) MaxSize() int { return 4 + paramMaxNameLen }

// RequestParamResponse carries back exactly one of ints, floats or strings
// depending on the parameter's type on the host, mirroring
// rosserial_msgs/RequestParamResponse. Each of the node's GetParamInt,
// GetParamFloat and GetParamString inspects only the slice of its own type.
type RequestParamResponse struct {
	Ints    []int32
	Floats  []float32
	Strings []string
}

func (r *RequestParamResponse) Serialize(buf []byte) int {
	off := putInt32Array(buf, r.Ints)
	off += putFloat32Array(buf[off:], r.Floats)
	off += putStringArray(buf[off:], r.Strings)
	return off
}

func (r *RequestParamResponse) Deserialize(buf []byte) int {
	n, ints := getInt32Array(buf)
	r.Ints = ints
	off := n
	n, floats := getFloat32Array(buf[off:])
	r.Floats = floats
	off += n
	n, strs := getStringArray(buf[off:])
	r.Strings = strs
	off += n
	return off
}

func (r *RequestParamResponse) TypeName() string { return "rosserial_msgs/RequestParamResponse" }

func (r *RequestParamResponse) MaxSize() int {
	return 4 + paramMaxInts*4 + 4 + paramMaxFloats*4 + 4 + paramMaxStrings*(4+paramMaxStrLen)
}

func putInt32Array(buf []byte, vs []int32) int {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(vs)))
	off := 4
	for _, v := range vs {
		binary.LittleEndian.PutUint32(buf[off:off+4], uint32(v))
		off += 4
	}
	return off
}

func getInt32Array(buf []byte) (consumed int, vs []int32) {
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	off := 4
	vs = make([]int32, n)
	for i := 0; i < n; i++ {
		vs[i] = int32(binary.LittleEndian.Uint32(buf[off : off+4]))
		off += 4
	}
	return off, vs
}

func putFloat32Array(buf []byte, vs []float32) int {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(vs)))
	off := 4
	for _, v := range vs {
		bits := math.Float32bits(v)
		binary.LittleEndian.PutUint32(buf[off:off+4], bits)
		off += 4
	}
	return off
}

func getFloat32Array(buf []byte) (consumed int, vs []float32) {
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	off := 4
	vs = make([]float32, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(buf[off : off+4])
		vs[i] = math.Float32frombits(bits)
		off += 4
	}
	return off, vs
}

func putStringArray(buf []byte, vs []string) int {
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(vs)))
	off := 4
	for _, v := range vs {
		off += putString(buf[off:], v)
	}
	return off
}

func getStringArray(buf []byte) (consumed int, vs []string) {
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	off := 4
	vs = make([]string, n)
	for i := 0; i < n; i++ {
		m, s := getString(buf[off:])
		vs[i] = s
		off += m
	}
	return off, vs
}
