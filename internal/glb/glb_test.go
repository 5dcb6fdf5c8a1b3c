package glb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// quadMesh returns a two-triangle quad with per-vertex normals.
func quadMesh() *domain.Mesh {
	return &domain.Mesh{
		Vertices: []float32{
			0, 0, 0,
			1, 0, 0,
			1, 2, 0,
			0, 2, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// TestEncode_Header tests that the container preamble carries the glTF
// magic, version 2 and the exact byte length of the output.
func TestEncode_Header(t *testing.T) {
	var buf bytes.Buffer
	n, err := Encode(&buf, quadMesh())
	require.NoError(t, err)

	out := buf.Bytes()
	assert.Equal(t, int64(len(out)), n)
	assert.Equal(t, []byte("glTF"), out[0:4])
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(len(out)), binary.LittleEndian.Uint32(out[8:12]))
	assert.Zero(t, len(out)%4)
}

// TestEncode_ChunkLayout tests that the JSON chunk is space padded to a
// four byte boundary and the BIN chunk follows with the declared type.
func TestEncode_ChunkLayout(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, quadMesh())
	require.NoError(t, err)

	out := buf.Bytes()
	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	assert.Zero(t, jsonLen%4)
	assert.Equal(t, []byte("JSON"), out[16:20])

	jsonChunk := out[20 : 20+jsonLen]
	assert.Equal(t, byte(' '), jsonChunk[len(jsonChunk)-1])

	binStart := 20 + int(jsonLen)
	binLen := binary.LittleEndian.Uint32(out[binStart : binStart+4])
	assert.Equal(t, []byte("BIN\x00"), out[binStart+4:binStart+8])
	assert.Equal(t, len(out), binStart+8+int(binLen))
}

// TestEncode_BinaryChunk tests that positions, normals and indices are
// packed back to back as little-endian four byte values.
func TestEncode_BinaryChunk(t *testing.T) {
	mesh := quadMesh()

	var buf bytes.Buffer
	_, err := Encode(&buf, mesh)
	require.NoError(t, err)

	out := buf.Bytes()
	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	binStart := 20 + int(jsonLen) + 8
	chunk := out[binStart:]

	require.Len(t, chunk, (len(mesh.Vertices)+len(mesh.Normals)+len(mesh.Indices))*4)

	for i, want := range mesh.Vertices {
		got := math.Float32frombits(binary.LittleEndian.Uint32(chunk[i*4 : i*4+4]))
		assert.Equal(t, want, got)
	}
	normalsOff := len(mesh.Vertices) * 4
	for i, want := range mesh.Normals {
		got := math.Float32frombits(binary.LittleEndian.Uint32(chunk[normalsOff+i*4 : normalsOff+i*4+4]))
		assert.Equal(t, want, got)
	}
	indicesOff := normalsOff + len(mesh.Normals)*4
	for i, want := range mesh.Indices {
		got := binary.LittleEndian.Uint32(chunk[indicesOff+i*4 : indicesOff+i*4+4])
		assert.Equal(t, want, got)
	}
}

// TestEncode_RoundTrip tests that DecodeInfo recovers the counts and
// extents of an encoded mesh.
func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	n, err := Encode(&buf, quadMesh())
	require.NoError(t, err)

	info, err := DecodeInfo(&buf)
	require.NoError(t, err)

	assert.Equal(t, uint32(n), info.TotalLength)
	assert.Equal(t, uint32(2), info.Version)
	assert.Equal(t, "wingforge", info.Generator)
	assert.Equal(t, 4, info.VertexCount)
	assert.Equal(t, 2, info.TriangleCount)
	assert.True(t, info.HasNormals)
	assert.Equal(t, []float32{0, 0, 0}, info.PositionMin)
	assert.Equal(t, []float32{1, 2, 0}, info.PositionMax)
}

// TestEncode_WithoutNormals tests that a mesh with no normal buffer omits
// the NORMAL attribute entirely.
func TestEncode_WithoutNormals(t *testing.T) {
	mesh := quadMesh()
	mesh.Normals = nil

	var buf bytes.Buffer
	_, err := Encode(&buf, mesh)
	require.NoError(t, err)

	info, err := DecodeInfo(&buf)
	require.NoError(t, err)

	assert.False(t, info.HasNormals)
	assert.Equal(t, 4, info.VertexCount)
	assert.Equal(t, 2, info.TriangleCount)
}

// TestEncode_Deterministic tests that encoding the same mesh twice
// produces byte-identical output.
func TestEncode_Deterministic(t *testing.T) {
	var first, second bytes.Buffer

	_, err := Encode(&first, quadMesh())
	require.NoError(t, err)
	_, err = Encode(&second, quadMesh())
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

// TestEncode_Rejections tests that unencodable meshes fail as export
// errors before anything is written.
func TestEncode_Rejections(t *testing.T) {
	tests := []struct {
		name string
		mesh *domain.Mesh
	}{
		{
			name: "nil mesh",
			mesh: nil,
		},
		{
			name: "no vertices",
			mesh: &domain.Mesh{},
		},
		{
			name: "no triangles",
			mesh: &domain.Mesh{Vertices: []float32{0, 0, 0}},
		},
		{
			name: "normal length mismatch",
			mesh: &domain.Mesh{
				Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
				Normals:  []float32{0, 0, 1},
				Indices:  []uint32{0, 1, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Encode(&buf, tt.mesh)
			assert.ErrorIs(t, err, domain.ErrExport)
			assert.Zero(t, buf.Len())
		})
	}
}

// TestEncode_WriterFailure tests that write failures surface as export
// errors wrapping the underlying cause.
func TestEncode_WriterFailure(t *testing.T) {
	_, err := Encode(failWriter{}, quadMesh())

	assert.ErrorIs(t, err, domain.ErrExport)

	var exportErr *domain.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.EqualError(t, exportErr.Cause, "disk full")
}

// TestDecodeInfo_Malformed tests that corrupt containers are rejected as
// invalid input.
func TestDecodeInfo_Malformed(t *testing.T) {
	var valid bytes.Buffer
	_, err := Encode(&valid, quadMesh())
	require.NoError(t, err)
	encoded := valid.Bytes()

	wrongMagic := append([]byte(nil), encoded...)
	copy(wrongMagic[0:4], "STL\x00")

	wrongVersion := append([]byte(nil), encoded...)
	binary.LittleEndian.PutUint32(wrongVersion[4:8], 1)

	binFirst := append([]byte(nil), encoded...)
	copy(binFirst[16:20], "BIN\x00")

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty input", data: nil},
		{name: "truncated header", data: encoded[:8]},
		{name: "wrong magic", data: wrongMagic},
		{name: "unsupported version", data: wrongVersion},
		{name: "first chunk not JSON", data: binFirst},
		{name: "truncated JSON chunk", data: encoded[:40]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := DecodeInfo(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, info)
		})
	}
}
