package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"math"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// Container constants from the binary glTF 2.0 specification.
const (
	headerMagic   = 0x46546C67 // "glTF"
	headerVersion = 2

	chunkTypeJSON = 0x4E4F534A // "JSON"
	chunkTypeBIN  = 0x004E4942 // "BIN\x00"

	componentTypeFloat  = 5126
	componentTypeUint32 = 5125

	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)

// generatorName identifies the producer in the asset header.
const generatorName = "wingforge"

type document struct {
	Asset       asset        `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []scene      `json:"scenes"`
	Nodes       []node       `json:"nodes"`
	Meshes      []meshDef    `json:"meshes"`
	Accessors   []accessor   `json:"accessors"`
	BufferViews []bufferView `json:"bufferViews"`
	Buffers     []buffer     `json:"buffers"`
}

type asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type scene struct {
	Nodes []int `json:"nodes"`
}

type node struct {
	Name string `json:"name,omitempty"`
	Mesh int    `json:"mesh"`
}

type meshDef struct {
	Primitives []primitive `json:"primitives"`
}

type primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
}

type accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type bufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type buffer struct {
	ByteLength int `json:"byteLength"`
}

// Encode writes the mesh as a binary glTF container and returns the number
// of bytes written. Failures are reported as domain export errors.
func Encode(w io.Writer, mesh *domain.Mesh) (int64, error) {
	if mesh == nil || mesh.VertexCount() == 0 || mesh.IsEmpty() {
		return 0, &domain.ExportError{Cause: errors.New("empty mesh")}
	}
	if len(mesh.Normals) != 0 && len(mesh.Normals) != len(mesh.Vertices) {
		return 0, &domain.ExportError{Cause: errors.New("normal buffer length mismatch")}
	}

	binChunk := packBinaryChunk(mesh)
	jsonChunk, err := packJSONChunk(mesh, len(binChunk))
	if err != nil {
		return 0, &domain.ExportError{Cause: err}
	}

	total := 12 + 8 + len(jsonChunk) + 8 + len(binChunk)

	var out bytes.Buffer
	out.Grow(total)

	writeUint32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		out.Write(b[:])
	}

	writeUint32(headerMagic)
	writeUint32(headerVersion)
	writeUint32(uint32(total))

	writeUint32(uint32(len(jsonChunk)))
	writeUint32(chunkTypeJSON)
	out.Write(jsonChunk)

	writeUint32(uint32(len(binChunk)))
	writeUint32(chunkTypeBIN)
	out.Write(binChunk)

	n, err := w.Write(out.Bytes())
	if err != nil {
		return int64(n), &domain.ExportError{Cause: err}
	}
	return int64(n), nil
}

// packBinaryChunk lays out positions, normals and indices back to back.
// Every element is four bytes wide, so sections stay four byte aligned.
func packBinaryChunk(mesh *domain.Mesh) []byte {
	size := (len(mesh.Vertices) + len(mesh.Normals) + len(mesh.Indices)) * 4
	chunk := make([]byte, 0, size)

	var b [4]byte
	for _, v := range mesh.Vertices {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		chunk = append(chunk, b[:]...)
	}
	for _, v := range mesh.Normals {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		chunk = append(chunk, b[:]...)
	}
	for _, v := range mesh.Indices {
		binary.LittleEndian.PutUint32(b[:], v)
		chunk = append(chunk, b[:]...)
	}
	return chunk
}

// packJSONChunk marshals the scene document and pads it with spaces to a
// four byte boundary.
func packJSONChunk(mesh *domain.Mesh, binLength int) ([]byte, error) {
	posBytes := len(mesh.Vertices) * 4
	normBytes := len(mesh.Normals) * 4

	minPos, maxPos := positionBounds(mesh)

	views := []bufferView{
		{Buffer: 0, ByteOffset: 0, ByteLength: posBytes, Target: targetArrayBuffer},
	}
	accessors := []accessor{
		{
			BufferView:    0,
			ComponentType: componentTypeFloat,
			Count:         mesh.VertexCount(),
			Type:          "VEC3",
			Min:           minPos,
			Max:           maxPos,
		},
	}
	attributes := map[string]int{"POSITION": 0}

	next := 1
	if normBytes > 0 {
		views = append(views, bufferView{
			Buffer: 0, ByteOffset: posBytes, ByteLength: normBytes, Target: targetArrayBuffer,
		})
		accessors = append(accessors, accessor{
			BufferView:    next,
			ComponentType: componentTypeFloat,
			Count:         mesh.VertexCount(),
			Type:          "VEC3",
		})
		attributes["NORMAL"] = next
		next++
	}

	views = append(views, bufferView{
		Buffer:     0,
		ByteOffset: posBytes + normBytes,
		ByteLength: len(mesh.Indices) * 4,
		Target:     targetElementArrayBuffer,
	})
	accessors = append(accessors, accessor{
		BufferView:    next,
		ComponentType: componentTypeUint32,
		Count:         len(mesh.Indices),
		Type:          "SCALAR",
	})
	indexAccessor := next

	doc := document{
		Asset:  asset{Version: "2.0", Generator: generatorName},
		Scene:  0,
		Scenes: []scene{{Nodes: []int{0}}},
		Nodes:  []node{{Name: "wing", Mesh: 0}},
		Meshes: []meshDef{{
			Primitives: []primitive{{
				Attributes: attributes,
				Indices:    &indexAccessor,
			}},
		}},
		Accessors:   accessors,
		BufferViews: views,
		Buffers:     []buffer{{ByteLength: binLength}},
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	for len(payload)%4 != 0 {
		payload = append(payload, ' ')
	}
	return payload, nil
}

// positionBounds computes per-axis extents for the POSITION accessor.
func positionBounds(mesh *domain.Mesh) ([]float32, []float32) {
	minPos := []float32{mesh.Vertices[0], mesh.Vertices[1], mesh.Vertices[2]}
	maxPos := []float32{mesh.Vertices[0], mesh.Vertices[1], mesh.Vertices[2]}

	for i := 0; i < len(mesh.Vertices); i += 3 {
		for k := 0; k < 3; k++ {
			v := mesh.Vertices[i+k]
			if v < minPos[k] {
				minPos[k] = v
			}
			if v > maxPos[k] {
				maxPos[k] = v
			}
		}
	}
	return minPos, maxPos
}
