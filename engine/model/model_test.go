package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpriteVertexContract(t *testing.T) {
	v := &GPUSpriteVertex{Position: [2]float32{0.5, -0.5}, UV: [2]float32{1, 0}}
	require.Equal(t, 16, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 16)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3f}, buf[0:4])  // 0.5
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[8:12]) // uv.x = 1.0

	layout := SpriteVertexLayout()
	assert.Equal(t, uint64(16), layout.ArrayStride)
	require.Len(t, layout.Attributes, 2)
	assert.Equal(t, uint64(8), layout.Attributes[1].Offset)
}

func TestMeshVertexContract(t *testing.T) {
	v := &GPUMeshVertex{
		Position: [3]float32{1, 2, 3},
		UV:       [2]float32{0, 1},
		Normal:   [3]float32{0, 1, 0},
		Colour:   [4]float32{1, 1, 1, 1},
	}
	require.Equal(t, 48, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 48)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[24:28]) // normal.y = 1.0

	layout := MeshVertexLayout()
	assert.Equal(t, uint64(48), layout.ArrayStride)
	require.Len(t, layout.Attributes, 4)
	assert.Equal(t, uint64(20), layout.Attributes[2].Offset)
	assert.Equal(t, uint64(32), layout.Attributes[3].Offset)
}

func TestQuadGeometry(t *testing.T) {
	verts := QuadVertices()
	idx := QuadIndices()
	require.Len(t, verts, 4)
	require.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, idx)

	// every index addresses a vertex
	for _, i := range idx {
		assert.Less(t, int(i), len(verts))
	}
}
