package texture

// Atlas addresses cells in a square sprite sheet. The sheet is divided into
// rows x rows equal cells; a cell index counts left-to-right, top-to-bottom.
// The zero-value Atlas (rows 0) is invalid; use NewAtlas.
type Atlas struct {
	texture Texture
	rows    uint32
}

// NewAtlas wraps a texture as a sprite sheet with the given number of rows.
// A rows value of 1 treats the whole texture as a single cell. Zero rows are
// clamped to 1 so the UV remap never divides by zero.
//
// Parameters:
//   - tex: the sprite sheet texture
//   - rows: the number of rows (and columns) in the sheet
//
// Returns:
//   - *Atlas: the atlas
func NewAtlas(tex Texture, rows uint32) *Atlas {
	if rows == 0 {
		rows = 1
	}
	return &Atlas{texture: tex, rows: rows}
}

// Texture returns the underlying sprite sheet texture.
//
// Returns:
//   - Texture: the texture
func (a *Atlas) Texture() Texture {
	return a.texture
}

// Rows returns the number of rows in the sheet.
//
// Returns:
//   - uint32: the row count
func (a *Atlas) Rows() uint32 {
	return a.rows
}

// Cells returns the total number of cells in the sheet.
//
// Returns:
//   - uint32: rows squared
func (a *Atlas) Cells() uint32 {
	return a.rows * a.rows
}

// Block returns the cell coordinates for a cell index, counting left-to-right
// then top-to-bottom. Indices past the last cell wrap around, so animation
// loops can increment a frame counter without bounds checks.
//
// Parameters:
//   - cell: the cell index
//
// Returns:
//   - [2]float32: the (block_x, block_y) cell coordinates
func (a *Atlas) Block(cell uint32) [2]float32 {
	cell %= a.Cells()
	return [2]float32{
		float32(cell % a.rows),
		float32(cell / a.rows),
	}
}

// SheetVector packs a cell reference into the sprite-sheet vector a sprite
// draw call carries: cell coordinates in xy, the signed row count in z. A
// positive row count asks the fragment stage to sample the bound texture; a
// negative one renders the tint colour alone while still producing valid
// (unused) atlas UVs.
//
// Parameters:
//   - cell: the cell index
//   - textured: whether the fragment stage should sample the texture
//
// Returns:
//   - [4]float32: the sprite-sheet vector (block_x, block_y, signed rows, 0)
func (a *Atlas) SheetVector(cell uint32, textured bool) [4]float32 {
	block := a.Block(cell)
	rows := float32(a.rows)
	if !textured {
		rows = -rows
	}
	return [4]float32{block[0], block[1], rows, 0}
}
