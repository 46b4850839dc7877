package proj

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/coneproj/cones"
	"github.com/katalvlaran/coneproj/matrix"
)

// Product composition: a Cartesian product K₁ × ... × Kₘ projects blockwise,
// and its Jacobian is block-diagonal. values[i] pairs with sets[i]; the two
// slices must have equal length, and each values[i] must match sets[i].Dim()
// exactly (the per-cone operators enforce the latter).

// ProjectProduct projects each values[i] onto sets[i] and concatenates the
// results in order. The output length is the sum of the block lengths.
func ProjectProduct(values [][]float64, sets []cones.Set, opts *Options) ([]float64, error) {
	if len(values) != len(sets) {
		return nil, fmt.Errorf("proj: %d value blocks for %d sets: %w",
			len(values), len(sets), ErrDimensionMismatch)
	}

	var total int
	for _, v := range values {
		total += len(v)
	}
	out := make([]float64, 0, total)
	for i, s := range sets {
		p, err := Project(s, values[i], opts)
		if err != nil {
			return nil, fmt.Errorf("proj: block %d (%v): %w", i, s, err)
		}
		out = append(out, p...)
	}

	return out, nil
}

// GradientProduct evaluates the per-block Jacobians and assembles them into
// a BlockDiag. Off-block entries are structural zeros and are never stored.
func GradientProduct(values [][]float64, sets []cones.Set, opts *Options) (*BlockDiag, error) {
	if len(values) != len(sets) {
		return nil, fmt.Errorf("proj: %d value blocks for %d sets: %w",
			len(values), len(sets), ErrDimensionMismatch)
	}

	blocks := make([]*matrix.Dense, len(sets))
	offsets := make([]int, len(sets))
	var n int
	for i, s := range sets {
		j, err := Gradient(s, values[i], opts)
		if err != nil {
			return nil, fmt.Errorf("proj: block %d (%v): %w", i, s, err)
		}
		blocks[i] = j
		offsets[i] = n
		n += j.Rows()
	}

	return &BlockDiag{blocks: blocks, offsets: offsets, n: n}, nil
}

// BlockDiag is a square block-diagonal matrix holding only its diagonal
// blocks. It satisfies matrix.Matrix: reads outside every block return 0,
// writes outside every block fail with ErrOffBlockWrite.
type BlockDiag struct {
	blocks  []*matrix.Dense
	offsets []int
	n       int
}

// NumBlocks returns the number of diagonal blocks.
func (m *BlockDiag) NumBlocks() int { return len(m.blocks) }

// Block returns the i-th diagonal block and its row/column offset. The
// returned matrix is the live block, not a copy.
func (m *BlockDiag) Block(i int) (*matrix.Dense, int, error) {
	if i < 0 || i >= len(m.blocks) {
		return nil, 0, matrix.ErrOutOfRange
	}

	return m.blocks[i], m.offsets[i], nil
}

// Rows returns the total order of the matrix.
func (m *BlockDiag) Rows() int { return m.n }

// Cols returns the total order of the matrix.
func (m *BlockDiag) Cols() int { return m.n }

// locate maps a global index to the block containing it. ok is false when
// the index falls between blocks' spans (impossible for square diagonal
// blocks covering [0, n), kept for safety) or out of [0, n).
func (m *BlockDiag) locate(idx int) (blk, local int, ok bool) {
	if idx < 0 || idx >= m.n {
		return 0, 0, false
	}
	// Binary search over offsets.
	lo, hi := 0, len(m.offsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.offsets[mid] <= idx {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	local = idx - m.offsets[lo]
	if local >= m.blocks[lo].Rows() {
		return 0, 0, false
	}

	return lo, local, true
}

// At returns the entry at (row, col); off-block positions are structural
// zeros.
func (m *BlockDiag) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrix.ErrOutOfRange
	}
	rb, ri, ok := m.locate(row)
	if !ok {
		return 0, nil
	}
	cb, ci, ok := m.locate(col)
	if !ok || rb != cb {
		return 0, nil
	}

	return m.blocks[rb].At(ri, ci)
}

// Set writes the entry at (row, col). Positions outside every diagonal
// block hold structural zeros and reject writes with ErrOffBlockWrite.
func (m *BlockDiag) Set(row, col int, v float64) error {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return matrix.ErrOutOfRange
	}
	rb, ri, rok := m.locate(row)
	cb, ci, cok := m.locate(col)
	if !rok || !cok || rb != cb {
		return ErrOffBlockWrite
	}

	return m.blocks[rb].Set(ri, ci, v)
}

// Clone deep-copies the block structure.
func (m *BlockDiag) Clone() matrix.Matrix {
	blocks := make([]*matrix.Dense, len(m.blocks))
	for i, b := range m.blocks {
		blocks[i] = b.Clone().(*matrix.Dense)
	}
	offsets := make([]int, len(m.offsets))
	copy(offsets, m.offsets)

	return &BlockDiag{blocks: blocks, offsets: offsets, n: m.n}
}

// Dense materializes the full n×n matrix, zeros included.
func (m *BlockDiag) Dense() (*matrix.Dense, error) {
	out, err := matrix.NewDense(m.n, m.n)
	if err != nil {
		return nil, err
	}
	for bi, b := range m.blocks {
		off := m.offsets[bi]
		for i := 0; i < b.Rows(); i++ {
			row, err := b.Row(i)
			if err != nil {
				return nil, err
			}
			for j, val := range row {
				if err = out.Set(off+i, off+j, val); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// String renders the block layout, not the entries.
func (m *BlockDiag) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "BlockDiag(%d×%d:", m.n, m.n)
	for _, b := range m.blocks {
		fmt.Fprintf(&sb, " %d", b.Rows())
	}
	sb.WriteString(")")

	return sb.String()
}
