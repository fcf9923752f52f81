package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/hanoi/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPole_IsEmpty(t *testing.T) {
	p := domain.NewPole()
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.IsEmpty())

	_, ok := p.Top()
	assert.False(t, ok)

	var zero domain.Pole
	assert.True(t, zero.IsEmpty(), "zero value should be an empty pole")
}

func TestPole_Fill(t *testing.T) {
	for _, n := range []uint8{0, 1, 3, 8, 64, 255} {
		p := domain.NewPole()
		p.Fill(n)

		disks := p.Disks()
		require.Len(t, disks, int(n))
		for i, d := range disks {
			assert.Equal(t, domain.Disk(int(n)-i), d, "fill(%d) disk %d", n, i)
		}
	}
}

func TestPole_Fill_ReplacesContents(t *testing.T) {
	p := domain.NewPole()
	p.Fill(5)
	_, err := p.Pop()
	require.NoError(t, err)

	p.Fill(2)
	assert.Equal(t, []domain.Disk{2, 1}, p.Disks())

	p.Fill(0)
	assert.True(t, p.IsEmpty())
}

func TestPole_Push(t *testing.T) {
	tests := []struct {
		name    string
		fill    uint8
		push    domain.Disk
		wantErr *domain.PlacementError
	}{
		{name: "Empty pole accepts any disk", fill: 0, push: 200},
		{name: "Smaller disk on top", fill: 3, push: 0},
		{name: "Equal rank stacks", fill: 3, push: 1},
		{name: "Larger disk rejected", fill: 1, push: 2, wantErr: &domain.PlacementError{Large: 2, Small: 1}},
		{name: "Much larger disk rejected", fill: 4, push: 255, wantErr: &domain.PlacementError{Large: 255, Small: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPole()
			p.Fill(tt.fill)
			before := p.Disks()

			err := p.Push(tt.push)

			if tt.wantErr != nil {
				var pe *domain.PlacementError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, tt.wantErr, pe)
				assert.ErrorIs(t, err, domain.ErrInvalidPlacement)
				assert.Equal(t, before, p.Disks(), "failed push must not mutate the pole")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(before)+1, p.Len())
			top, ok := p.Top()
			require.True(t, ok)
			assert.Equal(t, tt.push, top)
			if len(before) > 0 {
				assert.Equal(t, before, p.Disks()[:len(before)])
			}
		})
	}
}

func TestPole_Push_ComparesAgainstTop(t *testing.T) {
	p := domain.NewPole()
	require.NoError(t, p.Push(5))
	require.NoError(t, p.Push(2))

	// 3 is smaller than the bottom disk but larger than the top one.
	err := p.Push(3)
	assert.Equal(t, &domain.PlacementError{Large: 3, Small: 2}, err)
}

func TestPole_Pop(t *testing.T) {
	p := domain.NewPole()
	p.Fill(4)

	d, err := p.Pop()
	require.NoError(t, err)
	assert.Equal(t, domain.Disk(1), d)
	assert.Equal(t, []domain.Disk{4, 3, 2}, p.Disks())
}

func TestPole_Pop_Empty(t *testing.T) {
	p := domain.NewPole()
	p.Fill(1)

	_, err := p.Pop()
	require.NoError(t, err)

	_, err = p.Pop()
	assert.ErrorIs(t, err, domain.ErrEmptyPole)
	assert.False(t, errors.Is(err, domain.ErrInvalidPlacement))
	assert.Equal(t, 0, p.Len())
}

func TestPole_PushPopRoundTrip(t *testing.T) {
	for _, n := range []uint8{0, 1, 5} {
		p := domain.NewPole()
		p.Fill(n)
		size := p.Len()
		top, hadTop := p.Top()

		require.NoError(t, p.Push(1))
		d, err := p.Pop()
		require.NoError(t, err)
		assert.Equal(t, domain.Disk(1), d)

		assert.Equal(t, size, p.Len())
		gotTop, gotOk := p.Top()
		assert.Equal(t, hadTop, gotOk)
		assert.Equal(t, top, gotTop)
	}
}

func TestPole_Scenario(t *testing.T) {
	p := domain.NewPole()
	p.Fill(3)
	assert.Equal(t, []domain.Disk{3, 2, 1}, p.Disks())

	err := p.Push(4)
	assert.Equal(t, &domain.PlacementError{Large: 4, Small: 1}, err)
	assert.EqualError(t, err, "cannot place disk 4 on disk 1")

	d, err := p.Pop()
	require.NoError(t, err)
	assert.Equal(t, domain.Disk(1), d)
	assert.Equal(t, []domain.Disk{3, 2}, p.Disks())

	d, err = p.Pop()
	require.NoError(t, err)
	assert.Equal(t, domain.Disk(2), d)
	assert.Equal(t, []domain.Disk{3}, p.Disks())

	require.NoError(t, p.Push(1))
	assert.Equal(t, []domain.Disk{3, 1}, p.Disks())
}

func TestPole_DisksIsACopy(t *testing.T) {
	p := domain.NewPole()
	p.Fill(3)

	disks := p.Disks()
	disks[2] = 9

	assert.Equal(t, []domain.Disk{3, 2, 1}, p.Disks())
}

func TestPole_Clone(t *testing.T) {
	p := domain.NewPole()
	p.Fill(3)

	c := p.Clone()
	_, err := c.Pop()
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, c.Len())
}

func TestPole_String(t *testing.T) {
	p := domain.NewPole()
	p.Fill(3)
	assert.Equal(t, "[3 2 1]", p.String())
	assert.Equal(t, "[]", domain.NewPole().String())
}

func TestErrors_Messages(t *testing.T) {
	assert.EqualError(t, domain.ErrEmptyPole, "cannot remove from empty pole")
	assert.EqualError(t, &domain.PlacementError{Large: 2, Small: 1}, "cannot place disk 2 on disk 1")
}
