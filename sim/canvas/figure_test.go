package canvas

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func threePanelFigure(t *testing.T) *Figure {
	t.Helper()
	f := NewFigure()
	first, err := f.Subplot(1, 3, 1, nil)
	require.NoError(t, err)
	require.NoError(t, first.Plot([]float64{0, 1}, []float64{0, 1}, Style{Marker: MarkerCircle}))
	first.Text(0.05, 0.95, "x1=0", TextStyle{Color: color.Black})
	for i := 2; i <= 3; i++ {
		ax, err := f.Subplot(1, 3, i, first)
		require.NoError(t, err)
		require.NoError(t, ax.Plot([]float64{0.5, 2}, []float64{-1, 0.5}, Style{Line: true, Color: color.Black}))
	}
	f.CurrentAxes().SetXLabel("redshift")
	return f
}

func TestFigure_Subplot_GeometryFixedByFirstCall(t *testing.T) {
	f := NewFigure()
	_, err := f.Subplot(2, 3, 6, nil)
	require.NoError(t, err)

	_, err = f.Subplot(3, 3, 1, nil)
	assert.ErrorIs(t, err, ErrBadSubplot)
}

func TestFigure_Subplot_IndexOutOfRange(t *testing.T) {
	f := NewFigure()
	for _, idx := range []int{0, 7, -1} {
		_, err := f.Subplot(2, 3, idx, nil)
		assert.ErrorIs(t, err, ErrBadSubplot, "index %d", idx)
	}
}

func TestFigure_Subplot_ForeignShare(t *testing.T) {
	other := NewFigure()
	ax, err := other.Subplot(1, 1, 1, nil)
	require.NoError(t, err)

	_, err = NewFigure().Subplot(1, 1, 1, ax)
	assert.ErrorIs(t, err, ErrForeignAxes)
}

func TestFigure_Subplot_SameIndexReturnsSamePanel(t *testing.T) {
	f := NewFigure()
	a, err := f.Subplot(1, 2, 1, nil)
	require.NoError(t, err)
	b, err := f.Subplot(1, 2, 1, nil)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Same(t, b, f.CurrentAxes())
}

func TestFigure_CurrentAxes_CreatesSinglePanel(t *testing.T) {
	f := NewFigure()
	ax := f.CurrentAxes()
	require.NotNil(t, ax)
	assert.Same(t, ax, f.CurrentAxes())
	assert.Equal(t, 1, f.rows)
	assert.Equal(t, 1, f.cols)
}

func TestPanel_Plot_LengthMismatch(t *testing.T) {
	ax := NewFigure().CurrentAxes()
	assert.Error(t, ax.Plot([]float64{1, 2}, []float64{1}, Style{Marker: MarkerCircle}))
}

func TestFigure_ShareLimits_Union(t *testing.T) {
	// GIVEN panels 2 and 3 sharing panel 1 with different data extents
	f := threePanelFigure(t)

	// WHEN limits are shared
	f.shareLimits()

	// THEN every panel spans the union of the group
	for i := 1; i <= 3; i++ {
		p := f.panels[i].plot
		assert.Equal(t, 0.0, p.X.Min, "panel %d", i)
		assert.Equal(t, 2.0, p.X.Max, "panel %d", i)
		assert.Equal(t, -1.0, p.Y.Min, "panel %d", i)
		assert.Equal(t, 1.0, p.Y.Max, "panel %d", i)
	}
}

func TestFigure_WriteTo_Formats(t *testing.T) {
	signatures := map[string][]byte{
		"png": []byte("\x89PNG\r\n\x1a\n"),
		"svg": []byte("<svg"),
		"pdf": []byte("%PDF"),
	}
	for format, sig := range signatures {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := threePanelFigure(t).WriteTo(&buf, 6*vg.Inch, 2*vg.Inch, format)
			require.NoError(t, err)
			head := buf.Bytes()[:min(buf.Len(), 256)]
			assert.True(t, bytes.Contains(head, sig), "missing %s signature", format)
		})
	}
}

func TestFigure_WriteTo_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewFigure().WriteTo(&buf, vg.Inch, vg.Inch, "gif")
	assert.Error(t, err)
}

func TestFigure_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridz.png")

	require.NoError(t, threePanelFigure(t).Save(path, 6*vg.Inch, 2*vg.Inch))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestFigure_Save_UnsupportedExtensionCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridz.gif")

	assert.Error(t, threePanelFigure(t).Save(path, vg.Inch, vg.Inch))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUnlabeledTicks_KeepsPositions(t *testing.T) {
	ticks := unlabeledTicks{}.Ticks(0, 10)
	require.NotEmpty(t, ticks)
	for _, tk := range ticks {
		assert.Empty(t, tk.Label)
	}
}
