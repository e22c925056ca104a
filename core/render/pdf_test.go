package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/reportpipe/core"
)

func TestPDFRenderProducesPDFBytes(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFRenderEmptyReport(t *testing.T) {
	r := NewPDFRenderer()
	report := core.Report{Meta: core.ReportMeta{Source: "src", Count: 0}}

	data, err := r.Render(report)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExtension(t *testing.T) {
	require.Equal(t, ".pdf", NewPDFRenderer().Extension())
}
