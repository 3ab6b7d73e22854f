package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/llm"
)

type fakeVision struct {
	calls   []string
	results map[string]string
	err     error
}

func (f *fakeVision) CompleteVision(_ context.Context, _, _, imageURL string, _ int) (*llm.Result, error) {
	f.calls = append(f.calls, imageURL)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Result{Content: f.results[imageURL]}, nil
}

func enabledMediaConfig() *config.MediaConfig {
	return &config.MediaConfig{DescribeImages: true, MaxItemsPerPost: 4}
}

func TestDescribeMergesNumberedDescriptions(t *testing.T) {
	vision := &fakeVision{results: map[string]string{
		"https://pbs.example/cpi.png":   "CPI chart: headline 2.9% in July, core 3.2%.",
		"https://pbs.example/rates.png": "  Table of Fed funds futures pricing a March cut.  ",
	}}
	d := NewMediaDescriber(vision, enabledMediaConfig())

	out := d.Describe(context.Background(), `[
		{"type": "photo", "url": "https://pbs.example/cpi.png"},
		{"type": "video", "url": "https://video.example/clip.mp4"},
		{"type": "photo", "url": "https://pbs.example/rates.png"}
	]`)

	// The video attachment never reaches the vision model.
	require.Equal(t, []string{"https://pbs.example/cpi.png", "https://pbs.example/rates.png"}, vision.calls)
	assert.Equal(t,
		"[Image 1] CPI chart: headline 2.9% in July, core 3.2%.\n\n"+
			"[Image 2] Table of Fed funds futures pricing a March cut.",
		out)
}

func TestDescribeSingleImageIsUnlabeled(t *testing.T) {
	vision := &fakeVision{results: map[string]string{
		"https://pbs.example/one.gif": "Animated chart of the yield curve inverting.",
	}}
	d := NewMediaDescriber(vision, enabledMediaConfig())

	out := d.Describe(context.Background(), `[{"type": "gif", "url": "https://pbs.example/one.gif"}]`)

	assert.Equal(t, "Animated chart of the yield curve inverting.", out)
	assert.NotContains(t, out, "[Image")
}

func TestDescribeRespectsItemLimit(t *testing.T) {
	vision := &fakeVision{results: map[string]string{"https://a/1": "first"}}
	d := NewMediaDescriber(vision, &config.MediaConfig{DescribeImages: true, MaxItemsPerPost: 1})

	out := d.Describe(context.Background(), `[
		{"type": "photo", "url": "https://a/1"},
		{"type": "photo", "url": "https://a/2"}
	]`)

	assert.Equal(t, []string{"https://a/1"}, vision.calls)
	assert.Equal(t, "first", out)
}

func TestDescribeDisabled(t *testing.T) {
	vision := &fakeVision{}
	d := NewMediaDescriber(vision, &config.MediaConfig{DescribeImages: false})

	out := d.Describe(context.Background(), `[{"type": "photo", "url": "https://a/1"}]`)

	assert.Empty(t, out)
	assert.Empty(t, vision.calls)
}

func TestDescribeNothingToDescribe(t *testing.T) {
	d := NewMediaDescriber(&fakeVision{}, enabledMediaConfig())

	assert.Empty(t, d.Describe(context.Background(), ""))
	assert.Empty(t, d.Describe(context.Background(), "not json"))
	assert.Empty(t, d.Describe(context.Background(), `[{"type": "video", "url": "https://v/1"}]`))
}

func TestDescribeAllCallsFailed(t *testing.T) {
	vision := &fakeVision{err: errors.New("model unavailable")}
	d := NewMediaDescriber(vision, enabledMediaConfig())

	out := d.Describe(context.Background(), `[{"type": "photo", "url": "https://a/1"}]`)

	assert.Empty(t, out)
	assert.Len(t, vision.calls, 1)
}
