package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
)

// mediaDescribeSystem steers the vision model toward chart values, figures,
// and screenshot text rather than scene description.
const mediaDescribeSystem = `You are a content analysis assistant that reads information out of images.
Describe the image content in detail, focusing on:
- Text (headlines, captions, annotations, figures)
- Chart data (values and trends in line charts, bar charts, pie charts, tables)
- Screenshots (key numbers in news captures, announcements, financial report pages)
- Any visible information related to economics, finance, or policy

Output a plain-text description with no prefix or formatting markers. Do not
open with filler such as "this image shows"; state the content directly.`

const mediaDescribePrompt = "Extract and describe all key information in this image."

const mediaDescribeMaxTokens = 600

// visionModel is the slice of the LLM gateway the describer uses.
type visionModel interface {
	CompleteVision(ctx context.Context, system, user, imageURL string, maxTokens int) (*llm.Result, error)
}

// MediaDescriber turns post images into text the claim extractor can
// analyze. Only photos and GIFs are described; video frames cannot be passed
// to the vision providers.
type MediaDescriber struct {
	model  visionModel
	cfg    *config.MediaConfig
	logger *slog.Logger
}

// NewMediaDescriber wires the describer to the vision model. cfg controls
// whether descriptions run at all and how many images one post may spend.
func NewMediaDescriber(model visionModel, cfg *config.MediaConfig) *MediaDescriber {
	return &MediaDescriber{
		model:  model,
		cfg:    cfg,
		logger: slog.Default().With("component", "media-describer"),
	}
}

// Describe produces one merged description for the images attached to a
// post, in attachment order. Returns the empty string when the post has no
// images, descriptions are disabled, or every model call failed; failures
// never propagate.
func (d *MediaDescriber) Describe(ctx context.Context, mediaJSON string) string {
	if mediaJSON == "" {
		return ""
	}
	if d.cfg != nil && !d.cfg.DescribeImages {
		return ""
	}

	var items []models.MediaItem
	if err := json.Unmarshal([]byte(mediaJSON), &items); err != nil {
		d.logger.Warn("Unreadable media payload, skipping descriptions", "error", err)
		return ""
	}

	var urls []string
	for _, item := range items {
		if item.Type == "photo" || item.Type == "gif" {
			urls = append(urls, item.URL)
		}
	}
	if len(urls) == 0 {
		return ""
	}
	if limit := d.maxItems(); len(urls) > limit {
		urls = urls[:limit]
	}

	var descriptions []string
	for i, imageURL := range urls {
		d.logger.Info("Describing image", "index", i+1, "total", len(urls))
		res, err := d.model.CompleteVision(ctx, mediaDescribeSystem, mediaDescribePrompt, imageURL, mediaDescribeMaxTokens)
		if err != nil || res == nil || strings.TrimSpace(res.Content) == "" {
			d.logger.Warn("Image description failed",
				"index", i+1,
				"url", truncateURL(imageURL),
				"error", err)
			continue
		}
		descriptions = append(descriptions, strings.TrimSpace(res.Content))
		d.logger.Debug("Image described",
			"index", i+1,
			"input_tokens", res.InputTokens,
			"output_tokens", res.OutputTokens)
	}

	if len(descriptions) == 0 {
		return ""
	}
	if len(descriptions) == 1 {
		return descriptions[0]
	}

	parts := make([]string, len(descriptions))
	for i, desc := range descriptions {
		parts[i] = fmt.Sprintf("[Image %d] %s", i+1, desc)
	}
	return strings.Join(parts, "\n\n")
}

func (d *MediaDescriber) maxItems() int {
	if d.cfg != nil && d.cfg.MaxItemsPerPost > 0 {
		return d.cfg.MaxItemsPerPost
	}
	return 4
}

func truncateURL(u string) string {
	if len(u) > 80 {
		return u[:80]
	}
	return u
}
