// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/notefix/internal/document"
	"github.com/pdiddy/notefix/internal/latex"
	"github.com/pdiddy/notefix/pkg/types"
)

// NormalizeResult counts the topics touched by NormalizeChapter.
type NormalizeResult struct {
	Changed   int
	Unchanged int
}

// NormalizeChapter rewrites every topic's content with n. A topic without a
// content key gets an empty string, matching the shape of the other topics.
// Non-string content is left as is.
func NormalizeChapter(ch *types.Chapter, n *latex.Normalizer, log zerolog.Logger) NormalizeResult {
	var res NormalizeResult
	for i := range ch.Topics {
		topic := &ch.Topics[i]
		if !topic.HasContent() {
			topic.Content = ""
			res.Changed++
			log.Debug().Str("id", topic.ID).Msg("added empty content")
			continue
		}

		before, ok := topic.ContentString()
		if !ok {
			res.Unchanged++
			continue
		}
		after := n.Normalize(before)
		if after == before {
			res.Unchanged++
			continue
		}
		topic.Content = after
		res.Changed++
		log.Debug().Str("id", topic.ID).Int("before_len", len(before)).Int("after_len", len(after)).Msg("normalized content")
	}
	return res
}

// NormalizeTransform returns a Transform that normalizes the content of
// every topic in a chapter document and re-encodes it with indent spaces.
func NormalizeTransform(n *latex.Normalizer, indent int, log zerolog.Logger) Transform {
	return func(data []byte) ([]byte, string, error) {
		ch, err := document.ParseChapter(data)
		if err != nil {
			return nil, "", err
		}
		res := NormalizeChapter(ch, n, log)
		if res.Changed == 0 {
			return data, "", nil
		}
		out, err := document.EncodeJSON(ch, indent)
		if err != nil {
			return nil, "", err
		}
		return out, fmt.Sprintf("%d of %d topics normalized", res.Changed, len(ch.Topics)), nil
	}
}
