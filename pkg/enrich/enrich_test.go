package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleOrdersContextAroundMain(t *testing.T) {
	pieces := []Piece{
		{Role: RoleThreadNext, Author: "econ_watch", Content: "Follow-up: the spread widened again today."},
		{Role: RoleQuoted, Author: "fed_insider", Content: "The committee signaled a pause."},
		{Role: RoleParentReply, Author: "macro_skeptic", Content: "What makes you so sure?"},
	}

	text := assemble("I disagree, a cut is coming in March.", pieces)

	assert.Contains(t, text, "[Quoted post]\nAuthor: fed_insider\nContent: The committee signaled a pause.")
	assert.Contains(t, text, "[Reply target]\nAuthor: macro_skeptic\nContent: What makes you so sure?")
	assert.Contains(t, text, "[Main content]\nI disagree, a cut is coming in March.")
	assert.Contains(t, text, "[Later in thread]\nFollow-up: the spread widened again today.")

	// Continuations come after the main content even when fetched first.
	quoted := strings.Index(text, "[Quoted post]")
	main := strings.Index(text, "[Main content]")
	next := strings.Index(text, "[Later in thread]")
	assert.Less(t, quoted, main)
	assert.Less(t, main, next)
}

func TestAssembleThreadPrevKeepsAuthorLine(t *testing.T) {
	pieces := []Piece{
		{Role: RoleThreadPrev, Author: "dalio_fan", Content: "Part 1: debt cycles repeat."},
	}

	text := assemble("Part 2: we are late in the cycle.", pieces)

	require.True(t, strings.HasPrefix(text, "[Earlier in thread]\nAuthor: dalio_fan\nContent: Part 1: debt cycles repeat."))
	assert.Contains(t, text, "\n\n[Main content]\nPart 2: we are late in the cycle.")
	assert.NotContains(t, text, "[Later in thread]")
}

func TestAssembleDropsUnknownRoles(t *testing.T) {
	pieces := []Piece{
		{Role: "editor_note", Author: "staff", Content: "internal"},
		{Role: RoleQuoted, Author: "a", Content: "b"},
	}

	text := assemble("main", pieces)

	assert.NotContains(t, text, "internal")
	assert.Contains(t, text, "[Quoted post]")
}
