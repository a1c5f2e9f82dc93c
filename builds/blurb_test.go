package builds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtractBlurb_WindowBetweenHeadings verifies only section-one paragraphs count
func TestExtractBlurb_WindowBetweenHeadings(t *testing.T) {
	doc := parse(t, `<div id="post-body-text">
		<p>This lead-in paragraph sits before the first heading and is skipped.</p>
		<h2>Introduction</h2>
		<p>This build turns the humble throwing weapon into a boss-deleting machine.</p>
		<p>short</p>
		<p>It comes online early and never falls off through the endgame.</p>
		<h2>Leveling</h2>
		<p>This paragraph is past the window and must not appear in the blurb.</p>
	</div>`)

	blurb := ExtractBlurb(doc)
	assert.Contains(t, blurb, "boss-deleting machine")
	assert.Contains(t, blurb, "never falls off")
	assert.NotContains(t, blurb, "lead-in paragraph")
	assert.NotContains(t, blurb, "short")
	assert.NotContains(t, blurb, "past the window")
}

// TestExtractBlurb_SkipsVideoFallbackNotice verifies embed noise is dropped
func TestExtractBlurb_SkipsVideoFallbackNotice(t *testing.T) {
	doc := parse(t, `<div id="post-body-text">
		<h2>Intro</h2>
		<p>Your browser doesn't support HTML5 video playback, sorry about that.</p>
		<p>The actual overview of the build goes right here in this sentence.</p>
		<h2>Next</h2>
	</div>`)

	blurb := ExtractBlurb(doc)
	assert.NotContains(t, blurb, "browser")
	assert.Contains(t, blurb, "actual overview")
}

// TestExtractBlurb_CapsAroundFiveHundredChars verifies collection stops
func TestExtractBlurb_CapsAroundFiveHundredChars(t *testing.T) {
	long := strings.Repeat("All work and no play makes a dull build guide. ", 10)
	doc := parse(t, `<div id="post-body-text">
		<h2>Intro</h2>
		<p>` + long + `</p>
		<p>` + long + `</p>
		<p>` + long + `</p>
		<h2>Next</h2>
	</div>`)

	blurb := ExtractBlurb(doc)
	assert.NotEmpty(t, blurb)
	assert.Less(t, len(blurb), 1000, "collection stops once the cap is passed")
}

// TestExtractBlurb_NoArticleBody verifies pages without the content div
func TestExtractBlurb_NoArticleBody(t *testing.T) {
	doc := parse(t, `<div><h2>Intro</h2><p>not the right container at all, long enough text</p></div>`)
	assert.Equal(t, "", ExtractBlurb(doc))
}
