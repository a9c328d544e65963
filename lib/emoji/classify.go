package emoji

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Clusters splits text into extended grapheme clusters. A base emoji keeps
// its variation selector, skin tone modifier, ZWJ continuations and tag
// characters; regional indicators pair up into flags and keycap sequences
// stay whole.
func Clusters(text string) []string {
	var clusters []string
	eachCluster(text, func(cluster string, _ int) {
		clusters = append(clusters, cluster)
	})
	return clusters
}

// eachCluster calls fn for every grapheme cluster of text along with the
// byte offset the cluster starts at.
func eachCluster(text string, fn func(cluster string, index int)) {
	index := 0
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.StepString(text, state)
		fn(cluster, index)
		index += len(cluster)
	}
}

// IsEmojiCluster reports whether a single grapheme cluster is an emoji.
// A lone regional indicator is not an emoji, nor is a pictograph followed by
// the text presentation selector.
func IsEmojiCluster(cluster string) bool {
	base, size := utf8.DecodeRuneInString(cluster)
	if base == utf8.RuneError && size <= 1 {
		return false
	}
	rest := cluster[size:]

	switch {
	case IsRegionalIndicator(base):
		next, n := utf8.DecodeRuneInString(rest)
		return IsRegionalIndicator(next) && n == len(rest)
	case isKeycapBase(base):
		return rest == string(keycap) || rest == string(vs16)+string(keycap)
	case isEmojiBase(base):
		return isEmojiTail(base, rest)
	}
	return false
}

// isEmojiTail checks the code points following an emoji base. Every one of
// them has to continue the emoji: presentation selector, skin tone, a ZWJ
// with a pictograph after it, or a tag sequence closed by CANCEL TAG.
func isEmojiTail(base rune, rest string) bool {
	prev := base
	inTags := false
	for i, r := range rest {
		switch {
		case r == utf8.RuneError:
			return false
		case r == vs15:
			return false
		case r == vs16:
			if prev == zwj || prev == vs16 {
				return false
			}
		case IsModifier(r):
			if prev == zwj {
				return false
			}
		case r == zwj:
			if prev == zwj || i+utf8.RuneLen(r) == len(rest) {
				return false
			}
		case isTag(r):
			inTags = true
		case r == cancelTag:
			if !inTags {
				return false
			}
			inTags = false
		case IsPictographic(r):
			if prev != zwj {
				return false
			}
		default:
			return false
		}
		prev = r
	}
	return !inTags
}

// IsEmoji reports whether text is exactly one emoji with nothing around it.
func IsEmoji(text string) bool {
	if text == "" {
		return false
	}
	cluster, rest, _, _ := uniseg.StepString(text, -1)
	return rest == "" && IsEmojiCluster(cluster)
}
