package emoji

// Occurrence is one emoji found in a piece of text. Index and Length are byte
// offsets into the scanned string, so text[Index:Index+Length] == Emoji.
type Occurrence struct {
	Emoji  string `json:"emoji"`
	Index  int    `json:"index"`
	Length int    `json:"length"`
}

// ExtractEmojiWithPositions returns every emoji in text in order of
// appearance. Clustered sequences are reported as a single occurrence.
func ExtractEmojiWithPositions(text string) []Occurrence {
	var found []Occurrence
	eachCluster(text, func(cluster string, index int) {
		if !IsEmojiCluster(cluster) {
			return
		}
		found = append(found, Occurrence{
			Emoji:  cluster,
			Index:  index,
			Length: len(cluster),
		})
	})
	return found
}

// ExtractEmoji returns the emoji in text in order of appearance.
func ExtractEmoji(text string) []string {
	occurrences := ExtractEmojiWithPositions(text)
	if occurrences == nil {
		return nil
	}

	emojis := make([]string, len(occurrences))
	for i, o := range occurrences {
		emojis[i] = o.Emoji
	}
	return emojis
}

// CountEmoji returns the number of emoji in text.
func CountEmoji(text string) int {
	count := 0
	eachCluster(text, func(cluster string, _ int) {
		if IsEmojiCluster(cluster) {
			count++
		}
	})
	return count
}
