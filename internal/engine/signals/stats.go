package signals

import (
	"strings"
	"unicode/utf8"
)

// Stats measures text. Sentences counts runs of terminators; a non-blank text
// without any terminator is one sentence.
func Stats(text string) TextStats {
	if strings.TrimSpace(text) == "" {
		return TextStats{}
	}
	st := TextStats{
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
		Lines:      strings.Count(strings.TrimRight(text, "\n"), "\n") + 1,
	}
	inRun := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inRun {
				st.Sentences++
			}
			inRun = true
		default:
			inRun = false
		}
	}
	if st.Sentences == 0 {
		st.Sentences = 1
	}
	return st
}
