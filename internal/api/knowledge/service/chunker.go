package knowledgeService

import "strings"

const (
	chunkSize    = 1000
	chunkOverlap = 200
)

// separators are tried from coarsest to finest; a chunk is split on the
// first separator that keeps its pieces under the size limit.
var separators = []string{"\n\n", "\n", " ", ""}

// splitText breaks a document into chunks of at most chunkSize
// characters, with adjacent chunks sharing chunkOverlap characters of
// context.
func splitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= chunkSize {
		return []string{text}
	}

	return splitRecursive(text, 0)
}

func splitRecursive(text string, sepIdx int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}
	if sepIdx >= len(separators)-1 {
		return splitBySize(text)
	}

	sep := separators[sepIdx]
	parts := strings.Split(text, sep)

	var chunks []string
	var current string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if len(part) > chunkSize {
			if current != "" {
				chunks = append(chunks, current)
				current = overlapTail(current)
			}
			sub := splitRecursive(part, sepIdx+1)
			if len(sub) > 0 {
				chunks = append(chunks, sub[:len(sub)-1]...)
				current = joinWithOverlap(current, sub[len(sub)-1], sep)
			}
			continue
		}

		candidate := part
		if current != "" {
			candidate = current + sep + part
		}
		if len(candidate) > chunkSize {
			chunks = append(chunks, current)
			current = joinWithOverlap(overlapTail(current), part, sep)
		} else {
			current = candidate
		}
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// splitBySize is the last resort for text with no usable separators.
func splitBySize(text string) []string {
	var chunks []string
	step := chunkSize - chunkOverlap
	for start := 0; start < len(text); start += step {
		end := start + chunkSize
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}
		chunks = append(chunks, text[start:end])
	}
	return chunks
}

func overlapTail(chunk string) string {
	if len(chunk) <= chunkOverlap {
		return chunk
	}
	return chunk[len(chunk)-chunkOverlap:]
}

func joinWithOverlap(tail, part, sep string) string {
	if tail == "" {
		return part
	}
	joined := tail + sep + part
	if len(joined) > chunkSize {
		return part
	}
	return joined
}
