package prompt

import "fmt"

// UnclosedCommentError reports a "//" with no matching closer. Pos is the
// byte offset of the opening slashes.
type UnclosedCommentError struct {
	Pos int
}

func (e *UnclosedCommentError) Error() string {
	return fmt.Sprintf("unclosed comment starting at position %d", e.Pos)
}

// CommentSpan locates one comment in the source. Start and End cover the
// whole "//...//" span; Content is the inner text.
type CommentSpan struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
}

// commentEnd returns the offset just past the closing "//" of the comment
// opened at i, or false when the comment never closes.
func commentEnd(input string, i int) (int, bool) {
	j := i + 2
	for j+1 < len(input) {
		if input[j] == '/' && input[j+1] == '/' {
			return j + 2, true
		}
		j++
	}
	return 0, false
}

// StripComments removes every "//...//" span from the input and returns the
// remaining text verbatim. Unlike Tokenize it is strict: an unterminated
// comment is an error, because silently dropping the tail of a prompt before
// generation would be destructive.
func StripComments(input string) (string, error) {
	var b []byte
	n := len(input)

	for i := 0; i < n; {
		if input[i] == '/' && i+1 < n && input[i+1] == '/' {
			end, ok := commentEnd(input, i)
			if !ok {
				return "", &UnclosedCommentError{Pos: i}
			}
			i = end
			continue
		}
		b = append(b, input[i])
		i++
	}

	return string(b), nil
}

// FindComments returns the spans of all closed comments, for editor
// highlighting. A trailing unterminated comment is simply not reported.
func FindComments(input string) []CommentSpan {
	var spans []CommentSpan
	n := len(input)

	for i := 0; i < n; {
		if input[i] == '/' && i+1 < n && input[i+1] == '/' {
			if end, ok := commentEnd(input, i); ok {
				spans = append(spans, CommentSpan{
					Start:   i,
					End:     end,
					Content: input[i+2 : end-2],
				})
				i = end
				continue
			}
		}
		i++
	}

	return spans
}
