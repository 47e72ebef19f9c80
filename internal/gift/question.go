package gift

import "strings"

// Question is a single GIFT question: an optional title, the question text and its
// answer clause.
type Question struct {
	Title   string
	Text    string
	Answers []Answer
}

// Render formats the question as "::title:: text {answers}".
func (q Question) Render() string {
	var sb strings.Builder
	if q.Title != "" {
		sb.WriteString("::" + q.Title + ":: ")
	}
	sb.WriteString(q.Text)
	sb.WriteString(" {")
	for i, answer := range q.Answers {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(answer.Render())
	}
	sb.WriteString("}")
	return sb.String()
}

func (q Question) String() string {
	return q.Render()
}
