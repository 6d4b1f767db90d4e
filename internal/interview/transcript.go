package interview

// Message is a single conversation turn. Role is "user" for the candidate
// and "assistant" for the interviewer.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered conversation history for a session. It grows
// monotonically and is appended to from a single logical thread of control;
// the server treats it as request state owned by the caller.
type Transcript []Message

// Append returns the transcript with a new message added.
func (t Transcript) Append(role, content string) Transcript {
	return append(t, Message{Role: role, Content: content})
}

// LastN returns the most recent n messages (fewer when the transcript is
// shorter), preserving chronological order.
func (t Transcript) LastN(n int) Transcript {
	if n <= 0 || len(t) == 0 {
		return nil
	}
	if len(t) <= n {
		return t
	}
	return t[len(t)-n:]
}

// LastAnswer returns the content of the most recent candidate message.
func (t Transcript) LastAnswer() (string, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == "user" {
			return t[i].Content, true
		}
	}
	return "", false
}
