// internal/testutil/mail.go
package testutil

import (
	"sync"

	"github.com/dalemusser/rosterhub/internal/app/system/mailer"
)

// MailRecorder is a mailer.Sender that records messages instead of sending
// them. Set Err to force delivery failures.
type MailRecorder struct {
	mu       sync.Mutex
	Err      error
	Messages []mailer.Message
}

func (m *MailRecorder) Send(msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

// Last returns the most recent recorded message.
func (m *MailRecorder) Last() (mailer.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Messages) == 0 {
		return mailer.Message{}, false
	}
	return m.Messages[len(m.Messages)-1], true
}
