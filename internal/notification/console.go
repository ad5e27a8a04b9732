package notification

import (
	"fmt"
	"io"
)

// ConsoleNotifier writes notifications to a writer, typically stdout
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier returns a new instance of ConsoleNotifier
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Send writes the notification to the configured writer
func (n *ConsoleNotifier) Send(recipient, subject, message string) error {
	_, err := fmt.Fprintf(
		n.out,
		"To: %s\nSubject: %s\n\n%s\n",
		recipient,
		subject,
		message,
	)

	return err
}
