// internals/features/notifications/sender/sender.go
package sender

import "context"

// Sender mengirim push ke sekumpulan token dan melaporkan token yang sudah
// tidak berlaku (unregistered / invalid) supaya bisa dibersihkan dari DB.
type Sender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (invalidTokens []string, successCount int, err error)
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
