// internals/features/notifications/sender/firebase_sender.go
package sender

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FirebaseSender: implementasi Sender di atas FCM. Dibuat SEKALI di startup
// dan di-inject ke service, tidak ada lazy init tersebar.
type FirebaseSender struct {
	client *messaging.Client
}

func NewFirebaseSenderFromCredentials(ctx context.Context, credentialsFile string) (*FirebaseSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Messaging: %w", err)
	}
	return &FirebaseSender{client: client}, nil
}

func (s *FirebaseSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, int, error) {
	if len(tokens) == 0 {
		return nil, 0, nil
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := s.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return nil, 0, err
	}

	var invalid []string
	for i, r := range resp.Responses {
		if r.Success {
			continue
		}
		if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
			invalid = append(invalid, tokens[i])
			continue
		}
		log.Printf("[WARN] push gagal ke token ke-%d: %v", i, r.Error)
	}
	return invalid, resp.SuccessCount, nil
}

func (s *FirebaseSender) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	_, err := s.client.Send(ctx, msg)
	return err
}
