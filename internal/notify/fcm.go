package notify

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// FCMNotifier kirim notifikasi lewat Firebase Cloud Messaging.
// Field contact diperlakukan sebagai device token.
type FCMNotifier struct {
	client *messaging.Client
}

// NewFCM baca file service account dari env FCM_CREDENTIALS_FILE.
// Kalau env kosong, balikin NopNotifier biar server tetap bisa jalan lokal.
func NewFCM() Notifier {
	credFile := os.Getenv("FCM_CREDENTIALS_FILE")
	if credFile == "" {
		log.Println("FCM_CREDENTIALS_FILE kosong, notifikasi dimatikan")
		return NopNotifier{}
	}

	opt := option.WithCredentialsFile(credFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatalf("Error initializing firebase app: %v", err)
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Fatalf("Error getting messaging client: %v", err)
	}

	log.Println("Firebase Cloud Messaging ready")
	return &FCMNotifier{client: client}
}

func (n *FCMNotifier) Send(contact, title, body string) error {
	message := &messaging.Message{
		Token: contact,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	}

	_, err := n.client.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error sending message: %s", err)
		return err
	}
	return nil
}
