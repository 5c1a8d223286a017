// Package testutil provides fakes for external collaborators.
package testutil

import (
	"context"
	"fmt"
	"sync"
)

// FakeImageStore records uploads and hands back deterministic URLs.
type FakeImageStore struct {
	mu      sync.Mutex
	Uploads []string
	Err     error
}

func (f *FakeImageStore) Upload(_ context.Context, filename, _ string, _ []byte) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Uploads = append(f.Uploads, filename)
	return fmt.Sprintf("https://images.example.com/%d-%s", len(f.Uploads), filename), nil
}

// FakeMailer records sent messages instead of dialing a relay.
type FakeMailer struct {
	mu       sync.Mutex
	Messages []FakeMessage
	Err      error
}

// FakeMessage is one recorded delivery.
type FakeMessage struct {
	To      string
	Subject string
	Body    string
}

func (f *FakeMailer) Send(to, subject, htmlBody string) error {
	if f.Err != nil {
		return f.Err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Messages = append(f.Messages, FakeMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}
