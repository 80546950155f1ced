package mock

import (
	"context"

	"github.com/rdocs/cratedoc"
)

var _ cratedoc.Messenger = (*Messenger)(nil)

// Messenger is a mock implementation of cratedoc.Messenger.
type Messenger struct {
	SendFn func(ctx context.Context, chatID int64, msg *cratedoc.Message) (int, error)
	EditFn func(ctx context.Context, chatID int64, messageID int, msg *cratedoc.Message) error
}

func (m *Messenger) Send(ctx context.Context, chatID int64, msg *cratedoc.Message) (int, error) {
	return m.SendFn(ctx, chatID, msg)
}

func (m *Messenger) Edit(ctx context.Context, chatID int64, messageID int, msg *cratedoc.Message) error {
	return m.EditFn(ctx, chatID, messageID, msg)
}
