// Package bot implements the conversational flows: symbol lookup with a
// fresh reply, in-place section drill-down on button presses, and crate
// metadata summaries.
package bot

import (
	"context"
	"log/slog"

	"github.com/rdocs/cratedoc"
)

// Service drives the conversation. It resolves symbol paths, renders the
// results through the messenger, and records sessions so button presses
// on old replies can still navigate their document.
type Service struct {
	Resolver  cratedoc.Resolver
	Registry  cratedoc.RegistryService
	Sessions  cratedoc.SessionStore
	Messenger cratedoc.Messenger
	Logger    *slog.Logger
}

// Lookup resolves a symbol path and sends the rendered document as a new
// message. The session is recorded only after the send succeeds, keyed
// by the message id the transport assigned. A path that resolves to
// nothing gets a polite miss reply instead of an error.
func (s *Service) Lookup(ctx context.Context, chatID int64, path string) error {
	doc, err := s.Resolver.Resolve(ctx, path)
	if err != nil {
		switch cratedoc.ErrorCode(err) {
		case cratedoc.ENOTFOUND, cratedoc.EINVALID:
			miss := &cratedoc.Message{Text: "Could not find <code>" + cratedoc.EscapeEntities(path) + "</code>"}
			_, err := s.Messenger.Send(ctx, chatID, miss)
			return err
		default:
			s.logger().Error("lookup failed", "path", path, "err", err)
			return err
		}
	}

	messageID, err := s.Messenger.Send(ctx, chatID, cratedoc.RenderDocument(doc))
	if err != nil {
		return err
	}

	key := cratedoc.SessionKey{ChatID: chatID, MessageID: messageID}
	entry := cratedoc.SessionEntry{Document: doc, Kind: cratedoc.NavigationDocs}
	if err := s.Sessions.Put(ctx, key, entry); err != nil {
		// The reply is already out; losing the session only disables
		// drill-down on it.
		s.logger().Error("session store failed", "chat_id", chatID, "message_id", messageID, "err", err)
	}
	return nil
}

// Follow handles a button press on a previously sent reply, editing it
// in place to show the selected section. Presses that cannot be honored
// are ignored silently: an unknown or expired session, a foreign
// navigation kind, or a selector the document cannot resolve.
func (s *Service) Follow(ctx context.Context, chatID int64, messageID int, selector string) error {
	key := cratedoc.SessionKey{ChatID: chatID, MessageID: messageID}
	entry, err := s.Sessions.Get(ctx, key)
	if err != nil {
		if cratedoc.ErrorCode(err) == cratedoc.ENOTFOUND {
			return nil
		}
		return err
	}
	if entry.Kind != cratedoc.NavigationDocs || entry.Document == nil {
		return nil
	}

	heading, body, ok := entry.Document.Slice(selector)
	if !ok {
		s.logger().Warn("unresolvable section selector", "selector", selector, "path", entry.Document.Path)
		return nil
	}

	return s.Messenger.Edit(ctx, chatID, messageID, cratedoc.RenderSection(entry.Document, heading, body))
}

// Crate looks up registry metadata for a crate and sends the summary.
// An unknown crate gets a miss reply instead of an error.
func (s *Service) Crate(ctx context.Context, chatID int64, name string) error {
	info, err := s.Registry.CrateInfo(ctx, name)
	if err != nil {
		if cratedoc.ErrorCode(err) == cratedoc.ENOTFOUND {
			miss := &cratedoc.Message{Text: "Could not find crate <code>" + cratedoc.EscapeEntities(name) + "</code>"}
			_, err := s.Messenger.Send(ctx, chatID, miss)
			return err
		}
		s.logger().Error("crate lookup failed", "crate", name, "err", err)
		return err
	}

	_, err = s.Messenger.Send(ctx, chatID, cratedoc.RenderCrateInfo(info))
	return err
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
