package cratedoc

import (
	"context"
	"fmt"
	"strings"
)

// Message is a formatted reply: HTML text plus an optional button layout.
type Message struct {
	Text    string
	Buttons [][]Button
}

// Button is one inline button. Data buttons trigger follow-up
// interactions; URL buttons open a link. Exactly one of the two is set.
type Button struct {
	Label string
	Data  string
	URL   string
}

// Messenger is the conversation transport collaborator. It can send a
// new message and edit a previously sent one in place. The returned
// message ID is the opaque identity used as the session key.
type Messenger interface {
	Send(ctx context.Context, chatID int64, msg *Message) (messageID int, err error)
	Edit(ctx context.Context, chatID int64, messageID int, msg *Message) error
}

// RenderDocument formats a document for its initial reply: the header
// block followed by the leading description, with one button per
// navigable section.
func RenderDocument(doc *Document) *Message {
	var sb strings.Builder
	writeHeader(&sb, doc)
	sb.WriteString("\n\n")
	sb.WriteString(doc.Description)

	refs := doc.SectionRefs()
	buttons := make([][]Button, 0, len(refs))
	for _, ref := range refs {
		buttons = append(buttons, []Button{{Label: ref.Label, Data: ref.Selector}})
	}

	return &Message{Text: sb.String(), Buttons: buttons}
}

// RenderSection formats the in-place update for one drilled-down
// section: the same header block, then the section heading and body.
// The button layout is unchanged so the user can keep navigating.
func RenderSection(doc *Document, heading string, body Body) *Message {
	var sb strings.Builder
	writeHeader(&sb, doc)
	sb.WriteString("\n\n<b>")
	sb.WriteString(EscapeEntities(heading))
	sb.WriteString("</b>\n")
	switch b := body.(type) {
	case Prose:
		sb.WriteString(string(b))
		sb.WriteByte('\n')
	case Items:
		for _, item := range b {
			writeItem(&sb, item)
		}
	}

	msg := RenderDocument(doc)
	msg.Text = sb.String()
	return msg
}

func writeHeader(sb *strings.Builder, doc *Document) {
	sb.WriteString("<b>")
	sb.WriteString(EscapeEntities(doc.Path))
	sb.WriteString("</b>")
	if doc.Deprecated {
		sb.WriteString(" <b>Deprecated</b>")
	}
	if doc.Portability != "" {
		sb.WriteString("\n<i>" + EscapeEntities(doc.Portability) + "</i>")
	}
	if doc.Stability != "" {
		sb.WriteString("\n<i>" + EscapeEntities(doc.Stability) + "</i>")
	}
	if doc.Definition != "" {
		sb.WriteString("\n" + doc.Definition)
	}
}

func writeItem(sb *strings.Builder, item ItemSummary) {
	sb.WriteString("<code>")
	sb.WriteString(EscapeEntities(item.Name))
	sb.WriteString("</code>")
	if item.Deprecated {
		sb.WriteString(" <b>Deprecated</b>")
	}
	if item.Portability != "" {
		sb.WriteString("\n<i>" + EscapeEntities(item.Portability) + "</i>")
	}
	if item.Stability != "" {
		sb.WriteString("\n<i>" + EscapeEntities(item.Stability) + "</i>")
	}
	if item.Summary != "" {
		sb.WriteString("\n" + item.Summary)
	}
	sb.WriteByte('\n')
}

// RenderCrateInfo formats registry metadata with link buttons for the
// crate's homepage, documentation and repository.
func RenderCrateInfo(info *CrateInfo) *Message {
	authors := "&lt;anonymous&gt;"
	if len(info.Owners) > 0 {
		primary := info.Owners[0]
		name := primary.Name
		if name == "" {
			name = "&lt;anonymous&gt;"
		}
		authors = fmt.Sprintf(`<a href="%s">%s</a>`, primary.URL, name)
		if rest := len(info.Owners) - 1; rest > 0 {
			authors += fmt.Sprintf(" and %d others", rest)
		}
	}

	license := "No License"
	if info.License != "" {
		license = info.License + " License"
	}

	var extras strings.Builder
	if len(info.Keywords) > 0 {
		extras.WriteString("\n\n<b>Keywords</b>\n<i>" + EscapeEntities(strings.Join(info.Keywords, ", ")) + "</i>")
	}
	if len(info.Categories) > 0 {
		extras.WriteString("\n\n<b>Categories</b>\n<i>" + EscapeEntities(strings.Join(info.Categories, "\n")) + "</i>")
	}

	text := fmt.Sprintf(
		"<b>%s</b> <i>%s</i> (%sB) by %s\n%s\n\n%s%s\n\n"+
			"⬇️ %s downloads recently (%s total)\n"+
			"📊 %d dependencies (%d for dev)\n"+
			"🕒 updated at %s\n"+
			"🕒 created at %s",
		EscapeEntities(info.Name),
		EscapeEntities(info.NewestVersion),
		HumanizeCount(info.CrateSize),
		authors,
		license,
		EscapeEntities(info.Description),
		extras.String(),
		HumanizeCount(info.RecentDownloads),
		HumanizeCount(info.Downloads),
		info.Dependencies,
		info.DevDependencies,
		info.UpdatedAt.Format("2006-01-02 MST"),
		info.CreatedAt.Format("2006-01-02 MST"),
	)

	var row []Button
	if info.Homepage != "" {
		row = append(row, Button{Label: "🏠 Home", URL: info.Homepage})
	}
	docs := info.Documentation
	if docs == "" {
		docs = "https://docs.rs/" + info.Name
	}
	row = append(row, Button{Label: "📚 Docs", URL: docs})
	if info.Repository != "" {
		row = append(row, Button{Label: "📂 Repo", URL: info.Repository})
	}

	return &Message{Text: text, Buttons: [][]Button{row}}
}

// HumanizeCount renders a count with a G/M/k suffix past the respective
// magnitude.
func HumanizeCount(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	case n > 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d", n)
	}
}
