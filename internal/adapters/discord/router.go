package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// InteractionKind names a family of components or modals owned by the bot.
type InteractionKind string

const (
	KindLeaveButton InteractionKind = "gaas-leave"
	KindLeaveModal  InteractionKind = "leave-modal"
)

const customIDSeparator = ":"

// CustomID is the parsed form of a component or modal custom id,
// "<kind>:<event id>".
type CustomID struct {
	Kind    InteractionKind
	EventID string
}

func NewCustomID(kind InteractionKind, eventID string) CustomID {
	return CustomID{Kind: kind, EventID: eventID}
}

func (c CustomID) String() string {
	return string(c.Kind) + customIDSeparator + c.EventID
}

// ParseCustomID splits raw on the first separator. An id without separator is
// a bare kind with no event.
func ParseCustomID(raw string) CustomID {
	kind, eventID, _ := strings.Cut(raw, customIDSeparator)
	return CustomID{Kind: InteractionKind(kind), EventID: eventID}
}

type interactionHandler func(ctx context.Context, s Session, i *discordgo.InteractionCreate, id CustomID)

// Router sends interactions to the handler registered for their kind.
// Interactions of kinds nobody registered are left alone.
type Router struct {
	buttons map[InteractionKind]interactionHandler
	modals  map[InteractionKind]interactionHandler
}

func NewRouter(h *Handler) *Router {
	return &Router{
		buttons: map[InteractionKind]interactionHandler{
			KindLeaveButton: h.HandleLeaveButton,
		},
		modals: map[InteractionKind]interactionHandler{
			KindLeaveModal: h.HandleLeaveModalSubmit,
		},
	}
}

// Dispatch reports whether the interaction was handled.
func (r *Router) Dispatch(ctx context.Context, s Session, i *discordgo.InteractionCreate) bool {
	if i == nil || i.Interaction == nil {
		return false
	}

	var (
		table map[InteractionKind]interactionHandler
		raw   string
	)
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		if data.ComponentType != discordgo.ButtonComponent {
			return false
		}
		table, raw = r.buttons, data.CustomID
	case discordgo.InteractionModalSubmit:
		table, raw = r.modals, i.ModalSubmitData().CustomID
	default:
		return false
	}

	id := ParseCustomID(raw)
	handle, ok := table[id.Kind]
	if !ok {
		return false
	}
	handle(ctx, s, i, id)
	return true
}
