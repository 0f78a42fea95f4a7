package appearance

import (
	"fmt"
	"strconv"
	"strings"
)

// ActorKind distinguishes the ways an actor can be identified
type ActorKind uint8

// Actor kinds
const (
	ActorKindInvalid ActorKind = iota
	ActorKindPlayer
	ActorKindOwned
	ActorKindNpc
	ActorKindSpecial
)

var actorKindNames = map[ActorKind]string{
	ActorKindPlayer:  "player",
	ActorKindOwned:   "owned",
	ActorKindNpc:     "npc",
	ActorKindSpecial: "special",
}

// String returns the prefix used in the text form of an identifier
func (k ActorKind) String() string {
	if n, ok := actorKindNames[k]; ok {
		return n
	}
	return "invalid"
}

// ActorIdentifier is a stable, comparable identity for an actor. It
// distinguishes e.g. a named player on a home world from an NPC with a data ID.
type ActorIdentifier struct {
	Kind      ActorKind
	Name      string
	HomeWorld uint16
	DataID    uint32
}

// PlayerID builds an identifier for a player character
func PlayerID(name string, homeWorld uint16) ActorIdentifier {
	return ActorIdentifier{Kind: ActorKindPlayer, Name: name, HomeWorld: homeWorld}
}

// NpcID builds an identifier for a non-player actor
func NpcID(dataID uint32) ActorIdentifier {
	return ActorIdentifier{Kind: ActorKindNpc, DataID: dataID}
}

// IsValid reports whether the identifier carries enough data for its kind
func (id ActorIdentifier) IsValid() bool {
	switch id.Kind {
	case ActorKindPlayer:
		return id.Name != "" && id.HomeWorld != 0
	case ActorKindOwned:
		return id.Name != "" && id.HomeWorld != 0 && id.DataID != 0
	case ActorKindNpc, ActorKindSpecial:
		return id.DataID != 0
	default:
		return false
	}
}

// String renders the identifier in the form accepted by ParseActorIdentifier:
// player:Name@world, owned:Name@world:data, npc:data or special:data.
func (id ActorIdentifier) String() string {
	switch id.Kind {
	case ActorKindPlayer:
		return fmt.Sprintf("player:%s@%d", id.Name, id.HomeWorld)
	case ActorKindOwned:
		return fmt.Sprintf("owned:%s@%d:%d", id.Name, id.HomeWorld, id.DataID)
	case ActorKindNpc, ActorKindSpecial:
		return fmt.Sprintf("%s:%d", id.Kind, id.DataID)
	default:
		return "invalid"
	}
}

// ParseActorIdentifier parses the text form produced by String
func ParseActorIdentifier(s string) (ActorIdentifier, error) {
	kind, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || rest == "" {
		return ActorIdentifier{}, fmt.Errorf("actor identifier %q: missing kind prefix", s)
	}

	var id ActorIdentifier
	switch kind {
	case "player", "owned":
		name, world, ok := strings.Cut(rest, "@")
		if !ok {
			return ActorIdentifier{}, fmt.Errorf("actor identifier %q: missing home world", s)
		}
		var data string
		if kind == "owned" {
			world, data, ok = strings.Cut(world, ":")
			if !ok {
				return ActorIdentifier{}, fmt.Errorf("actor identifier %q: missing data id", s)
			}
		}
		w, err := strconv.ParseUint(world, 10, 16)
		if err != nil {
			return ActorIdentifier{}, fmt.Errorf("actor identifier %q: invalid home world: %w", s, err)
		}
		id = ActorIdentifier{Kind: ActorKindPlayer, Name: name, HomeWorld: uint16(w)}
		if kind == "owned" {
			d, err := strconv.ParseUint(data, 10, 32)
			if err != nil {
				return ActorIdentifier{}, fmt.Errorf("actor identifier %q: invalid data id: %w", s, err)
			}
			id.Kind = ActorKindOwned
			id.DataID = uint32(d)
		}
	case "npc", "special":
		d, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return ActorIdentifier{}, fmt.Errorf("actor identifier %q: invalid data id: %w", s, err)
		}
		id = ActorIdentifier{Kind: ActorKindNpc, DataID: uint32(d)}
		if kind == "special" {
			id.Kind = ActorKindSpecial
		}
	default:
		return ActorIdentifier{}, fmt.Errorf("actor identifier %q: unknown kind %q", s, kind)
	}

	if !id.IsValid() {
		return ActorIdentifier{}, fmt.Errorf("actor identifier %q is incomplete", s)
	}
	return id, nil
}
