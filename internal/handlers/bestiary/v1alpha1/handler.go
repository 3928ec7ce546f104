// Package v1alpha1 handles the bestiary grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/orchestrators/bestiary"
)

// HandlerConfig holds dependencies for the bestiary handler
type HandlerConfig struct {
	BestiaryService bestiary.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.BestiaryService == nil {
		return errors.InvalidArgument("bestiary service is required")
	}
	return nil
}

// Handler implements the bestiary gRPC service
type Handler struct {
	bestiaryService bestiary.Service
}

var _ BestiaryServiceServer = (*Handler)(nil)

// NewHandler creates a new bestiary handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		bestiaryService: cfg.BestiaryService,
	}, nil
}

// GetMonster returns a stored creature and its stat block.
// Request: {"name", "source"}
func (h *Handler) GetMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.GetMonsterInput{
		Name:   r.requiredStringField("name"),
		Source: r.stringField("source"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.GetMonster(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(newResponse().
		set("monster", out.Creature).
		set("stat_block", out.StatBlock).
		set("stored_at", timestamp(out.StoredAt)))
}

// SearchMonsters finds creatures by name.
// Request: {"query", "limit"}
func (h *Handler) SearchMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.SearchMonstersInput{
		Query: r.requiredStringField("query"),
		Limit: r.intField("limit"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.SearchMonsters(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	matches := make([]map[string]interface{}, 0, len(out.Matches))
	for _, m := range out.Matches {
		matches = append(matches, map[string]interface{}{
			"name":    m.Name,
			"sources": m.Sources,
			"score":   m.Score,
		})
	}
	suggestions := out.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return respond(newResponse().
		set("matches", matches).
		set("suggestions", suggestions))
}

// ListTemplates lists every template, with compatibility when a creature is
// named.
// Request: {"name", "source"}
func (h *Handler) ListTemplates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.ListTemplatesInput{
		Name:   r.stringField("name"),
		Source: r.stringField("source"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.ListTemplates(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	list := make([]map[string]interface{}, 0, len(out.Templates))
	for _, info := range out.Templates {
		entry := map[string]interface{}{
			"template":   info.Kind.String(),
			"name":       info.Name,
			"diagnostic": info.Diagnostic,
		}
		if info.Compatible != nil {
			entry["compatible"] = *info.Compatible
		}
		list = append(list, entry)
	}

	return respond(newResponse().set("templates", list))
}

// ApplyTemplates reshapes a creature. A template that cannot be applied is
// reported in the "failure" field with an OK status.
// Request: {"name", "source", "slug"} or {"name", "source", "selections":
// [{"template", "count"}]}
func (h *Handler) ApplyTemplates(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.ApplyTemplatesInput{
		Name:       r.requiredStringField("name"),
		Source:     r.stringField("source"),
		Slug:       r.stringField("slug"),
		Selections: r.selectionsField("selections"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.ApplyTemplates(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := newResponse().
		set("slug", out.Slug).
		set("original", out.OriginalStats)
	if out.Failure != nil {
		resp.set("failure", map[string]interface{}{
			"kind":       out.Failure.Kind.String(),
			"template":   out.Failure.Template,
			"diagnostic": out.Failure.Diagnostic,
			"message":    out.Failure.Message(),
			"history":    out.Failure.History,
			"applied":    out.Failure.Applied(),
		})
	} else {
		resp.set("monster", out.Result).
			set("result", out.ResultStats)
	}
	return respond(resp)
}

// RollHitPoints rolls hit points for a creature, optionally reshaped.
// Request: {"name", "source", "slug"}
func (h *Handler) RollHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.RollHitPointsInput{
		Name:   r.requiredStringField("name"),
		Source: r.stringField("source"),
		Slug:   r.stringField("slug"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.RollHitPoints(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(newResponse().
		set("monster", out.Creature.Label()).
		set("roll", out.Roll))
}

// RollAttack rolls one attack of a creature, optionally reshaped.
// Request: {"name", "source", "slug", "attack", "ranged"}
func (h *Handler) RollAttack(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := newRequest(req)
	input := &bestiary.RollAttackInput{
		Name:   r.requiredStringField("name"),
		Source: r.stringField("source"),
		Slug:   r.stringField("slug"),
		Attack: r.requiredStringField("attack"),
		Ranged: r.boolField("ranged"),
	}
	if err := r.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.bestiaryService.RollAttack(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(newResponse().
		set("monster", out.Creature.Label()).
		set("roll", out.Roll))
}

func respond(r *response) (*structpb.Struct, error) {
	out, err := r.build()
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
