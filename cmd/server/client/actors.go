package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
)

var (
	actorID string

	reportFile  string
	reportVisor bool

	lockCustomize []string
	lockEquip     []string
	unlock        bool

	editForce     bool
	editCustomize map[string]int
	editArmor     map[string]string
	editMainHand  string
	editOffHand   string
	editStains    map[string]int
	editToggles   map[string]string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report what the host shows for an actor",
	Long: `Report an actor's appearance. The appearance is read from a YAML design
file; every field it lists is reported, unlisted fields are zero.`,
	RunE: runReport,
}

var untrackCmd = &cobra.Command{
	Use:   "untrack",
	Short: "Stop tracking an actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			removed, err := c.UntrackActor(ctx, actorID)
			if err != nil {
				return fmt.Errorf("failed to untrack actor: %w", err)
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is no longer tracked\n", actorID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s was not tracked\n", actorID)
			}
			return nil
		})
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the tracked state of an actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			st, err := c.GetActorState(ctx, actorID)
			if err != nil {
				return fmt.Errorf("failed to get actor state: %w", err)
			}
			return printJSON(cmd, st)
		})
	},
}

var listActorsCmd = &cobra.Command{
	Use:   "list-actors",
	Short: "List tracked actors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.ListActors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list actors: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tracked actors (%d):\n", len(resp.Actors))
			for _, a := range resp.Actors {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", a)
			}
			return nil
		})
	},
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Fix fields of an actor so host changes do not override them",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			st, err := c.SetLock(ctx, v1alpha1.SetLockRequest{
				Actor:     actorID,
				Customize: lockCustomize,
				Equip:     lockEquip,
				Locked:    !unlock,
			})
			if err != nil {
				return fmt.Errorf("failed to set lock: %w", err)
			}
			return printJSON(cmd, st.Fixed)
		})
	},
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Hand fields of an actor back to the host",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			st, err := c.ReleaseFields(ctx, v1alpha1.ReleaseFieldsRequest{
				Actor:     actorID,
				Customize: lockCustomize,
				Equip:     lockEquip,
			})
			if err != nil {
				return fmt.Errorf("failed to release fields: %w", err)
			}
			return printJSON(cmd, st.Changed)
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change fields of a tracked actor",
	Example: `  glamour-api client edit --actor npc:1001 \
    --customize hairstyle=12 --armor head=6012-1 --stain head=3 \
    --main-hand 2001-12-3 --toggle hat_visible=false`,
	RunE: runEdit,
}

func init() {
	for _, cmd := range []*cobra.Command{reportCmd, untrackCmd, stateCmd, lockCmd, releaseCmd, editCmd} {
		cmd.Flags().StringVar(&actorID, "actor", "", "Actor identifier, e.g. player:Name@world or npc:1001 (required)")
		_ = cmd.MarkFlagRequired("actor")
	}

	reportCmd.Flags().StringVar(&reportFile, "file", "", "YAML design file holding the appearance (required)")
	reportCmd.Flags().BoolVar(&reportVisor, "visor", false, "Whether the host shows the visor toggled")
	_ = reportCmd.MarkFlagRequired("file")

	for _, cmd := range []*cobra.Command{lockCmd, releaseCmd} {
		cmd.Flags().StringSliceVar(&lockCustomize, "customize", nil, "Customization fields, e.g. race,hairstyle")
		cmd.Flags().StringSliceVar(&lockEquip, "equip", nil, "Equipment slots, e.g. head,main_hand")
	}
	lockCmd.Flags().BoolVar(&unlock, "unlock", false, "Remove the lock instead of setting it")

	editCmd.Flags().BoolVar(&editForce, "force", false, "Edit fixed fields too")
	editCmd.Flags().StringToIntVar(&editCustomize, "customize", nil, "Customization values, field=value")
	editCmd.Flags().StringToStringVar(&editArmor, "armor", nil, "Armor pieces, slot=set-variant")
	editCmd.Flags().StringVar(&editMainHand, "main-hand", "", "Main hand weapon, set-type-variant")
	editCmd.Flags().StringVar(&editOffHand, "off-hand", "", "Off hand weapon, set-type-variant")
	editCmd.Flags().StringToIntVar(&editStains, "stain", nil, "Dyes, slot=stain")
	editCmd.Flags().StringToStringVar(&editToggles, "toggle", nil, "Visibility toggles, toggle=true|false")
}

func runReport(cmd *cobra.Command, _ []string) error {
	d, err := design.LoadFile(reportFile)
	if err != nil {
		return err
	}

	return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
		resp, err := c.ReportActor(ctx, v1alpha1.ReportActorRequest{
			Actor: actorID,
			Data:  v1alpha1.CharacterToMessage(d.Data),
			Visor: reportVisor,
		})
		if err != nil {
			return fmt.Errorf("failed to report actor: %w", err)
		}
		if resp.NewlyTracked {
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Now tracking %s\n", actorID)
		}
		return printJSON(cmd, resp)
	})
}

func runEdit(cmd *cobra.Command, _ []string) error {
	req := v1alpha1.EditActorRequest{
		Actor: actorID,
		Force: editForce,
	}

	var err error
	if req.Customize, err = toBytes(editCustomize); err != nil {
		return err
	}
	if req.Stains, err = toBytes(editStains); err != nil {
		return err
	}
	if len(editArmor) > 0 {
		req.Armor = make(map[string]v1alpha1.ArmorMessage, len(editArmor))
		for slot, spec := range editArmor {
			parts, err := parseItem(spec, 2)
			if err != nil {
				return fmt.Errorf("armor %s: %w", slot, err)
			}
			if parts[1] > 255 {
				return fmt.Errorf("armor %s: variant %d is out of range 0-255", slot, parts[1])
			}
			req.Armor[slot] = v1alpha1.ArmorMessage{Set: parts[0], Variant: uint8(parts[1])}
		}
	}
	if req.MainHand, err = parseWeapon(editMainHand); err != nil {
		return fmt.Errorf("main hand: %w", err)
	}
	if req.OffHand, err = parseWeapon(editOffHand); err != nil {
		return fmt.Errorf("off hand: %w", err)
	}
	if len(editToggles) > 0 {
		req.Toggles = make(map[string]bool, len(editToggles))
		for name, raw := range editToggles {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("toggle %s: %w", name, err)
			}
			req.Toggles[name] = v
		}
	}

	return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
		st, err := c.EditActor(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to edit actor: %w", err)
		}
		if st.NeedsRedraw {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Redraw needed: %s\n", st.RedrawReason)
		}
		return printJSON(cmd, st)
	})
}

func withClient(fn func(ctx context.Context, c *v1alpha1.Client) error) error {
	c, cleanup, err := createStateClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, c)
}

func toBytes(in map[string]int) (map[string]uint8, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]uint8, len(in))
	for k, v := range in {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%s: %d is out of range 0-255", k, v)
		}
		out[k] = uint8(v)
	}
	return out, nil
}

// parseItem splits a dash separated item id into n numbers
func parseItem(spec string, n int) ([]uint16, error) {
	fields := strings.Split(spec, "-")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d dash separated numbers, got %q", n, spec)
	}
	out := make([]uint16, n)
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = uint16(v)
	}
	return out, nil
}

func parseWeapon(spec string) (*v1alpha1.WeaponMessage, error) {
	if spec == "" {
		return nil, nil
	}
	parts, err := parseItem(spec, 3)
	if err != nil {
		return nil, err
	}
	return &v1alpha1.WeaponMessage{Set: parts[0], Type: parts[1], Variant: parts[2]}, nil
}
