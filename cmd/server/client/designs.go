package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
)

var (
	applyActor    string
	applyDesignID string
	applyCode     string

	saveFile string
	saveID   string

	captureActor       string
	captureName        string
	captureDescription string

	bindActor    string
	bindDesignID string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a stored design or a design code to an actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.ApplyDesign(ctx, v1alpha1.ApplyDesignRequest{
				Actor:    applyActor,
				DesignID: applyDesignID,
				Code:     applyCode,
			})
			if err != nil {
				return fmt.Errorf("failed to apply design: %w", err)
			}
			if len(resp.Result.Rejected) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Restricted gear skipped: %v\n", resp.Result.Rejected)
			}
			if resp.Result.SkippedCustomize {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Customization skipped: design race or gender does not match\n")
			}
			return printJSON(cmd, resp)
		})
	},
}

var saveDesignCmd = &cobra.Command{
	Use:   "save-design",
	Short: "Store a design read from a YAML design file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := design.LoadFile(saveFile)
		if err != nil {
			return err
		}
		d.ID = saveID

		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.SaveDesign(ctx, v1alpha1.SaveDesignRequest{Design: v1alpha1.DesignToMessage(d)})
			if err != nil {
				return fmt.Errorf("failed to save design: %w", err)
			}
			verb := "updated"
			if resp.Created {
				verb = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Design %s %s\n", resp.Design.ID, verb)
			return printJSON(cmd, resp.Design)
		})
	},
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Store the current state of an actor as a design",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			d, err := c.CaptureDesign(ctx, v1alpha1.CaptureDesignRequest{
				Actor:       captureActor,
				Name:        captureName,
				Description: captureDescription,
			})
			if err != nil {
				return fmt.Errorf("failed to capture design: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Captured %s as %s\n", captureActor, d.ID)
			return printJSON(cmd, d)
		})
	},
}

var getDesignCmd = &cobra.Command{
	Use:   "get-design <id>",
	Short: "Show a stored design as a YAML design file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			msg, err := c.GetDesign(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get design: %w", err)
			}
			d, err := v1alpha1.DesignFromMessage(*msg)
			if err != nil {
				return err
			}
			out, err := d.MarshalFile()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", msg.ID)
			_, err = cmd.OutOrStdout().Write(out)
			return err
		})
	},
}

var listDesignsCmd = &cobra.Command{
	Use:   "list-designs",
	Short: "List stored designs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.ListDesigns(ctx)
			if err != nil {
				return fmt.Errorf("failed to list designs: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Designs (%d):\n", len(resp.Designs))
			for _, d := range resp.Designs {
				lock := ""
				if d.WriteProtected != nil && *d.WriteProtected {
					lock = " [protected]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s%s\n", d.ID, d.Name, lock)
			}
			return nil
		})
	},
}

var deleteDesignCmd = &cobra.Command{
	Use:   "delete-design <id>",
	Short: "Delete a stored design",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			if err := c.DeleteDesign(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete design: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Design %s deleted\n", args[0])
			return nil
		})
	},
}

var bindCmd = &cobra.Command{
	Use:   "bind",
	Short: "Bind a stored design to an actor so it is applied when the actor is tracked",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.BindDesign(ctx, v1alpha1.BindDesignRequest{
				Actor:    bindActor,
				DesignID: bindDesignID,
			})
			if err != nil {
				return fmt.Errorf("failed to bind design: %w", err)
			}
			if resp.Replaced != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ %s now bound to %s (was %s)\n", bindActor, bindDesignID, resp.Replaced)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s now bound to %s\n", bindActor, bindDesignID)
			return nil
		})
	},
}

var unbindCmd = &cobra.Command{
	Use:   "unbind <actor>",
	Short: "Remove the design bound to an actor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			if err := c.UnbindDesign(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to unbind design: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s unbound\n", args[0])
			return nil
		})
	},
}

var listBindingsCmd = &cobra.Command{
	Use:   "list-bindings",
	Short: "List actors with a bound design",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, c *v1alpha1.Client) error {
			resp, err := c.ListBindings(ctx)
			if err != nil {
				return fmt.Errorf("failed to list bindings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bindings (%d):\n", len(resp.Bindings))
			for _, b := range resp.Bindings {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s -> %s\n", b.Actor, b.DesignID)
			}
			return nil
		})
	},
}

func init() {
	applyCmd.Flags().StringVar(&applyActor, "actor", "", "Actor identifier (required)")
	applyCmd.Flags().StringVar(&applyDesignID, "design-id", "", "Stored design ID")
	applyCmd.Flags().StringVar(&applyCode, "code", "", "Design code")
	_ = applyCmd.MarkFlagRequired("actor")
	applyCmd.MarkFlagsOneRequired("design-id", "code")
	applyCmd.MarkFlagsMutuallyExclusive("design-id", "code")

	saveDesignCmd.Flags().StringVar(&saveFile, "file", "", "YAML design file (required)")
	saveDesignCmd.Flags().StringVar(&saveID, "id", "", "Design ID to update; empty creates a new design")
	_ = saveDesignCmd.MarkFlagRequired("file")

	captureCmd.Flags().StringVar(&captureActor, "actor", "", "Actor identifier (required)")
	captureCmd.Flags().StringVar(&captureName, "name", "", "Design name (required)")
	captureCmd.Flags().StringVar(&captureDescription, "description", "", "Design description")
	_ = captureCmd.MarkFlagRequired("actor")
	_ = captureCmd.MarkFlagRequired("name")

	bindCmd.Flags().StringVar(&bindActor, "actor", "", "Actor identifier (required)")
	bindCmd.Flags().StringVar(&bindDesignID, "design-id", "", "Stored design ID (required)")
	_ = bindCmd.MarkFlagRequired("actor")
	_ = bindCmd.MarkFlagRequired("design-id")
}
