package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/overlay/pkg/overlay"
)

var (
	placeAnchor    string
	placeViewport  string
	placePopup     string
	placePreferred = placementFlag(overlay.PlacementTop)
	placeAdjustX   bool
	placeAdjustY   bool
)

// placementFlag makes overlay.Placement usable as a command flag so bad
// names are rejected at parse time rather than in RunE.
type placementFlag overlay.Placement

var _ pflag.Value = (*placementFlag)(nil)

func (p *placementFlag) String() string { return overlay.Placement(*p).String() }

func (p *placementFlag) Set(s string) error {
	pl, err := overlay.ParsePlacement(s)
	if err != nil {
		return err
	}
	*p = placementFlag(pl)
	return nil
}

func (p *placementFlag) Type() string { return "placement" }

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Resolve a placement for the given geometry",
	Long: `place computes where a floating surface would land for an anchor,
popup size, viewport and preferred placement, applying the same
flip-then-clamp overflow adjustment the components use. Useful for
debugging layout issues without running a UI.`,
	Example: `  overlay place --anchor 10,10,50,20 --popup 20,12 --viewport 0,0,400,300 --placement top-start`,
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor, err := parseRect(placeAnchor)
		if err != nil {
			return fmt.Errorf("--anchor: %w", err)
		}
		popup, err := parseSize(placePopup)
		if err != nil {
			return fmt.Errorf("--popup: %w", err)
		}
		viewport, err := resolveViewport(placeViewport)
		if err != nil {
			return fmt.Errorf("--viewport: %w", err)
		}
		preferred := overlay.Placement(placePreferred)

		req := overlay.PlacementRequest{
			Anchor:    anchor,
			Popup:     popup,
			Viewport:  viewport,
			Preferred: preferred,
			Overflow:  overlay.OverflowAxes(placeAdjustX, placeAdjustY),
		}
		res := overlay.ResolvePlacement(req)

		fmt.Printf("preferred:  %s\n", preferred)
		fmt.Printf("resolved:   %s\n", res.Placement)
		fmt.Printf("position:   %d,%d\n", res.Pos.X, res.Pos.Y)
		if res.Placement != preferred {
			fmt.Println("adjusted:   flipped away from viewport edge")
		} else if naive := overlay.ResolvePlacement(overlay.PlacementRequest{
			Anchor: anchor, Popup: popup, Viewport: viewport,
			Preferred: preferred, Overflow: overlay.OverflowOff(),
		}); naive.Pos != res.Pos {
			fmt.Println("adjusted:   clamped into viewport")
		}
		return nil
	},
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (overlay.Rect, error) {
	parts, err := parseInts(s, 4)
	if err != nil {
		return overlay.Rect{}, err
	}
	return overlay.Rect{X: parts[0], Y: parts[1], W: parts[2], H: parts[3]}, nil
}

// parseSize parses "w,h".
func parseSize(s string) (overlay.Size, error) {
	parts, err := parseInts(s, 2)
	if err != nil {
		return overlay.Size{}, err
	}
	return overlay.Size{W: parts[0], H: parts[1]}, nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated integers, got %q", n, s)
	}
	out := make([]int, n)
	for i, f := range fields {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(f), "%d", &v); err != nil {
			return nil, fmt.Errorf("bad integer %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// resolveViewport uses the flag when given, otherwise the attached
// terminal's size.
func resolveViewport(s string) (overlay.Rect, error) {
	if s != "" {
		return parseRect(s)
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return overlay.Rect{}, fmt.Errorf("no --viewport and no terminal attached: %w", err)
	}
	return overlay.Rect{W: w, H: h}, nil
}

func init() {
	placeCmd.Flags().StringVar(&placeAnchor, "anchor", "", "anchor bounds as x,y,w,h (required)")
	placeCmd.Flags().StringVar(&placePopup, "popup", "", "popup size as w,h (required)")
	placeCmd.Flags().StringVar(&placeViewport, "viewport", "", "viewport bounds as x,y,w,h (default: terminal size)")
	placeCmd.Flags().Var(&placePreferred, "placement", "preferred placement name")
	placeCmd.Flags().BoolVar(&placeAdjustX, "adjust-x", true, "allow horizontal flip/clamp")
	placeCmd.Flags().BoolVar(&placeAdjustY, "adjust-y", true, "allow vertical flip/clamp")
	placeCmd.MarkFlagRequired("anchor")
	placeCmd.MarkFlagRequired("popup")
	rootCmd.AddCommand(placeCmd)
}
